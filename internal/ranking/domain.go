package ranking

import "strings"

// DefaultRelatedDomains lists related-domain groups. A key and its members
// form one group in which every pair is related.
func DefaultRelatedDomains() map[string][]string {
	return map[string][]string{
		"finance":    {"banking", "fintech", "financial services", "insurance"},
		"banking":    {"finance", "fintech", "financial services"},
		"fintech":    {"finance", "banking", "technology"},
		"technology": {"software", "it", "tech", "saas"},
		"healthcare": {"medical", "pharma", "health", "hospital"},
		"retail":     {"e-commerce", "ecommerce", "commerce", "sales"},
	}
}

var (
	domainNeutralTier   = tier(0.5, LabelMedium)
	domainExactTier     = tier(1.0, LabelHigh)
	domainContainsTier  = tier(0.8, LabelHigh)
	domainRelatedTier   = tier(0.7, LabelMedium)
	domainUnrelatedTier = tier(0.3, LabelLow)
)

// relatedDomains is a symmetric lookup built from a related-domain table.
type relatedDomains map[string]map[string]struct{}

func newRelatedDomains(table map[string][]string) relatedDomains {
	r := make(relatedDomains, len(table))
	link := func(a, b string) {
		if r[a] == nil {
			r[a] = make(map[string]struct{})
		}
		r[a][b] = struct{}{}
	}
	for domain, members := range table {
		group := make([]string, 0, len(members)+1)
		for _, d := range append([]string{domain}, members...) {
			if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
				group = append(group, d)
			}
		}
		for i, a := range group {
			for _, b := range group[i+1:] {
				if a == b {
					continue
				}
				link(a, b)
				link(b, a)
			}
		}
	}
	return r
}

func (r relatedDomains) related(a, b string) bool {
	_, ok := r[a][b]
	return ok
}

type domainRule struct {
	applies func(candidate, job string) bool
	tier    MatchTier
}

func (r relatedDomains) rules() []domainRule {
	return []domainRule{
		{applies: func(c, j string) bool { return c == j }, tier: domainExactTier},
		{applies: func(c, j string) bool { return strings.Contains(c, j) || strings.Contains(j, c) }, tier: domainContainsTier},
		{applies: r.related, tier: domainRelatedTier},
		{applies: func(string, string) bool { return true }, tier: domainUnrelatedTier},
	}
}

// scoreDomain returns the best tier of any candidate domain against the job
// domain. Missing data on either side is neutral.
func (r relatedDomains) scoreDomain(candidate []string, job string) MatchTier {
	job = strings.ToLower(strings.TrimSpace(job))
	domains := normalizeSkills(candidate)
	if job == "" || len(domains) == 0 {
		return domainNeutralTier
	}

	rules := r.rules()
	best := MatchTier{Score: -1}
	for _, d := range domains {
		for _, rule := range rules {
			if !rule.applies(d, job) {
				continue
			}
			if rule.tier.Score > best.Score {
				best = rule.tier
			}
			break
		}
	}
	return best
}
