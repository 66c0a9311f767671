package ranking

import "strings"

// Within the skills score, required skills weigh 0.7 and preferred 0.3.
const (
	requiredSkillWeight  = 0.7
	preferredSkillWeight = 0.3
)

type skillMatch struct {
	score   float64
	matched []string
	missing []string
}

// normalizeSkills lower-cases, trims and de-duplicates, keeping first-seen order.
func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func scoreSkills(candidate, required, preferred []string) skillMatch {
	have := make(map[string]struct{}, len(candidate))
	for _, s := range normalizeSkills(candidate) {
		have[s] = struct{}{}
	}
	required = normalizeSkills(required)
	preferred = normalizeSkills(preferred)

	result := skillMatch{matched: []string{}, missing: []string{}}
	if len(required) == 0 && len(preferred) == 0 {
		result.score = 1.0
		return result
	}

	listed := make(map[string]struct{}, len(required)+len(preferred))
	var requiredHits, preferredHits int

	for _, s := range required {
		listed[s] = struct{}{}
		if _, ok := have[s]; ok {
			requiredHits++
			result.matched = append(result.matched, s)
		} else {
			result.missing = append(result.missing, s)
		}
	}
	for _, s := range preferred {
		if _, ok := have[s]; !ok {
			continue
		}
		preferredHits++
		if _, dup := listed[s]; !dup {
			listed[s] = struct{}{}
			result.matched = append(result.matched, s)
		}
	}

	requiredRatio := 1.0
	if len(required) > 0 {
		requiredRatio = float64(requiredHits) / float64(len(required))
	}
	if len(preferred) == 0 {
		result.score = requiredRatio
		return result
	}

	preferredRatio := float64(preferredHits) / float64(len(preferred))
	result.score = clamp01(requiredSkillWeight*requiredRatio + preferredSkillWeight*preferredRatio)
	return result
}
