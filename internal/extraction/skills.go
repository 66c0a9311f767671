package extraction

import (
	"regexp"
	"sort"
	"strings"
)

// SkillSet is the result of skill extraction. Primary holds vocabulary skills,
// Secondary holds skills-section items outside the vocabulary, and All is
// Primary followed by Secondary.
type SkillSet struct {
	Primary   []string `json:"primary_skills"`
	Secondary []string `json:"secondary_skills"`
	All       []string `json:"all_skills"`
}

const maxSecondaryItemLength = 50

var skillHeadings = []string{
	"technical skills",
	"skills",
	"skill set",
	"skill profile",
	"core competencies",
	"core competency",
	"competencies",
	"technical expertise",
	"technical summary",
	"tools & technologies",
	"tools and technologies",
	"proficiencies",
	"key skills",
}

var (
	itemSplit   = regexp.MustCompile(`[,;|\n•●▪·]`)
	bulletTrim  = "-*•●▪·◦> \t"
	itemLabelRe = regexp.MustCompile(`^[^:]{1,40}:\s*`)
)

// ExtractSkills finds vocabulary skills in text, preferring a skills section
// when one exists.
func (e *Extractor) ExtractSkills(text string) SkillSet {
	if strings.TrimSpace(text) == "" {
		return emptySkillSet()
	}

	section, found := findSection(text, skillHeadings)

	var primary, secondary []string
	if found {
		primary = e.matchSkills(section)
		secondary = e.secondarySkills(section, primary)
	}
	if len(primary) == 0 {
		primary = e.matchSkills(text)
	}

	return newSkillSet(primary, secondary)
}

// MatchSkills returns the vocabulary skills present anywhere in text.
func (e *Extractor) MatchSkills(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	return e.matchSkills(text)
}

type skillHit struct {
	display string
	first   int
}

// matchSkills scans text for every vocabulary term, longest first, and
// returns the hits in document order. A hit is displayed with the casing it
// first had in text when it is spelled exactly as the term.
func (e *Extractor) matchSkills(text string) []string {
	lower := lowerASCII(text)
	consumed := make([]bool, len(lower))

	hits := make([]skillHit, 0)
	for _, t := range e.lexicon.skills {
		spans := t.findAll(lower, consumed)
		if len(spans) == 0 {
			continue
		}
		display := t.text
		for _, sp := range spans {
			if lower[sp.start:sp.end] == t.text {
				display = text[sp.start:sp.end]
				break
			}
		}
		hits = append(hits, skillHit{display: display, first: spans[0].start})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].first < hits[j].first })

	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.display)
	}
	return out
}

// secondarySkills returns the comma or bullet separated items of a skills
// section that contain no vocabulary skill.
func (e *Extractor) secondarySkills(section string, primary []string) []string {
	seen := make(map[string]struct{}, len(primary))
	for _, p := range primary {
		seen[strings.ToLower(p)] = struct{}{}
	}

	out := make([]string, 0)
	for _, item := range itemSplit.Split(section, -1) {
		item = strings.Trim(strings.TrimSpace(item), bulletTrim)
		if item == "" || len(e.matchSkills(item)) > 0 {
			continue
		}
		item = strings.TrimSpace(itemLabelRe.ReplaceAllString(item, ""))
		item = strings.TrimRight(item, ".")
		if item == "" || len(item) > maxSecondaryItemLength {
			continue
		}
		key := strings.ToLower(item)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}

func newSkillSet(primary, secondary []string) SkillSet {
	primary = dedupeFold(primary)
	secondary = dedupeFold(secondary)
	return SkillSet{
		Primary:   primary,
		Secondary: secondary,
		All:       dedupeFold(append(append([]string{}, primary...), secondary...)),
	}
}

func emptySkillSet() SkillSet {
	return SkillSet{Primary: []string{}, Secondary: []string{}, All: []string{}}
}
