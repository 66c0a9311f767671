package ranking

import "strings"

// EducationLevel orders degrees; zero means unrecognised.
type EducationLevel int

const (
	EducationUnknown EducationLevel = iota
	EducationHighSchool
	EducationDiploma
	EducationBachelors
	EducationMasters
	EducationPhD
)

var educationKeywords = []struct {
	level EducationLevel
	terms []string
}{
	{EducationPhD, []string{"phd", "ph.d", "ph.d.", "doctorate", "doctoral"}},
	{EducationMasters, []string{"masters", "master", "mba", "m.tech", "mtech", "mca", "msc", "m.sc", "m.s.", "m.e."}},
	{EducationBachelors, []string{"bachelors", "bachelor", "b.tech", "btech", "bca", "bsc", "b.sc", "b.s.", "b.e.", "b.a."}},
	{EducationDiploma, []string{"diploma"}},
	{EducationHighSchool, []string{"high school", "secondary", "hsc", "ssc"}},
}

// ParseEducationLevel maps free text onto the level hierarchy, returning the
// highest level mentioned.
func ParseEducationLevel(s string) EducationLevel {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return EducationUnknown
	}
	for _, group := range educationKeywords {
		for _, term := range group.terms {
			if containsTerm(s, term) {
				return group.level
			}
		}
	}
	return EducationUnknown
}

var (
	educationUnconstrainedTier = tier(1.0, LabelHigh)
	educationNeutralTier       = tier(0.5, LabelMedium)
	educationMeetsTier         = tier(1.0, LabelHigh)
	educationOneBelowTier      = tier(0.7, LabelMedium)
	educationBelowTier         = tier(0.4, LabelLow)
)

func scoreEducation(candidate, required string) MatchTier {
	if strings.TrimSpace(required) == "" {
		return educationUnconstrainedTier
	}

	have := ParseEducationLevel(candidate)
	want := ParseEducationLevel(required)
	switch {
	case have == EducationUnknown || want == EducationUnknown:
		return educationNeutralTier
	case have >= want:
		return educationMeetsTier
	case have == want-1:
		return educationOneBelowTier
	default:
		return educationBelowTier
	}
}

// containsTerm reports whether term occurs in s without alphanumeric
// characters on either side.
func containsTerm(s, term string) bool {
	for offset := 0; offset <= len(s)-len(term); {
		i := strings.Index(s[offset:], term)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(term)
		if !isWordByte(s, start-1) && !isWordByte(s, end) {
			return true
		}
		offset = start + 1
	}
	return false
}

func isWordByte(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	c := s[i]
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c >= 'A' && c <= 'Z'
}
