package extraction

import "strings"

// ExtractDomains returns the vocabulary domains mentioned in text, in
// vocabulary order. Information Technology is put first whenever a technical
// keyword appears, even if the domain itself is never named.
func (e *Extractor) ExtractDomains(text string) []string {
	out := make([]string, 0)
	if strings.TrimSpace(text) == "" {
		return out
	}

	lower := strings.ToLower(text)
	hasIT := false
	for _, d := range e.lexicon.domains {
		if strings.Contains(lower, strings.ToLower(d)) {
			out = append(out, d)
			if strings.EqualFold(d, InformationTechnology) {
				hasIT = true
			}
		}
	}

	if !hasIT && e.hasTechKeyword(text) {
		out = append([]string{InformationTechnology}, out...)
	}
	return out
}

// hasTechKeyword is a plain substring test, so "ReactJS" or "sqlserver"
// count as technical.
func (e *Extractor) hasTechKeyword(text string) bool {
	lower := lowerASCII(text)
	for _, t := range e.lexicon.techKeywords {
		if strings.Contains(lower, t.text) {
			return true
		}
	}
	return false
}
