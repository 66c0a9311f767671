package extraction

import (
	"regexp"
	"strconv"
)

const maxClaimedYears = 50.0

// Explicit claims of total experience, tried in order.
var experienceClaims = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*\+\s*(?:years?|yrs?)(?:\s+of)?\s+(?:experience|exp)\b`),
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\+?\s*(?:years?|yrs?)(?:\s+of)?\s+(?:experience|exp)\b`),
	regexp.MustCompile(`(?i)\b(?:around|over|nearly|almost|about)\s+(\d+(?:\.\d+)?)\+?\s*(?:years?|yrs?)\b`),
	regexp.MustCompile(`(?i)experience[:\s]+(\d+(?:\.\d+)?)\+?\s*(?:years?|yrs?)\b`),
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\+?\s*(?:years?|yrs?)\s+(?:in\s+)?(?:the\s+)?(?:it|software|technology|industry)\b`),
}

var (
	yearToken   = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)
	presentWord = regexp.MustCompile(`(?i)\b(?:present|current|till date|to date)\b`)
)

// ExtractExperience returns total years of experience. An explicit claim in
// the text wins; otherwise the span of years in the experience section is
// used, with "Present" meaning the current year.
func (e *Extractor) ExtractExperience(text string) float64 {
	if years, ok := claimedExperience(text); ok {
		return years
	}
	return e.experienceFromDates(text)
}

func claimedExperience(text string) (float64, bool) {
	for _, re := range experienceClaims {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			if v >= 0 && v <= maxClaimedYears {
				return v, true
			}
		}
	}
	return 0, false
}

func (e *Extractor) experienceFromDates(text string) float64 {
	section, ok := findSection(text, experienceHeadings)
	if !ok || section == "" {
		section = text
	}

	currentYear := e.now().Year()
	years := make([]int, 0)
	for _, m := range yearToken.FindAllStringSubmatch(section, -1) {
		y, err := strconv.Atoi(m[1])
		if err == nil {
			years = append(years, y)
		}
	}
	if presentWord.MatchString(section) {
		years = append(years, currentYear)
	}
	if len(years) < 2 {
		return 0
	}

	earliest, latest := years[0], years[0]
	for _, y := range years[1:] {
		earliest = min(earliest, y)
		latest = max(latest, y)
	}
	latest = min(latest, currentYear)
	return float64(max(0, latest-earliest))
}
