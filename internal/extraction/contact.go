package extraction

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailPattern  = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\b\d{10}\b`),
		regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`),
	}

	locationPattern = regexp.MustCompile(`(?i)\b(?:current location|location|based in|residing in)\s*[:\-]?\s+([A-Za-z][A-Za-z ,]*[A-Za-z])`)

	companyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:company|employer|organization)\s*:\s*([A-Za-z0-9][A-Za-z0-9 &.,]*[A-Za-z0-9.])`),
		regexp.MustCompile(`(?i)(?:worked at|employed at|currently at|working at)\s*:?\s+([A-Za-z0-9][A-Za-z0-9 &.]*[A-Za-z0-9.])`),
	}
	companySuffix = regexp.MustCompile(`\b([A-Z][A-Za-z0-9&]*(?:\s+[A-Z][A-Za-z0-9&]*)*\s+(?:Inc|LLC|Ltd|Limited|Corp|Corporation|Pvt|Technologies|Solutions|Systems)\.?)`)

	designationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:position|role|title|designation)\s*:\s*([A-Za-z][A-Za-z ]*[A-Za-z])`),
		regexp.MustCompile(`(?i)(?:currently|presently)[^\n]*?\b(?:working as|as an|as a|as)\s+([A-Za-z][A-Za-z ]*[A-Za-z])`),
	}
	rolePattern = regexp.MustCompile(`\b((?:[A-Z][a-z]+\s+)*(?:Engineer|Manager|Director|Lead|Developer|Architect|Analyst|Consultant|Specialist|Scientist|Designer|Administrator))\b`)

	degreeAbbrev = regexp.MustCompile(`(?i)\b(?:[BM]\.?[AS]\.?|MBA|PhD|MD|JD|B\.?Tech|M\.?Tech)\b`)
)

var (
	notNames = map[string]struct{}{
		"education": {}, "experience": {}, "skills": {}, "contact": {}, "objective": {},
		"summary": {}, "qualifications": {}, "work history": {}, "professional summary": {},
		"references": {}, "certifications": {}, "projects": {}, "achievements": {},
		"resume": {}, "curriculum vitae": {},
	}
	nameRejectWords = []string{
		"b.a.", "m.a.", "b.s.", "m.s.", "phd", "mba", "b.tech", "m.tech", "degree",
		"in", "major", "minor", "diploma", "certificate",
	}
	addressWords = []string{"drive", "street", "avenue", "road", "blvd", "city"}
	phrasesNotInNames = []string{
		"while maintaining", "while working", "while attending", "while completing",
		"full course", "as part of", "in order to", "for the", "that",
	}
)

const nameSearchLines = 5

// ExtractEmail returns the first email address in text.
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// ExtractPhone returns the first phone number in text.
func ExtractPhone(text string) string {
	for _, re := range phonePatterns {
		if m := re.FindString(text); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

// ExtractName looks for the candidate's name in the first lines of text: two
// to four alphabetic words that are not a heading, degree, contact detail or
// address.
func ExtractName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > nameSearchLines {
		lines = lines[:nameSearchLines]
	}

	for idx, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		line = strings.TrimSpace(strings.TrimRight(line, "|•"))
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		if _, heading := notNames[lower]; heading {
			continue
		}
		if containsWord(lower, nameRejectWords) || degreeAbbrev.MatchString(line) {
			continue
		}
		if strings.Contains(line, "@") || phonePatterns[0].MatchString(line) {
			continue
		}
		if containsWord(lower, addressWords) {
			continue
		}
		if strings.HasSuffix(line, ",") || strings.HasSuffix(line, ".") {
			continue
		}
		if containsWord(lower, phrasesNotInNames) {
			continue
		}

		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 || !allNameWords(words) {
			continue
		}
		// Beyond the first three lines an all-caps line is more likely a heading.
		if idx >= 3 && (len(line) >= 50 || strings.ToUpper(line) == line) {
			continue
		}
		if len(line) >= 70 {
			continue
		}
		return line
	}
	return ""
}

func allNameWords(words []string) bool {
	for _, w := range words {
		w = strings.NewReplacer(".", "", ",", "", "'", "", "-", "").Replace(w)
		if w == "" {
			return false
		}
		for _, r := range w {
			if !unicode.IsLetter(r) {
				return false
			}
		}
	}
	return true
}

// ExtractLocation returns the location given after a "Location" or
// "Based in" marker.
func ExtractLocation(text string) string {
	if m := locationPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// ExtractCurrentCompany returns the current or most recent employer.
func ExtractCurrentCompany(text string) string {
	for _, re := range companyPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	if section, ok := findSection(text, experienceHeadings); ok {
		if m := companySuffix.FindStringSubmatch(prefix(section, 500)); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// ExtractCurrentDesignation returns the current or most recent job title.
func ExtractCurrentDesignation(text string) string {
	for _, re := range designationPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	if section, ok := findSection(text, experienceHeadings); ok {
		if m := rolePattern.FindStringSubmatch(prefix(section, 300)); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// containsWord reports whether any of phrases occurs in s as whole
// space-separated words.
func containsWord(s string, phrases []string) bool {
	padded := " " + s + " "
	for _, p := range phrases {
		if strings.Contains(padded, " "+p+" ") {
			return true
		}
	}
	return false
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
