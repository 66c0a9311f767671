package extraction

import "strings"

var (
	experienceHeadings = []string{
		"professional experience",
		"work experience",
		"employment history",
		"career history",
		"work history",
		"experience",
		"employment",
	}

	educationHeadings = []string{
		"educational qualifications",
		"academic qualifications",
		"academic background",
		"qualifications",
		"education",
		"academics",
		"academic",
	}

	otherHeadings = []string{
		"professional summary",
		"career objective",
		"personal information",
		"personal details",
		"certifications",
		"certificates",
		"achievements",
		"publications",
		"declaration",
		"references",
		"languages",
		"interests",
		"objective",
		"projects",
		"summary",
		"hobbies",
		"training",
		"contact",
		"awards",
	}

	allHeadings = concat(skillHeadings, experienceHeadings, educationHeadings, otherHeadings)
)

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// findSection returns the body of the first section whose heading is one of
// headings. The body runs to the next recognised heading of any kind and
// includes text written on the heading line after a colon or dash.
func findSection(text string, headings []string) (string, bool) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		inline, ok := matchHeading(line, headings)
		if !ok {
			continue
		}

		body := make([]string, 0)
		if inline != "" {
			body = append(body, inline)
		}
		for _, next := range lines[i+1:] {
			if _, isHeading := matchHeading(next, allHeadings); isHeading {
				break
			}
			body = append(body, next)
		}
		return strings.TrimSpace(strings.Join(body, "\n")), true
	}
	return "", false
}

const headingTrim = "#*•-=>:| \t\r"

// matchHeading reports whether line is a heading from headings, returning any
// content that follows the heading on the same line.
func matchHeading(line string, headings []string) (string, bool) {
	trimmed := strings.TrimLeft(strings.TrimSpace(line), headingTrim)
	lower := lowerASCII(trimmed)

	for _, h := range headings {
		if !strings.HasPrefix(lower, h) {
			continue
		}
		rest := strings.TrimSpace(trimmed[len(h):])
		switch {
		case rest == "" || strings.Trim(rest, headingTrim) == "":
			return "", true
		case rest[0] == ':' || rest[0] == '-' || rest[0] == '|':
			return strings.TrimSpace(rest[1:]), true
		}
	}
	return "", false
}
