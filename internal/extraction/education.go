package extraction

import "strings"

// Degree levels reported by ExtractEducation.
const (
	DegreePhD       = "PhD"
	DegreeMasters   = "Masters"
	DegreeBachelors = "Bachelors"
	DegreeDiploma   = "Diploma"
)

// Education is the highest degree found and the raw education section.
type Education struct {
	Highest string `json:"highest_degree,omitempty"`
	Section string `json:"education_details,omitempty"`
}

// Highest level first. Dotted abbreviations keep their trailing dot so that
// initials such as "M.S Dhoni" are not read as degrees.
var degreeKeywords = []struct {
	degree string
	terms  []term
}{
	{DegreePhD, compileExact([]string{"phd", "ph.d", "doctorate"})},
	{DegreeMasters, compileExact([]string{"m.tech", "mtech", "m.e.", "master", "masters", "mca", "msc", "m.sc", "mba", "m.s."})},
	{DegreeBachelors, compileExact([]string{"b.tech", "btech", "b.e.", "bachelor", "bachelors", "bca", "bsc", "b.sc", "b.s."})},
	{DegreeDiploma, compileExact([]string{"diploma"})},
}

// ExtractEducation returns the single highest degree level mentioned in text
// together with the text of the education section, if there is one.
func (e *Extractor) ExtractEducation(text string) Education {
	var edu Education
	if strings.TrimSpace(text) == "" {
		return edu
	}

	if section, ok := findSection(text, educationHeadings); ok {
		edu.Section = section
	}

	lower := lowerASCII(text)
	for _, level := range degreeKeywords {
		for _, t := range level.terms {
			if t.present(lower) {
				edu.Highest = level.degree
				return edu
			}
		}
	}
	return edu
}
