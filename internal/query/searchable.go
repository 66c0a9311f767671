package query

import (
	"fmt"
	"strings"
)

// SearchableFields is the order in which metadata fields are concatenated.
var SearchableFields = []string{
	"primary_skills",
	"secondary_skills",
	"all_skills",
	"name",
	"email",
	"current_company",
	"current_designation",
	"current_location",
	"resume_summary",
	"domain",
	"education",
	"certifications",
	"preferred_locations",
}

// Placeholder values stored for missing data. They never take part in matching.
var sentinels = map[string]struct{}{
	"unknown":   {},
	"no skills": {},
	"no email":  {},
	"none":      {},
	"n/a":       {},
}

// BuildSearchableText joins the searchable fields of metadata, lower-cased and
// separated by single spaces. Empty and placeholder values are skipped.
func BuildSearchableText(metadata map[string]any) string {
	parts := make([]string, 0, len(SearchableFields))
	for _, field := range SearchableFields {
		for _, v := range flatten(metadata[field]) {
			v = strings.ToLower(strings.Join(strings.Fields(v), " "))
			if v == "" {
				continue
			}
			if _, skip := sentinels[v]; skip {
				continue
			}
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

func flatten(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		return []string{val}
	case []string:
		return val
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, flatten(item)...)
		}
		return out
	case fmt.Stringer:
		return []string{val.String()}
	default:
		return []string{fmt.Sprint(val)}
	}
}
