// Package query parses boolean candidate-search queries and evaluates them
// against the searchable text of a candidate.
package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ParsedQuery is a conjunction of disjunctions: every group must have at
// least one term present. An empty query matches everything.
type ParsedQuery struct {
	AndTerms [][]string `json:"and_terms"`
}

// Empty reports whether the query has no terms.
func (q ParsedQuery) Empty() bool {
	return len(q.AndTerms) == 0
}

var (
	quotedPhrase = regexp.MustCompile(`"([^"]+)"`)
	andSplit     = regexp.MustCompile(`(?i)\s+AND\s+`)
	orSplit      = regexp.MustCompile(`(?i)\s+OR\s+`)
	placeholder  = regexp.MustCompile(`\x00q(\d+)\x00`)
)

// Parse splits q on AND into groups and each group on OR into terms. Quoted
// phrases are kept whole, so AND/OR inside quotes are literal. One layer of
// enclosing parentheses is removed from each group. Case is preserved.
func Parse(q string) ParsedQuery {
	q = strings.TrimSpace(q)
	if q == "" {
		return ParsedQuery{AndTerms: [][]string{}}
	}

	var phrases []string
	q = quotedPhrase.ReplaceAllStringFunc(q, func(m string) string {
		phrases = append(phrases, quotedPhrase.FindStringSubmatch(m)[1])
		return fmt.Sprintf("\x00q%d\x00", len(phrases)-1)
	})

	restore := func(s string) string {
		return placeholder.ReplaceAllStringFunc(s, func(m string) string {
			i, err := strconv.Atoi(placeholder.FindStringSubmatch(m)[1])
			if err != nil || i >= len(phrases) {
				return m
			}
			return phrases[i]
		})
	}

	groups := make([][]string, 0)
	for _, part := range andSplit.Split(q, -1) {
		part = strings.TrimSpace(part)
		part = strings.TrimSpace(stripParens(part))
		if part == "" {
			continue
		}

		terms := make([]string, 0)
		for _, term := range orSplit.Split(part, -1) {
			term = strings.TrimSpace(strings.Trim(strings.TrimSpace(term), "()"))
			if term == "" {
				continue
			}
			terms = append(terms, restore(term))
		}
		if len(terms) > 0 {
			groups = append(groups, terms)
		}
	}

	return ParsedQuery{AndTerms: groups}
}

// Literal treats the whole of q as a single term.
func Literal(q string) ParsedQuery {
	q = strings.TrimSpace(q)
	if q == "" {
		return ParsedQuery{AndTerms: [][]string{}}
	}
	return ParsedQuery{AndTerms: [][]string{{q}}}
}

// IsBoolean reports whether q uses boolean syntax: an AND or OR operator
// between spaces, or a parenthesis.
func IsBoolean(q string) bool {
	upper := strings.ToUpper(q)
	return strings.Contains(upper, " AND ") || strings.Contains(upper, " OR ") || strings.Contains(q, "(")
}

// Compile parses q as boolean syntax when it has any, and as a literal otherwise.
func Compile(q string) ParsedQuery {
	if IsBoolean(q) {
		return Parse(q)
	}
	return Literal(q)
}

// Matches reports whether every group of q has a term contained in
// searchable, which must already be lower-cased.
func Matches(searchable string, q ParsedQuery) bool {
	for _, group := range q.AndTerms {
		matched := false
		for _, term := range group {
			term = strings.Trim(strings.ToLower(strings.TrimSpace(term)), `"`)
			if term == "" {
				continue
			}
			if strings.Contains(searchable, term) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func stripParens(s string) string {
	s = strings.TrimPrefix(s, "(")
	return strings.TrimSuffix(s, ")")
}
