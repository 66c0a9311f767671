package extraction

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Lexicon holds the closed vocabularies used by an Extractor. It is immutable
// after construction and may be shared.
type Lexicon struct {
	skills       []term
	skillIndex   map[string]struct{}
	domains      []string
	techKeywords []term
}

// term is a lower-cased vocabulary entry with its compiled matcher.
type term struct {
	text    string
	pattern *regexp.Regexp
}

// NewLexicon builds a lexicon from the given vocabularies. Skills are matched
// case-insensitively on word boundaries; tech keywords and domains are matched
// as case-insensitive substrings, and domains keep their given casing.
func NewLexicon(skills, domains, techKeywords []string) *Lexicon {
	l := &Lexicon{
		skills:       compileTerms(skills),
		skillIndex:   make(map[string]struct{}, len(skills)),
		domains:      dedupeFold(domains),
		techKeywords: compileTerms(techKeywords),
	}
	for _, t := range l.skills {
		l.skillIndex[t.text] = struct{}{}
	}
	return l
}

var (
	defaultLexicon     *Lexicon
	defaultLexiconOnce sync.Once
)

// DefaultLexicon returns the built-in technical-skill, domain and tech-keyword
// vocabularies.
func DefaultLexicon() *Lexicon {
	defaultLexiconOnce.Do(func() {
		defaultLexicon = NewLexicon(defaultSkills, defaultDomains, defaultTechKeywords)
	})
	return defaultLexicon
}

// IsSkill reports whether s is a vocabulary skill, ignoring case.
func (l *Lexicon) IsSkill(s string) bool {
	_, ok := l.skillIndex[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// Domains returns a copy of the domain vocabulary.
func (l *Lexicon) Domains() []string {
	return append([]string(nil), l.domains...)
}

// compileTerms lower-cases and de-duplicates terms and orders them longest
// first, so longer phrases claim their text before shorter overlapping ones.
func compileTerms(words []string) []term {
	return compile(words, termPattern)
}

// compileExact is compileTerms without separator variants, for short dotted
// abbreviations such as "b.e" that would otherwise match ordinary words.
func compileExact(words []string) []term {
	return compile(words, regexp.QuoteMeta)
}

func compile(words []string, pattern func(string) string) []term {
	words = dedupeFold(words)
	out := make([]term, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(w)
		out = append(out, term{text: w, pattern: regexp.MustCompile(pattern(w))})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i].text) != len(out[j].text) {
			return len(out[i].text) > len(out[j].text)
		}
		return out[i].text < out[j].text
	})
	return out
}

// termPattern escapes w and lets every separator between two alphanumeric
// characters also match a different separator or none, so "sql server"
// matches "sql-server", "sql_server" and "sqlserver", and "node.js" matches
// "nodejs".
func termPattern(w string) string {
	var b strings.Builder
	for i := 0; i < len(w); i++ {
		c := w[i]
		if isSeparator(c) && i > 0 && i < len(w)-1 && isAlnum(w[i-1]) && isAlnum(w[i+1]) {
			b.WriteString(`(?:\s+|[-_.])?`)
			continue
		}
		b.WriteString(regexp.QuoteMeta(string(c)))
	}
	return b.String()
}

// span is a half-open byte range of a match.
type span struct{ start, end int }

// findAll returns the boundary-respecting spans of t in lower that do not
// overlap consumed, marking them consumed.
func (t term) findAll(lower string, consumed []bool) []span {
	var out []span
	for _, loc := range t.pattern.FindAllStringIndex(lower, -1) {
		s, e := loc[0], loc[1]
		if s > 0 && isAlnum(lower[s-1]) || e < len(lower) && isAlnum(lower[e]) {
			continue
		}
		if overlaps(consumed, s, e) {
			continue
		}
		for i := s; i < e; i++ {
			consumed[i] = true
		}
		out = append(out, span{s, e})
	}
	return out
}

// present reports whether t occurs in lower on word boundaries.
func (t term) present(lower string) bool {
	return len(t.findAll(lower, make([]bool, len(lower)))) > 0
}

func overlaps(consumed []bool, start, end int) bool {
	for i := start; i < end; i++ {
		if consumed[i] {
			return true
		}
	}
	return false
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func isSeparator(c byte) bool {
	return c == ' ' || c == '-' || c == '_' || c == '.'
}

// lowerASCII lower-cases ASCII letters only, keeping byte offsets aligned with s.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// dedupeFold trims and removes case-insensitive duplicates, keeping the first.
func dedupeFold(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		key := strings.ToLower(item)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
