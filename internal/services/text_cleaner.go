package services

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	blockBoundary = regexp.MustCompile(`(?i)</(?:p|div|li|h[1-6]|tr)>|<br\s*/?>|</w:p>`)
	tabBoundary   = regexp.MustCompile(`<w:tab\s*/>`)
)

// TextCleaner turns markup into plain text with one line per block element.
type TextCleaner struct {
	policy *bluemonday.Policy
}

func NewTextCleaner() *TextCleaner {
	return &TextCleaner{policy: bluemonday.StrictPolicy()}
}

// StripMarkup removes every tag from HTML or WordprocessingML, keeping block
// boundaries as newlines and decoding entities.
func (c *TextCleaner) StripMarkup(markup string) string {
	if !strings.Contains(markup, "<") {
		return strings.TrimSpace(markup)
	}

	markup = blockBoundary.ReplaceAllString(markup, "$0\n")
	markup = tabBoundary.ReplaceAllString(markup, " ")
	return CleanText(html.UnescapeString(c.policy.Sanitize(markup)))
}

// CleanText trims every line and drops blank ones.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
