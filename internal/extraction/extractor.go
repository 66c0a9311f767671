// Package extraction derives structured candidate and job signals from plain
// text using closed vocabularies and regular expressions.
//
// Extractors never fail: empty or malformed input produces zero values.
package extraction

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// MinResumeTextLength is the shortest resume text worth extracting from.
const MinResumeTextLength = 100

var ErrTextTooShort = errors.New("resume text too short")

// ValidateText returns ErrTextTooShort when text has fewer than
// MinResumeTextLength characters once trimmed.
func ValidateText(text string) error {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < MinResumeTextLength {
		return ErrTextTooShort
	}
	return nil
}

// Extractor pulls profile fields out of text. It is safe for concurrent use.
type Extractor struct {
	lexicon *Lexicon
	now     func() time.Time
}

type Option func(*Extractor)

// WithClock sets the time source used to resolve "Present" in date ranges.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		if now != nil {
			e.now = now
		}
	}
}

// New returns an Extractor over lexicon, or DefaultLexicon when nil.
func New(lexicon *Lexicon, opts ...Option) *Extractor {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	e := &Extractor{lexicon: lexicon, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Extractor) Lexicon() *Lexicon {
	return e.lexicon
}

// Profile is everything the extractor can say about a resume.
type Profile struct {
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Location           string    `json:"current_location"`
	CurrentCompany     string    `json:"current_company"`
	CurrentDesignation string    `json:"current_designation"`
	Skills             SkillSet  `json:"skills"`
	TotalExperience    float64   `json:"total_experience"`
	Domains            []string  `json:"domains"`
	Education          Education `json:"education"`
}

// ExtractProfile runs every extractor over text.
func (e *Extractor) ExtractProfile(text string) Profile {
	return Profile{
		Name:               ExtractName(text),
		Email:              ExtractEmail(text),
		Phone:              ExtractPhone(text),
		Location:           ExtractLocation(text),
		CurrentCompany:     ExtractCurrentCompany(text),
		CurrentDesignation: ExtractCurrentDesignation(text),
		Skills:             e.ExtractSkills(text),
		TotalExperience:    e.ExtractExperience(text),
		Domains:            e.ExtractDomains(text),
		Education:          e.ExtractEducation(text),
	}
}
