// Package ranking scores candidate profiles against job requirements and
// orders them into a ranked list.
//
// Everything in this package is pure computation: inputs are already-resolved
// values (profiles, requirements, optional embeddings) and a Scorer or Ranker
// may be shared across goroutines.
package ranking

import "errors"

// ErrInvalidProfile is returned when a candidate carries values that cannot be
// scored, such as NaN experience or non-finite embedding components.
var ErrInvalidProfile = errors.New("invalid candidate profile")

// CandidateProfile is the scoring view of a stored candidate.
type CandidateProfile struct {
	ID              string    `json:"candidate_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	PrimarySkills   []string  `json:"primary_skills"`
	SecondarySkills []string  `json:"secondary_skills"`
	TotalExperience float64   `json:"total_experience"`
	Domains         []string  `json:"domains"`
	Education       string    `json:"education"`
	Embedding       []float32 `json:"-"`
}

// Skills returns primary then secondary skills.
func (c CandidateProfile) Skills() []string {
	out := make([]string, 0, len(c.PrimarySkills)+len(c.SecondarySkills))
	out = append(out, c.PrimarySkills...)
	return append(out, c.SecondarySkills...)
}

// JobRequirements describes what a role asks for. A nil MaxExperience means
// the role has no experience ceiling.
type JobRequirements struct {
	ID                string    `json:"job_id"`
	Description       string    `json:"job_description,omitempty"`
	RequiredSkills    []string  `json:"required_skills"`
	PreferredSkills   []string  `json:"preferred_skills"`
	MinExperience     float64   `json:"min_experience"`
	MaxExperience     *float64  `json:"max_experience,omitempty"`
	Domain            string    `json:"domain,omitempty"`
	EducationRequired string    `json:"education_required,omitempty"`
	Embedding         []float32 `json:"-"`
}

// MatchResult is the outcome of scoring one candidate against one job.
// Sub-scores are in [0,1]; TotalScore is in [0,100].
type MatchResult struct {
	CandidateID        string   `json:"candidate_id"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	SkillsScore        float64  `json:"skills_score"`
	ExperienceScore    float64  `json:"experience_score"`
	DomainScore        float64  `json:"domain_score"`
	EducationScore     float64  `json:"education_score"`
	ExperienceMatch    Label    `json:"experience_match"`
	DomainMatch        Label    `json:"domain_match"`
	EducationMatch     Label    `json:"education_match"`
	MatchedSkills      []string `json:"matched_skills"`
	MissingSkills      []string `json:"missing_skills"`
	SemanticSimilarity float64  `json:"semantic_similarity"`
	SemanticBoost      float64  `json:"semantic_boost"`
	TotalScore         float64  `json:"total_score"`
	Rank               int      `json:"rank"`
}

// MatchPercent is TotalScore rounded to one decimal.
func (r MatchResult) MatchPercent() float64 {
	return round(r.TotalScore, 1)
}
