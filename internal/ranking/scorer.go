package ranking

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Scorer computes a MatchResult for one candidate against one job. It holds
// only immutable configuration and is safe for concurrent use.
type Scorer struct {
	weights Weights
	related relatedDomains
	logger  *zap.Logger
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithLogger sets the logger used for weight warnings.
func WithLogger(l *zap.Logger) Option {
	return func(s *Scorer) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRelatedDomains replaces the related-domain table.
func WithRelatedDomains(table map[string][]string) Option {
	return func(s *Scorer) {
		s.related = newRelatedDomains(table)
	}
}

// NewScorer builds a scorer using weights, normalised to sum to 1.
func NewScorer(weights Weights, opts ...Option) *Scorer {
	s := &Scorer{
		related: newRelatedDomains(DefaultRelatedDomains()),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.weights = normalizeWeights(weights, s.logger)
	return s
}

// Weights returns the normalised weights in use.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Score evaluates candidate against job. The only errors are for structurally
// invalid candidates; missing data scores neutrally instead.
func (s *Scorer) Score(candidate CandidateProfile, job JobRequirements) (result MatchResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = MatchResult{}
			err = fmt.Errorf("scoring candidate %q: %v", candidate.ID, r)
		}
	}()

	if err := validate(candidate, job); err != nil {
		return MatchResult{}, err
	}

	skills := scoreSkills(candidate.Skills(), job.RequiredSkills, job.PreferredSkills)
	experience := scoreExperience(candidate.TotalExperience, job.MinExperience, job.MaxExperience)
	domain := s.related.scoreDomain(candidate.Domains, job.Domain)
	education := scoreEducation(candidate.Education, job.EducationRequired)

	total := s.weights.Skills*skills.score +
		s.weights.Experience*experience.Score +
		s.weights.Domain*domain.Score +
		s.weights.Education*education.Score

	var similarity, boost float64
	if len(candidate.Embedding) > 0 && len(job.Embedding) > 0 {
		similarity = CosineSimilarity(candidate.Embedding, job.Embedding)
		boost = semanticBoost(similarity)
		total += boost
	}

	return MatchResult{
		CandidateID:        candidate.ID,
		Name:               candidate.Name,
		Email:              candidate.Email,
		SkillsScore:        round(skills.score, 4),
		ExperienceScore:    experience.Score,
		DomainScore:        domain.Score,
		EducationScore:     education.Score,
		ExperienceMatch:    experience.Label,
		DomainMatch:        domain.Label,
		EducationMatch:     education.Label,
		MatchedSkills:      skills.matched,
		MissingSkills:      skills.missing,
		SemanticSimilarity: round(similarity, 4),
		SemanticBoost:      boost,
		TotalScore:         round(clamp01(total)*100, 2),
	}, nil
}

func validate(candidate CandidateProfile, job JobRequirements) error {
	if math.IsNaN(candidate.TotalExperience) || math.IsInf(candidate.TotalExperience, 0) {
		return fmt.Errorf("%w: candidate %q has non-finite experience", ErrInvalidProfile, candidate.ID)
	}
	if !finiteVector(candidate.Embedding) {
		return fmt.Errorf("%w: candidate %q has non-finite embedding values", ErrInvalidProfile, candidate.ID)
	}
	if math.IsNaN(job.MinExperience) || (job.MaxExperience != nil && math.IsNaN(*job.MaxExperience)) || !finiteVector(job.Embedding) {
		return fmt.Errorf("%w: job %q has non-finite values", ErrInvalidProfile, job.ID)
	}
	return nil
}
