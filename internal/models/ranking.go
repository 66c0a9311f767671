package models

import (
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/ats-engine/internal/ranking"
)

// AlgorithmVersion is stamped on every stored ranking row.
const AlgorithmVersion = "v1.0"

// Ranking is one eligible candidate's stored result for a job.
type Ranking struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobID              string    `gorm:"type:text;not null;index" json:"job_id"`
	CandidateID        uuid.UUID `gorm:"type:uuid;not null;index" json:"candidate_id"`
	CandidateName      string    `gorm:"type:text" json:"name"`
	CandidateEmail     string    `gorm:"type:text" json:"email"`
	RankPosition       int       `gorm:"not null" json:"rank"`
	TotalScore         float64   `gorm:"not null" json:"total_score"`
	MatchPercent       float64   `gorm:"not null" json:"match_percent"`
	SkillsScore        float64   `json:"skills_score"`
	ExperienceScore    float64   `json:"experience_score"`
	DomainScore        float64   `json:"domain_score"`
	EducationScore     float64   `json:"education_score"`
	SemanticSimilarity float64   `json:"semantic_similarity"`
	MatchedSkills      []string  `gorm:"type:jsonb;serializer:json" json:"matched_skills"`
	MissingSkills      []string  `gorm:"type:jsonb;serializer:json" json:"missing_skills"`
	ExperienceMatch    string    `gorm:"type:text" json:"experience_match"`
	DomainMatch        string    `gorm:"type:text" json:"domain_match"`
	EducationMatch     string    `gorm:"type:text" json:"education_match"`
	AlgorithmVersion   string    `gorm:"type:text;not null" json:"ranking_algorithm_version"`
	CreatedAt          time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	Job       Job       `gorm:"foreignKey:JobID" json:"-"`
	Candidate Candidate `gorm:"foreignKey:CandidateID" json:"-"`
}

func (Ranking) TableName() string {
	return "rankings"
}

// NewRanking builds the stored row for a scored candidate. It fails only when
// the result carries a malformed candidate id.
func NewRanking(jobID string, r ranking.MatchResult) (Ranking, error) {
	candidateID, err := uuid.Parse(r.CandidateID)
	if err != nil {
		return Ranking{}, err
	}
	return Ranking{
		ID:                 uuid.New(),
		JobID:              jobID,
		CandidateID:        candidateID,
		CandidateName:      r.Name,
		CandidateEmail:     r.Email,
		RankPosition:       r.Rank,
		TotalScore:         r.TotalScore,
		MatchPercent:       r.MatchPercent(),
		SkillsScore:        r.SkillsScore,
		ExperienceScore:    r.ExperienceScore,
		DomainScore:        r.DomainScore,
		EducationScore:     r.EducationScore,
		SemanticSimilarity: r.SemanticSimilarity,
		MatchedSkills:      r.MatchedSkills,
		MissingSkills:      r.MissingSkills,
		ExperienceMatch:    string(r.ExperienceMatch),
		DomainMatch:        string(r.DomainMatch),
		EducationMatch:     string(r.EducationMatch),
		AlgorithmVersion:   AlgorithmVersion,
		CreatedAt:          time.Now(),
	}, nil
}
