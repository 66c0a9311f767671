package models

import (
	"time"

	"alfredoptarigan/ats-engine/internal/ranking"
)

type Job struct {
	ID                string    `gorm:"type:text;primary_key" json:"job_id"`
	Title             string    `gorm:"type:text" json:"job_title"`
	Description       string    `gorm:"type:text" json:"job_description"`
	RequiredSkills    []string  `gorm:"type:jsonb;serializer:json" json:"required_skills"`
	PreferredSkills   []string  `gorm:"type:jsonb;serializer:json" json:"preferred_skills"`
	MinExperience     float64   `gorm:"not null;default:0" json:"min_experience"`
	MaxExperience     *float64  `json:"max_experience,omitempty"`
	Domain            string    `gorm:"type:text" json:"domain"`
	EducationRequired string    `gorm:"type:text" json:"education_required"`
	Embedding         []float32 `gorm:"type:jsonb;serializer:json" json:"-"`
	CreatedAt         time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Job) TableName() string {
	return "jobs"
}

// Requirements converts the record into the scoring view.
func (j *Job) Requirements() ranking.JobRequirements {
	return ranking.JobRequirements{
		ID:                j.ID,
		Description:       j.Description,
		RequiredSkills:    j.RequiredSkills,
		PreferredSkills:   j.PreferredSkills,
		MinExperience:     j.MinExperience,
		MaxExperience:     j.MaxExperience,
		Domain:            j.Domain,
		EducationRequired: j.EducationRequired,
		Embedding:         j.Embedding,
	}
}
