package models

import (
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/ats-engine/internal/ranking"
)

type CandidateStatus string

const (
	CandidateActive   CandidateStatus = "active"
	CandidateArchived CandidateStatus = "archived"
)

// IndexState tracks whether a candidate's embedding has reached the vector index.
type IndexState string

const (
	IndexPending IndexState = "pending"
	IndexIndexed IndexState = "indexed"
	IndexFailed  IndexState = "failed"
)

// Placeholders written to the vector index for missing values. The search
// text builder skips them.
const (
	UnknownValue = "Unknown"
	NoSkills     = "No skills"
	NoEmail      = "No email"
)

type Candidate struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"candidate_id"`
	Name               string          `gorm:"type:text" json:"name"`
	Email              string          `gorm:"type:text;index" json:"email"`
	Phone              string          `gorm:"type:text" json:"phone"`
	CurrentLocation    string          `gorm:"type:text" json:"current_location"`
	CurrentCompany     string          `gorm:"type:text" json:"current_company"`
	CurrentDesignation string          `gorm:"type:text" json:"current_designation"`
	PrimarySkills      []string        `gorm:"type:jsonb;serializer:json" json:"primary_skills"`
	SecondarySkills    []string        `gorm:"type:jsonb;serializer:json" json:"secondary_skills"`
	TotalExperience    float64         `gorm:"not null;default:0" json:"total_experience"`
	Domains            []string        `gorm:"type:jsonb;serializer:json" json:"domains"`
	Education          string          `gorm:"type:text" json:"education"`
	EducationDetails   string          `gorm:"type:text" json:"education_details,omitempty"`
	ResumeSummary      string          `gorm:"type:text" json:"resume_summary,omitempty"`
	Certifications     []string        `gorm:"type:jsonb;serializer:json" json:"certifications,omitempty"`
	PreferredLocations []string        `gorm:"type:jsonb;serializer:json" json:"preferred_locations,omitempty"`
	ResumeText         string          `gorm:"type:text" json:"-"`
	Filename           string          `gorm:"type:text" json:"filename"`
	OriginalFileName   string          `gorm:"type:text" json:"original_filename"`
	FileType           string          `gorm:"type:text" json:"file_type"`
	FilePath           string          `gorm:"type:text" json:"-"`
	ExtractionSource   string          `gorm:"type:text" json:"extraction_source"`
	Embedding          []float32       `gorm:"type:jsonb;serializer:json" json:"-"`
	Status             CandidateStatus `gorm:"not null;default:'active';index" json:"status"`
	IndexState         IndexState      `gorm:"not null;default:'pending';index" json:"index_state"`
	IndexError         *string         `gorm:"type:text" json:"index_error,omitempty"`
	CreatedAt          time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// AllSkills returns primary then secondary skills.
func (c *Candidate) AllSkills() []string {
	out := make([]string, 0, len(c.PrimarySkills)+len(c.SecondarySkills))
	out = append(out, c.PrimarySkills...)
	return append(out, c.SecondarySkills...)
}

// Profile converts the record into the scoring view.
func (c *Candidate) Profile() ranking.CandidateProfile {
	return ranking.CandidateProfile{
		ID:              c.ID.String(),
		Name:            c.Name,
		Email:           c.Email,
		PrimarySkills:   c.PrimarySkills,
		SecondarySkills: c.SecondarySkills,
		TotalExperience: c.TotalExperience,
		Domains:         c.Domains,
		Education:       c.Education,
		Embedding:       c.Embedding,
	}
}

// IndexMetadata is the payload stored next to the candidate's vector. Missing
// values are replaced by placeholders so every point carries the same keys.
func (c *Candidate) IndexMetadata() map[string]any {
	return map[string]any{
		"candidate_id":        c.ID.String(),
		"name":                orDefault(c.Name, UnknownValue),
		"email":               orDefault(c.Email, NoEmail),
		"primary_skills":      orDefaultList(c.PrimarySkills, NoSkills),
		"secondary_skills":    c.SecondarySkills,
		"all_skills":          c.AllSkills(),
		"total_experience":    c.TotalExperience,
		"domain":              orDefaultList(c.Domains, UnknownValue),
		"education":           orDefault(c.Education, UnknownValue),
		"current_company":     c.CurrentCompany,
		"current_designation": c.CurrentDesignation,
		"current_location":    c.CurrentLocation,
		"resume_summary":      c.ResumeSummary,
		"certifications":      c.Certifications,
		"preferred_locations": c.PreferredLocations,
		"file_type":           orDefault(c.FileType, UnknownValue),
		"source":              "resume_upload",
		"created_at":          c.CreatedAt.Format(time.RFC3339),
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func orDefaultList(v []string, fallback string) []string {
	if len(v) == 0 {
		return []string{fallback}
	}
	return v
}
