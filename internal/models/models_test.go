package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/ats-engine/internal/ranking"
)

func TestSkillList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  SkillList
	}{
		{"array", `["Python", " Django ", ""]`, SkillList{"Python", "Django"}},
		{"comma string", `"Python, Django,,PostgreSQL "`, SkillList{"Python", "Django", "PostgreSQL"}},
		{"array with commas", `["Go, Rust", "Kafka"]`, SkillList{"Go", "Rust", "Kafka"}},
		{"empty string", `""`, SkillList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got SkillList
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.want, got)
		})
	}

	var bad SkillList
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

func TestRankRequest_SkillsEitherShape(t *testing.T) {
	var req RankRequest
	require.NoError(t, json.Unmarshal([]byte(`{"job_description": "x", "required_skills": "Go, SQL", "preferred_skills": ["Docker"]}`), &req))
	assert.Equal(t, SkillList{"Go", "SQL"}, req.RequiredSkills)
	assert.Equal(t, SkillList{"Docker"}, req.PreferredSkills)
	assert.Nil(t, req.MinExperience)
}

func TestNewRanking(t *testing.T) {
	id := uuid.New()
	row, err := NewRanking("JD_1", ranking.MatchResult{
		CandidateID:     id.String(),
		Name:            "Asha",
		SkillsScore:     0.8,
		ExperienceMatch: ranking.LabelHigh,
		DomainMatch:     ranking.LabelLow,
		MatchedSkills:   []string{"Python"},
		TotalScore:      76.46,
		Rank:            2,
	})
	require.NoError(t, err)

	assert.Equal(t, id, row.CandidateID)
	assert.Equal(t, "JD_1", row.JobID)
	assert.Equal(t, 2, row.RankPosition)
	assert.Equal(t, 76.5, row.MatchPercent)
	assert.Equal(t, "High", row.ExperienceMatch)
	assert.Equal(t, "Low", row.DomainMatch)
	assert.Equal(t, AlgorithmVersion, row.AlgorithmVersion)
	assert.NotEqual(t, uuid.Nil, row.ID)

	_, err = NewRanking("JD_1", ranking.MatchResult{CandidateID: "not-a-uuid"})
	assert.Error(t, err)
}

func TestCandidate_IndexMetadataPlaceholders(t *testing.T) {
	c := &Candidate{ID: uuid.New(), CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
	meta := c.IndexMetadata()

	assert.Equal(t, UnknownValue, meta["name"])
	assert.Equal(t, NoEmail, meta["email"])
	assert.Equal(t, []string{NoSkills}, meta["primary_skills"])
	assert.Equal(t, []string{UnknownValue}, meta["domain"])
	assert.Equal(t, UnknownValue, meta["education"])
	assert.Equal(t, "2024-03-01T00:00:00Z", meta["created_at"])
	assert.Equal(t, c.ID.String(), meta["candidate_id"])
}

func TestCandidate_ProfileAndSkills(t *testing.T) {
	c := &Candidate{
		ID:              uuid.New(),
		PrimarySkills:   []string{"Python"},
		SecondarySkills: []string{"Docker"},
		TotalExperience: 4,
		Domains:         []string{"FinTech"},
		Education:       "Masters",
	}

	assert.Equal(t, []string{"Python", "Docker"}, c.AllSkills())

	p := c.Profile()
	assert.Equal(t, c.ID.String(), p.ID)
	assert.Equal(t, []string{"Python", "Docker"}, p.Skills())
	assert.Equal(t, "Masters", p.Education)
	assert.Equal(t, 4.0, p.TotalExperience)
}

func TestJob_Requirements(t *testing.T) {
	ceiling := 8.0
	j := &Job{
		ID:                "JD_1",
		RequiredSkills:    []string{"Go"},
		PreferredSkills:   []string{"Kafka"},
		MinExperience:     3,
		MaxExperience:     &ceiling,
		Domain:            "FinTech",
		EducationRequired: "Bachelors",
	}

	req := j.Requirements()
	assert.Equal(t, "JD_1", req.ID)
	assert.Equal(t, []string{"Go"}, req.RequiredSkills)
	require.NotNil(t, req.MaxExperience)
	assert.Equal(t, 8.0, *req.MaxExperience)
	assert.Equal(t, "Bachelors", req.EducationRequired)
}
