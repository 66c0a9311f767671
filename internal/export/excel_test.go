package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"alfredoptarigan/ats-engine/internal/models"
)

func sampleRankings() []models.Ranking {
	return []models.Ranking{
		{
			CandidateName: "Asha Verma", CandidateEmail: "asha@example.com", RankPosition: 1,
			MatchPercent: 88, SkillsScore: 1, ExperienceScore: 1, DomainScore: 0.7, EducationScore: 1,
			MatchedSkills: []string{"Python", "Django"}, MissingSkills: []string{},
			ExperienceMatch: "Excellent", DomainMatch: "Related", AlgorithmVersion: models.AlgorithmVersion,
		},
		{
			CandidateName: "Ravi", RankPosition: 2, MatchPercent: 52.5,
			MatchedSkills: []string{"Python"}, MissingSkills: []string{"Django"},
			AlgorithmVersion: models.AlgorithmVersion,
		},
	}
}

func TestWriteRankings(t *testing.T) {
	job := &models.Job{
		ID:             "JD_1709285400",
		Title:          "Backend Engineer",
		RequiredSkills: []string{"Python", "Django"},
		MinExperience:  5,
	}
	generated := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, WriteRankings(&buf, job, sampleRankings(), generated))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, CandidatesSheet}, f.GetSheetList())

	title, err := f.GetCellValue(SummarySheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Candidate Ranking Report", title)

	jobID, _ := f.GetCellValue(SummarySheet, "B3")
	assert.Equal(t, "JD_1709285400", jobID)
	when, _ := f.GetCellValue(SummarySheet, "B5")
	assert.Equal(t, "2024-03-01 09:30:00", when)
	skills, _ := f.GetCellValue(SummarySheet, "B6")
	assert.Equal(t, "Python, Django", skills)
	maxExp, _ := f.GetCellValue(SummarySheet, "B9")
	assert.Equal(t, "none", maxExp)

	rows, err := f.GetRows(CandidatesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, candidateHeaders, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "Asha Verma", rows[1][1])
	assert.Equal(t, "88", rows[1][3])
	assert.Equal(t, "Python, Django", rows[1][11])
	assert.Equal(t, "2", rows[2][0])
	assert.Equal(t, "52.5", rows[2][3])
	assert.Equal(t, "Django", rows[2][12])
}

func TestWriteRankings_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRankings(&buf, &models.Job{ID: "JOB-1"}, nil, time.Now()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(CandidatesSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "rankings_JD_1709285400.xlsx", Filename("JD_1709285400"))
	assert.Equal(t, "rankings_a_b_c.xlsx", Filename("a/b c"))
}

func TestStyleBands(t *testing.T) {
	b := styleBands{strong: 1, good: 2, fair: 3, weak: 4}
	assert.Equal(t, 1, b.forPercent(80))
	assert.Equal(t, 2, b.forPercent(79.9))
	assert.Equal(t, 3, b.forPercent(50))
	assert.Equal(t, 4, b.forPercent(49.9))
}
