package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"alfredoptarigan/ats-engine/internal/export"
	"alfredoptarigan/ats-engine/internal/models"
)

func TestSaveWorkbook(t *testing.T) {
	job := &models.Job{ID: "JD_1", Title: "Backend Engineer"}
	rankings := []models.Ranking{
		{JobID: "JD_1", CandidateID: uuid.New(), CandidateName: "Asha", RankPosition: 1, MatchPercent: 88},
	}
	generatedAt := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, saveWorkbook(path, job, rankings, generatedAt))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(export.CandidatesSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	err = saveWorkbook(filepath.Join(t.TempDir(), "missing", "report.xlsx"), job, rankings, generatedAt)
	assert.ErrorContains(t, err, "failed to create report")
}
