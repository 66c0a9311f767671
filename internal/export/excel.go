// Package export renders stored rankings as spreadsheet reports.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"alfredoptarigan/ats-engine/internal/models"
)

const (
	SummarySheet    = "Summary"
	CandidatesSheet = "Ranked Candidates"

	// ContentType is the MIME type of the workbook WriteRankings produces.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var candidateHeaders = []string{
	"Rank", "Candidate", "Email", "Match %", "Skills", "Experience", "Domain", "Education",
	"Semantic Similarity", "Experience Match", "Domain Match", "Matched Skills", "Missing Skills",
}

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

// Filename is the download name for a job's workbook.
func Filename(jobID string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, jobID)
	return fmt.Sprintf("rankings_%s.xlsx", safe)
}

// WriteRankings writes a workbook with a Summary sheet describing job and a
// Ranked Candidates sheet with one row per ranking, in the given order.
func WriteRankings(w io.Writer, job *models.Job, rankings []models.Ranking, generatedAt time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(CandidatesSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := writeSummary(f, job, rankings, generatedAt); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := writeCandidates(f, rankings); err != nil {
		return fmt.Errorf("failed to create ranked candidates sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, job *models.Job, rankings []models.Ranking, generatedAt time.Time) error {
	sheet := SummarySheet
	if err := f.SetColWidth(sheet, "A", "A", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "B", 60); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	f.SetCellValue(sheet, "A1", "Candidate Ranking Report")
	f.SetCellStyle(sheet, "A1", "B1", headerStyle)
	f.MergeCell(sheet, "A1", "B1")

	maxExperience := "none"
	if job.MaxExperience != nil {
		maxExperience = fmt.Sprintf("%.1f", *job.MaxExperience)
	}

	rows := [][2]any{
		{"Job ID:", job.ID},
		{"Job Title:", job.Title},
		{"Generated:", generatedAt.Format("2006-01-02 15:04:05")},
		{"Required Skills:", strings.Join(job.RequiredSkills, ", ")},
		{"Preferred Skills:", strings.Join(job.PreferredSkills, ", ")},
		{"Min Experience:", job.MinExperience},
		{"Max Experience:", maxExperience},
		{"Domain:", job.Domain},
		{"Education Required:", job.EducationRequired},
		{"Candidates Ranked:", len(rankings)},
	}

	if len(rankings) > 0 {
		best, worst, total := rankings[0].MatchPercent, rankings[0].MatchPercent, 0.0
		for _, r := range rankings {
			best = max(best, r.MatchPercent)
			worst = min(worst, r.MatchPercent)
			total += r.MatchPercent
		}
		rows = append(rows,
			[2]any{"Highest Match %:", best},
			[2]any{"Lowest Match %:", worst},
			[2]any{"Average Match %:", fmt.Sprintf("%.2f", total/float64(len(rankings)))},
			[2]any{"Algorithm Version:", rankings[0].AlgorithmVersion},
		)
	}

	for i, kv := range rows {
		row := i + 3
		label := fmt.Sprintf("A%d", row)
		f.SetCellValue(sheet, label, kv[0])
		f.SetCellStyle(sheet, label, label, labelStyle)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), kv[1])
	}
	return nil
}

func writeCandidates(f *excelize.File, rankings []models.Ranking) error {
	sheet := CandidatesSheet

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder,
	})
	if err != nil {
		return err
	}

	bands, err := bandStyles(f)
	if err != nil {
		return err
	}

	for col, header := range candidateHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}
	if err := f.SetColWidth(sheet, "B", "C", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "L", "M", 40); err != nil {
		return err
	}

	for i, r := range rankings {
		row := i + 2
		values := []any{
			r.RankPosition,
			r.CandidateName,
			r.CandidateEmail,
			r.MatchPercent,
			r.SkillsScore,
			r.ExperienceScore,
			r.DomainScore,
			r.EducationScore,
			r.SemanticSimilarity,
			r.ExperienceMatch,
			r.DomainMatch,
			strings.Join(r.MatchedSkills, ", "),
			strings.Join(r.MissingSkills, ", "),
		}

		first, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, first, &values); err != nil {
			return err
		}

		last, _ := excelize.CoordinatesToCellName(len(values), row)
		f.SetCellStyle(sheet, first, last, bands.forPercent(r.MatchPercent))
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

type styleBands struct {
	strong, good, fair, weak int
}

func (b styleBands) forPercent(p float64) int {
	switch {
	case p >= 80:
		return b.strong
	case p >= 65:
		return b.good
	case p >= 50:
		return b.fair
	default:
		return b.weak
	}
}

func bandStyles(f *excelize.File) (styleBands, error) {
	colors := []string{"C6EFCE", "FFEB9C", "FFC7CE", "FF9999"}
	ids := make([]int, len(colors))
	for i, color := range colors {
		id, err := f.NewStyle(&excelize.Style{
			Fill:   excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Border: thinBorder,
		})
		if err != nil {
			return styleBands{}, err
		}
		ids[i] = id
	}
	return styleBands{strong: ids[0], good: ids[1], fair: ids[2], weak: ids[3]}, nil
}
