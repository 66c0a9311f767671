package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"alfredoptarigan/ats-engine/internal/app"
	"alfredoptarigan/ats-engine/internal/export"
	"alfredoptarigan/ats-engine/internal/models"
	"alfredoptarigan/ats-engine/internal/services"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank stored candidates against a job",
	Long:  "Ranks every active candidate against a stored job or a job description file, prints the response as JSON and optionally writes an Excel report.",
	RunE:  runRank,
}

func init() {
	rankCmd.Flags().String("job-id", "", "stored job to rank against, or the id to store a new job under")
	rankCmd.Flags().String("description-file", "", "path to a plain text job description")
	rankCmd.Flags().String("title", "", "job title")
	rankCmd.Flags().StringSlice("required-skills", nil, "required skills, overriding the ones extracted from the description")
	rankCmd.Flags().StringSlice("preferred-skills", nil, "preferred skills")
	rankCmd.Flags().Int("top-k", 0, "maximum ranked candidates to return")
	rankCmd.Flags().String("xlsx", "", "write the ranking report to this path")

	for _, name := range []string{"job-id", "description-file", "title", "required-skills", "preferred-skills", "top-k", "xlsx"} {
		viper.BindPFlag("rank."+name, rankCmd.Flags().Lookup(name))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	req := models.RankRequest{
		JobID:           viper.GetString("rank.job-id"),
		JobTitle:        viper.GetString("rank.title"),
		RequiredSkills:  models.SplitSkills(viper.GetStringSlice("rank.required-skills")...),
		PreferredSkills: models.SplitSkills(viper.GetStringSlice("rank.preferred-skills")...),
		TopK:            viper.GetInt("rank.top-k"),
	}

	if path := viper.GetString("rank.description-file"); path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read job description %s: %w", path, err)
		}
		req.JobDescription = string(content)
	}
	if req.JobID == "" && req.JobDescription == "" {
		return fmt.Errorf("one of --job-id or --description-file is required")
	}

	return withEngine(cmd.Context(), func(ctx context.Context, engine *app.App) error {
		resp, err := engine.Ranking.RankByJob(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to rank candidates: %w", err)
		}

		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal ranking response: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		if path := viper.GetString("rank.xlsx"); path != "" {
			return writeReport(engine, resp.JobID, path)
		}
		return nil
	})
}

func writeReport(engine *app.App, jobID, path string) error {
	job, err := engine.Ranking.GetJob(jobID)
	if err != nil {
		return err
	}
	rankings, err := engine.Ranking.History(jobID, 0)
	if err != nil {
		return err
	}

	return saveWorkbook(path, job, services.LatestRun(rankings), time.Now())
}

// saveWorkbook writes the report to path. A failed close is reported since the
// file may be truncated.
func saveWorkbook(path string, job *models.Job, rankings []models.Ranking, generatedAt time.Time) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close report %s: %w", path, cerr)
		}
	}()

	if err := export.WriteRankings(f, job, rankings, generatedAt); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
