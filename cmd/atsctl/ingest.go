package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"alfredoptarigan/ats-engine/internal/app"
	"alfredoptarigan/ats-engine/internal/models"
	"alfredoptarigan/ats-engine/internal/services"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest every resume in a directory",
	Long:  "Walks a directory for pdf, docx and txt resumes, stores a copy of each, extracts the candidate profile and indexes it.",
	RunE:  runIngest,
}

func init() {
	ingestCmd.Flags().String("dir", "", "directory to read resumes from (required)")
	ingestCmd.Flags().Bool("recursive", false, "descend into subdirectories")

	viper.BindPFlag("ingest.dir", ingestCmd.Flags().Lookup("dir"))
	viper.BindPFlag("ingest.recursive", ingestCmd.Flags().Lookup("recursive"))

	rootCmd.AddCommand(ingestCmd)
}

type ingestSummary struct {
	Processed int
	Indexed   int
	Skipped   int
	Failed    int
}

func runIngest(cmd *cobra.Command, _ []string) error {
	dir := viper.GetString("ingest.dir")
	if dir == "" {
		return errors.New("--dir is required")
	}

	files, err := resumeFiles(dir, viper.GetBool("ingest.recursive"))
	if err != nil {
		return err
	}

	return withEngine(cmd.Context(), func(ctx context.Context, engine *app.App) error {
		log := engine.Log.Named("ingest")
		var summary ingestSummary

		for _, path := range files {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			indexed, err := ingestFile(ctx, engine, path)
			switch {
			case errors.Is(err, services.ErrUnsupportedFileType):
				summary.Skipped++
				continue
			case err != nil:
				summary.Failed++
				log.Warn("failed to ingest resume", zap.String("path", path), zap.Error(err))
				continue
			}

			summary.Processed++
			if indexed {
				summary.Indexed++
			}
			log.Info("resume ingested", zap.String("path", path), zap.Bool("indexed", indexed))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "processed=%d indexed=%d skipped=%d failed=%d\n",
			summary.Processed, summary.Indexed, summary.Skipped, summary.Failed)
		return nil
	})
}

func ingestFile(ctx context.Context, engine *app.App, path string) (bool, error) {
	src, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open resume: %w", err)
	}
	defer src.Close()

	stored, err := engine.Storage.SaveReader(filepath.Base(path), src)
	if err != nil {
		return false, err
	}

	candidate, err := engine.Profiles.ProcessResume(ctx, services.ResumeUpload{
		Path:         stored.Path,
		Filename:     stored.Filename,
		OriginalName: stored.OriginalName,
		FileType:     stored.FileType,
	})
	if err != nil {
		engine.Storage.DeleteFile(stored.Filename)
		return false, err
	}
	return candidate.IndexState == models.IndexIndexed, nil
}

// resumeFiles lists regular files under dir. Unsupported types are rejected
// later by the storage service and counted as skipped.
func resumeFiles(dir string, recursive bool) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && !recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}
	return out, nil
}
