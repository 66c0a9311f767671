package main

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"alfredoptarigan/ats-engine/internal/app"
	"alfredoptarigan/ats-engine/internal/models"
	"alfredoptarigan/ats-engine/internal/repositories"
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the vector index for every active candidate",
	RunE:  runReindex,
}

func init() {
	reindexCmd.Flags().Int("concurrency", 4, "candidates indexed in parallel")
	reindexCmd.Flags().Bool("pending-only", false, "index only candidates already pending instead of marking everyone pending")

	viper.BindPFlag("reindex.concurrency", reindexCmd.Flags().Lookup("concurrency"))
	viper.BindPFlag("reindex.pending-only", reindexCmd.Flags().Lookup("pending-only"))

	rootCmd.AddCommand(reindexCmd)
}

func runReindex(cmd *cobra.Command, _ []string) error {
	return withEngine(cmd.Context(), func(ctx context.Context, engine *app.App) error {
		log := engine.Log.Named("reindex")

		if !viper.GetBool("reindex.pending-only") {
			if _, err := engine.Worker.EnqueueAll(); err != nil {
				return fmt.Errorf("failed to mark candidates pending: %w", err)
			}
		}

		pending, err := engine.Candidates.List(repositories.CandidateFilter{
			Status:     models.CandidateActive,
			IndexState: models.IndexPending,
		})
		if err != nil {
			return fmt.Errorf("failed to list pending candidates: %w", err)
		}

		var indexed, failed atomic.Int64
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(max(1, viper.GetInt("reindex.concurrency")))

		for _, c := range pending {
			id := c.ID
			g.Go(func() error {
				if err := engine.Profiles.IndexCandidate(gctx, id); err != nil {
					failed.Add(1)
					log.Warn("indexing failed", zap.String("candidate_id", id.String()), zap.Error(err))
					return nil
				}
				indexed.Add(1)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "pending=%d indexed=%d failed=%d\n", len(pending), indexed.Load(), failed.Load())
		return nil
	})
}
