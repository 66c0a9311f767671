package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"alfredoptarigan/ats-engine/internal/config"
	"alfredoptarigan/ats-engine/internal/extraction"
	"alfredoptarigan/ats-engine/internal/ranking"
	"alfredoptarigan/ats-engine/internal/repositories"
	"alfredoptarigan/ats-engine/internal/services"
)

// App holds every long-lived dependency of the engine. The API server and
// the CLI both build one.
type App struct {
	Config *config.Config
	Log    *zap.Logger

	DB    *gorm.DB
	Redis *redis.Client

	Candidates repositories.CandidateRepository
	Jobs       repositories.JobRepository
	Rankings   repositories.RankingRepository

	Storage services.StorageService
	Index   services.VectorIndex

	Profiles services.ProfileService
	Ranking  services.RankingService
	Search   services.SearchService
	Worker   services.IndexWorker
}

func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	db, err := config.InitDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	rdb, err := config.InitRedis(ctx, cfg.Redis, log)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:     cfg,
		Log:        log,
		DB:         db,
		Redis:      rdb,
		Candidates: repositories.NewCandidateRepository(db),
		Jobs:       repositories.NewJobRepository(db),
		Rankings:   repositories.NewRankingRepository(db),
		Storage:    services.NewStorageService(cfg.Storage.UploadPath),
	}

	if err := a.Storage.EnsureUploadDir(); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	gemini, err := services.NewGeminiService(ctx, services.GeminiOptions{
		APIKey:     cfg.Gemini.APIKey,
		Model:      cfg.Gemini.Model,
		EmbedModel: cfg.Gemini.EmbedModel,
	}, log)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to initialize gemini: %w", err)
	}
	log.Info("gemini initialized", zap.String("model", cfg.Gemini.Model), zap.String("embed_model", cfg.Gemini.EmbedModel))

	var embedder services.EmbeddingProvider = gemini
	if rdb != nil {
		embedder = services.NewCachedEmbedder(gemini, services.NewRedisStore(rdb), cfg.Gemini.EmbedModel, cfg.Redis.TTL, log)
	}

	var llm services.ProfileExtractor
	if cfg.Gemini.UseLLMExtraction {
		llm = services.NewLLMProfileExtractor(gemini, cfg.Gemini.MaxRetries, log)
	}

	index, err := services.NewQdrantService(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection, cfg.Embedding.Dimension, log)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to initialize qdrant: %w", err)
	}
	if err := index.InitCollection(ctx); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to initialize qdrant collection: %w", err)
	}
	a.Index = index
	log.Info("qdrant initialized", zap.String("collection", cfg.Qdrant.Collection))

	cleaner := services.NewTextCleaner()
	extractor := extraction.New(nil)

	a.Profiles = services.NewProfileService(
		a.Candidates,
		services.NewDocumentParser(cleaner),
		extractor,
		llm,
		embedder,
		index,
		cfg.Embedding.Dimension,
		log,
	)

	scorer := ranking.NewScorer(cfg.Ranking.Weights, ranking.WithLogger(log))
	ranker := ranking.NewRanker(scorer,
		ranking.WithConcurrency(cfg.Ranking.Concurrency),
		ranking.WithRankerLogger(log),
	)
	a.Ranking = services.NewRankingService(
		a.Jobs,
		a.Candidates,
		a.Rankings,
		extractor,
		cleaner,
		embedder,
		ranker,
		services.RankingOptions{
			Weights:         scorer.Weights(),
			TopK:            cfg.Ranking.TopK,
			MinMatchPercent: cfg.Ranking.MinMatchPercent,
		},
		log,
	)

	a.Search = services.NewSearchService(embedder, index, log)
	a.Worker = services.NewIndexWorker(a.Candidates, a.Profiles, services.WorkerOptions{
		Concurrency:  cfg.Worker.Concurrency,
		PollInterval: cfg.Worker.PollInterval,
		BatchSize:    cfg.Worker.BatchSize,
	}, log)

	return a, nil
}

// Ping checks that the database answers.
func (a *App) Ping(ctx context.Context) error {
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Log.Warn("failed to close redis", zap.Error(err))
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
