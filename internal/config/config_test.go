package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/ats-engine/internal/ranking"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, ranking.DefaultWeights(), cfg.Ranking.Weights)
	assert.Equal(t, ranking.DefaultMinMatchPercent, cfg.Ranking.MinMatchPercent)
	assert.Equal(t, 50, cfg.Ranking.TopK)
	assert.Equal(t, 768, cfg.Embedding.Dimension)
	assert.Equal(t, 10*time.Second, cfg.Worker.PollInterval)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("RANKING_WEIGHT_SKILLS", "0.5")
	t.Setenv("RANKING_WEIGHT_EDUCATION", "not-a-number")
	t.Setenv("MIN_MATCH_PERCENT", "65")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("EMBEDDING_CACHE_TTL", "1h")
	t.Setenv("USE_LLM_EXTRACTION", "false")
	t.Setenv("WORKER_POLL_INTERVAL", "bogus")

	cfg := Load()

	assert.Equal(t, 0.5, cfg.Ranking.Weights.Skills)
	assert.Equal(t, ranking.DefaultWeights().Education, cfg.Ranking.Weights.Education)
	assert.Equal(t, 65.0, cfg.Ranking.MinMatchPercent)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, time.Hour, cfg.Redis.TTL)
	assert.False(t, cfg.Gemini.UseLLMExtraction)
	assert.Equal(t, 10*time.Second, cfg.Worker.PollInterval)
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Host: "db", Port: "5433", User: "ats", Password: "secret", DBName: "ats"}}
	assert.Equal(t, "host=db port=5433 user=ats password=secret dbname=ats sslmode=disable", cfg.GetDatabaseDSN())
}
