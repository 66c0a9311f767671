package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const embeddingCachePrefix = "ats:embedding"

// ByteStore is the subset of a key-value store the embedding cache needs.
// Get returns found=false for a missing key.
type ByteStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) ByteStore {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return value, true, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// cachedEmbedder is a read-through cache in front of an EmbeddingProvider.
// Cache failures are logged and never fail the embedding call.
type cachedEmbedder struct {
	next  EmbeddingProvider
	store ByteStore
	model string
	ttl   time.Duration
	log   *zap.Logger
}

// NewCachedEmbedder wraps next with store. Keys include model so switching
// embedding models never serves stale vectors.
func NewCachedEmbedder(next EmbeddingProvider, store ByteStore, model string, ttl time.Duration, log *zap.Logger) EmbeddingProvider {
	return &cachedEmbedder{
		next:  next,
		store: store,
		model: model,
		ttl:   ttl,
		log:   log.Named("embedding_cache"),
	}
}

func (c *cachedEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	key := c.key(text)

	if raw, found, err := c.store.Get(ctx, key); err != nil {
		c.log.Warn("embedding cache read failed", zap.Error(err))
	} else if found {
		var vector []float32
		if err := json.Unmarshal(raw, &vector); err == nil && len(vector) > 0 {
			return vector, nil
		}
		c.log.Warn("discarding malformed cached embedding", zap.String("key", key))
	}

	vector, err := c.next.GenerateEmbedding(ctx, text)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(vector)
	if err == nil {
		err = c.store.Set(ctx, key, raw, c.ttl)
	}
	if err != nil {
		c.log.Warn("embedding cache write failed", zap.Error(err))
	}

	return vector, nil
}

func (c *cachedEmbedder) key(text string) string {
	h := sha256.Sum256([]byte(c.model + "\x00" + text))
	return fmt.Sprintf("%s:%s", embeddingCachePrefix, hex.EncodeToString(h[:]))
}
