package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCachedEmbedder_ReadThrough(t *testing.T) {
	store := newMemStore()
	next := &fakeEmbedder{vector: []float32{0.25, -1}}
	cache := NewCachedEmbedder(next, store, "text-embedding-004", time.Hour, zap.NewNop())

	first, err := cache.GenerateEmbedding(context.Background(), "golang engineer")
	require.NoError(t, err)
	second, err := cache.GenerateEmbedding(context.Background(), "golang engineer")
	require.NoError(t, err)

	assert.Equal(t, []float32{0.25, -1}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, next.calls())

	require.Len(t, store.values, 1)
	for key, ttl := range store.ttls {
		assert.True(t, strings.HasPrefix(key, "ats:embedding:"))
		assert.Equal(t, time.Hour, ttl)
	}
}

func TestCachedEmbedder_KeyedByModel(t *testing.T) {
	store := newMemStore()
	next := &fakeEmbedder{vector: []float32{1}}

	a := NewCachedEmbedder(next, store, "model-a", time.Minute, zap.NewNop())
	b := NewCachedEmbedder(next, store, "model-b", time.Minute, zap.NewNop())

	_, err := a.GenerateEmbedding(context.Background(), "same text")
	require.NoError(t, err)
	_, err = b.GenerateEmbedding(context.Background(), "same text")
	require.NoError(t, err)

	assert.Equal(t, 2, next.calls())
	assert.Len(t, store.values, 2)
}

func TestCachedEmbedder_StoreFailuresAreNotFatal(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	store := newMemStore()
	store.getErr = errors.New("connection refused")
	store.setErr = errors.New("connection refused")
	next := &fakeEmbedder{vector: []float32{0.5}}

	cache := NewCachedEmbedder(next, store, "m", time.Minute, zap.New(core))
	vector, err := cache.GenerateEmbedding(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5}, vector)
	assert.Equal(t, 2, logs.Len())
}

func TestCachedEmbedder_MalformedEntryIsReplaced(t *testing.T) {
	store := newMemStore()
	next := &fakeEmbedder{vector: []float32{0.5}}
	cache := NewCachedEmbedder(next, store, "m", time.Minute, zap.NewNop())
	key := cache.(*cachedEmbedder).key("text")
	store.values[key] = []byte("not json")

	vector, err := cache.GenerateEmbedding(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5}, vector)
	assert.JSONEq(t, "[0.5]", string(store.values[key]))
}

func TestCachedEmbedder_ProviderErrorIsReturned(t *testing.T) {
	store := newMemStore()
	next := &fakeEmbedder{err: errors.New("quota")}
	cache := NewCachedEmbedder(next, store, "m", time.Minute, zap.NewNop())

	_, err := cache.GenerateEmbedding(context.Background(), "text")
	require.Error(t, err)
	assert.Empty(t, store.values)
}
