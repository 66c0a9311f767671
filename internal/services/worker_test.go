package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"alfredoptarigan/ats-engine/internal/models"
)

type recordingIndexer struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

func (r *recordingIndexer) IndexCandidate(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, id)
	return nil
}

func (r *recordingIndexer) indexed() []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uuid.UUID(nil), r.ids...)
}

func TestIndexWorker_EnqueueDeduplicates(t *testing.T) {
	w := NewIndexWorker(newFakeCandidateRepo(), &recordingIndexer{}, WorkerOptions{}, zap.NewNop())
	id := uuid.New()

	assert.True(t, w.Enqueue(id))
	assert.False(t, w.Enqueue(id))
	assert.True(t, w.Enqueue(uuid.New()))
}

func TestIndexWorker_FullQueueDoesNotBlock(t *testing.T) {
	w := NewIndexWorker(newFakeCandidateRepo(), &recordingIndexer{}, WorkerOptions{}, zap.NewNop())
	for i := 0; i < indexQueueSize; i++ {
		require.True(t, w.Enqueue(uuid.New()))
	}

	id := uuid.New()
	assert.False(t, w.Enqueue(id))
	// The rejected id was released and can be offered again later.
	assert.False(t, w.Enqueue(id))
}

func TestIndexWorker_ProcessesPendingCandidates(t *testing.T) {
	pending := models.Candidate{ID: uuid.New(), Status: models.CandidateActive, IndexState: models.IndexPending}
	indexed := models.Candidate{ID: uuid.New(), Status: models.CandidateActive, IndexState: models.IndexIndexed}
	archived := models.Candidate{ID: uuid.New(), Status: models.CandidateArchived, IndexState: models.IndexPending}
	repo := newFakeCandidateRepo(pending, indexed, archived)

	indexer := &recordingIndexer{}
	w := NewIndexWorker(repo, indexer, WorkerOptions{Concurrency: 2, PollInterval: 10 * time.Millisecond, BatchSize: 5}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	require.Eventually(t, func() bool {
		return len(indexer.indexed()) > 0
	}, time.Second, 5*time.Millisecond)
	w.Stop()

	for _, id := range indexer.indexed() {
		assert.Equal(t, pending.ID, id)
	}
}

func TestIndexWorker_EnqueueAll(t *testing.T) {
	a := models.Candidate{ID: uuid.New(), Status: models.CandidateActive, IndexState: models.IndexIndexed}
	b := models.Candidate{ID: uuid.New(), Status: models.CandidateActive, IndexState: models.IndexFailed}
	c := models.Candidate{ID: uuid.New(), Status: models.CandidateArchived, IndexState: models.IndexIndexed}
	repo := newFakeCandidateRepo(a, b, c)

	w := NewIndexWorker(repo, &recordingIndexer{}, WorkerOptions{}, zap.NewNop())
	n, err := w.EnqueueAll()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, models.IndexPending, repo.get(a.ID).IndexState)
	assert.Equal(t, models.IndexPending, repo.get(b.ID).IndexState)
	assert.Equal(t, models.IndexIndexed, repo.get(c.ID).IndexState)
}

func TestIndexWorker_StopTwice(t *testing.T) {
	w := NewIndexWorker(newFakeCandidateRepo(), &recordingIndexer{}, WorkerOptions{PollInterval: time.Hour}, zap.NewNop())
	w.Start(context.Background())
	w.Stop()
	w.Stop()
}
