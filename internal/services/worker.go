package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/ats-engine/internal/models"
	"alfredoptarigan/ats-engine/internal/repositories"
)

const indexQueueSize = 100

// IndexWorker embeds candidates in the background. A poller picks up
// candidates whose index state is pending.
type IndexWorker interface {
	Start(ctx context.Context)
	Stop()
	Enqueue(id uuid.UUID) bool
	EnqueueAll() (int, error)
}

type WorkerOptions struct {
	Concurrency  int
	PollInterval time.Duration
	BatchSize    int
}

type indexWorker struct {
	candidateRepo repositories.CandidateRepository
	indexer       CandidateIndexer
	opts          WorkerOptions
	queue         chan uuid.UUID
	log           *zap.Logger

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}

	wg       sync.WaitGroup
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewIndexWorker(
	candidateRepo repositories.CandidateRepository,
	indexer CandidateIndexer,
	opts WorkerOptions,
	log *zap.Logger,
) IndexWorker {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 10 * time.Second
	}
	if opts.BatchSize < 1 {
		opts.BatchSize = 10
	}

	return &indexWorker{
		candidateRepo: candidateRepo,
		indexer:       indexer,
		opts:          opts,
		queue:         make(chan uuid.UUID, indexQueueSize),
		log:           log.Named("index_worker"),
		inFlight:      make(map[uuid.UUID]struct{}),
		stopChan:      make(chan struct{}),
	}
}

// Start implements IndexWorker.
func (w *indexWorker) Start(ctx context.Context) {
	for i := 0; i < w.opts.Concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	w.wg.Add(1)
	go w.pollPending(ctx)

	w.log.Info("index worker started",
		zap.Int("concurrency", w.opts.Concurrency),
		zap.Duration("poll_interval", w.opts.PollInterval),
	)
}

// Stop implements IndexWorker. It is safe to call more than once.
func (w *indexWorker) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopChan)
	})
	w.wg.Wait()
	w.log.Info("index worker stopped")
}

// Enqueue implements IndexWorker. It never blocks: a full queue or a
// candidate already queued returns false, and the poller retries later.
func (w *indexWorker) Enqueue(id uuid.UUID) bool {
	w.mu.Lock()
	if _, queued := w.inFlight[id]; queued {
		w.mu.Unlock()
		return false
	}
	w.inFlight[id] = struct{}{}
	w.mu.Unlock()

	select {
	case <-w.stopChan:
	case w.queue <- id:
		return true
	default:
	}

	w.release(id)
	return false
}

// EnqueueAll implements IndexWorker. Every active candidate is marked pending
// so the poller picks it up, and the number marked is returned.
func (w *indexWorker) EnqueueAll() (int, error) {
	candidates, err := w.candidateRepo.List(repositories.CandidateFilter{Status: models.CandidateActive})
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, c := range candidates {
		if err := w.candidateRepo.UpdateIndexState(c.ID, repositories.IndexUpdate{State: models.IndexPending}); err != nil {
			w.log.Warn("failed to mark candidate pending", zap.String("candidate_id", c.ID.String()), zap.Error(err))
			continue
		}
		marked++
	}

	w.log.Info("candidates marked for re-indexing", zap.Int("count", marked))
	return marked, nil
}

func (w *indexWorker) release(id uuid.UUID) {
	w.mu.Lock()
	delete(w.inFlight, id)
	w.mu.Unlock()
}

func (w *indexWorker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()
	log := w.log.With(zap.Int("worker", workerID))

	for {
		select {
		case <-w.stopChan:
			return
		case <-ctx.Done():
			return
		case id := <-w.queue:
			if err := w.indexer.IndexCandidate(ctx, id); err != nil {
				log.Warn("indexing failed", zap.String("candidate_id", id.String()), zap.Error(err))
			} else {
				log.Debug("candidate indexed", zap.String("candidate_id", id.String()))
			}
			w.release(id)
		}
	}
}

func (w *indexWorker) pollPending(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.enqueuePending()
		}
	}
}

func (w *indexWorker) enqueuePending() {
	pending, err := w.candidateRepo.List(repositories.CandidateFilter{
		Status:     models.CandidateActive,
		IndexState: models.IndexPending,
		Limit:      w.opts.BatchSize,
	})
	if err != nil {
		w.log.Warn("failed to fetch pending candidates", zap.Error(err))
		return
	}

	queued := 0
	for _, c := range pending {
		if w.Enqueue(c.ID) {
			queued++
		}
	}
	if queued > 0 {
		w.log.Info("pending candidates enqueued", zap.Int("count", queued))
	}
}
