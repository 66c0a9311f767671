package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/ats-engine/internal/models"
	"alfredoptarigan/ats-engine/internal/repositories"
)

type fakeCandidateRepo struct {
	mu         sync.Mutex
	candidates map[uuid.UUID]*models.Candidate
	updates    []repositories.IndexUpdate
	createErr  error
	listErr    error
}

func newFakeCandidateRepo(candidates ...models.Candidate) *fakeCandidateRepo {
	r := &fakeCandidateRepo{candidates: make(map[uuid.UUID]*models.Candidate)}
	for i := range candidates {
		c := candidates[i]
		r.candidates[c.ID] = &c
	}
	return r
}

func (r *fakeCandidateRepo) Create(c *models.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	stored := *c
	r.candidates[c.ID] = &stored
	return nil
}

func (r *fakeCandidateRepo) FindByID(id uuid.UUID) (*models.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.candidates[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	out := *c
	return &out, nil
}

func (r *fakeCandidateRepo) List(filter repositories.CandidateFilter) ([]models.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}

	out := make([]models.Candidate, 0, len(r.candidates))
	for _, c := range r.candidates {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.IndexState != "" && c.IndexState != filter.IndexState {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *fakeCandidateRepo) UpdateStatus(id uuid.UUID, status models.CandidateStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.candidates[id]
	if !ok {
		return repositories.ErrNotFound
	}
	c.Status = status
	return nil
}

func (r *fakeCandidateRepo) UpdateIndexState(id uuid.UUID, update repositories.IndexUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.candidates[id]
	if !ok {
		return repositories.ErrNotFound
	}
	r.updates = append(r.updates, update)
	c.IndexState = update.State
	if len(update.Embedding) > 0 {
		c.Embedding = update.Embedding
	}
	if update.Error != "" {
		msg := update.Error
		c.IndexError = &msg
	} else {
		c.IndexError = nil
	}
	return nil
}

func (r *fakeCandidateRepo) Statistics() (*models.Statistics, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &models.Statistics{}
	for _, c := range r.candidates {
		if c.Status == models.CandidateActive {
			stats.TotalResumes++
		}
	}
	return stats, nil
}

func (r *fakeCandidateRepo) get(id uuid.UUID) *models.Candidate {
	c, _ := r.FindByID(id)
	return c
}

type fakeJobRepo struct {
	mu      sync.Mutex
	jobs    map[string]*models.Job
	upserts int
}

func newFakeJobRepo(jobs ...models.Job) *fakeJobRepo {
	r := &fakeJobRepo{jobs: make(map[string]*models.Job)}
	for i := range jobs {
		j := jobs[i]
		r.jobs[j.ID] = &j
	}
	return r
}

func (r *fakeJobRepo) Upsert(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upserts++
	stored := *job
	r.jobs[job.ID] = &stored
	return nil
}

func (r *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	out := *j
	return &out, nil
}

type fakeRankingRepo struct {
	mu   sync.Mutex
	rows []models.Ranking
	err  error
}

func (r *fakeRankingRepo) CreateBatch(rows []models.Ranking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.rows = append(r.rows, rows...)
	return nil
}

func (r *fakeRankingRepo) FindByJob(jobID string, limit int) ([]models.Ranking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Ranking, 0)
	for _, row := range r.rows {
		if row.JobID == jobID {
			out = append(out, row)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeEmbedder struct {
	mu     sync.Mutex
	vector []float32
	err    error
	texts  []string
}

func (e *fakeEmbedder) GenerateEmbedding(_ context.Context, text string) ([]float32, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.texts = append(e.texts, text)
	if e.err != nil {
		return nil, e.err
	}
	return e.vector, nil
}

func (e *fakeEmbedder) calls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.texts)
}

type indexedPoint struct {
	vector   []float32
	metadata map[string]any
}

type fakeIndex struct {
	mu         sync.Mutex
	points     map[string]indexedPoint
	results    []SearchResult
	deleted    []string
	upsertErr  error
	searchErr  error
	lastTopK   int
	lastFilter map[string]string
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{points: make(map[string]indexedPoint)}
}

func (f *fakeIndex) InitCollection(context.Context) error { return nil }

func (f *fakeIndex) Upsert(_ context.Context, id string, vector []float32, metadata map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.points[id] = indexedPoint{vector: vector, metadata: metadata}
	return nil
}

func (f *fakeIndex) Search(_ context.Context, _ []float32, topK int, filter map[string]string) ([]SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastTopK = topK
	f.lastFilter = filter
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	out := f.results
	if len(out) > topK {
		out = out[:topK]
	}
	return append([]SearchResult(nil), out...), nil
}

func (f *fakeIndex) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	delete(f.points, id)
	return nil
}

type fakeParser struct {
	text string
	err  error
}

func (p fakeParser) ExtractText(string, string) (string, error) {
	return p.text, p.err
}

type fakeProfileExtractor struct {
	profile *ExtractedProfile
	err     error
}

func (f fakeProfileExtractor) ExtractProfile(context.Context, string) (*ExtractedProfile, error) {
	return f.profile, f.err
}

type memStore struct {
	mu     sync.Mutex
	values map[string][]byte
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string][]byte), ttls: make(map[string]time.Duration)}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	m.ttls[key] = ttl
	return nil
}
