package ranking

import (
	"context"
	"runtime"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultMinMatchPercent is the default eligibility threshold.
const DefaultMinMatchPercent = 50.0

// CandidateScorer scores one candidate. *Scorer implements it.
type CandidateScorer interface {
	Score(candidate CandidateProfile, job JobRequirements) (MatchResult, error)
}

// Ranker scores a batch of candidates and orders them.
type Ranker struct {
	scorer      CandidateScorer
	logger      *zap.Logger
	concurrency int
}

// RankerOption configures a Ranker.
type RankerOption func(*Ranker)

// WithRankerLogger sets the logger used for dropped candidates.
func WithRankerLogger(l *zap.Logger) RankerOption {
	return func(r *Ranker) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithConcurrency bounds the number of candidates scored in parallel.
// Values below 1 use GOMAXPROCS.
func WithConcurrency(n int) RankerOption {
	return func(r *Ranker) {
		r.concurrency = n
	}
}

func NewRanker(scorer CandidateScorer, opts ...RankerOption) *Ranker {
	r := &Ranker{
		scorer: scorer,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.concurrency < 1 {
		r.concurrency = runtime.GOMAXPROCS(0)
	}
	return r
}

type scored struct {
	result MatchResult
	ok     bool
}

// Rank scores every candidate, drops the ones that fail with a warning, sorts
// by TotalScore descending with ties kept in input order, assigns ranks over
// the full list and then keeps the first topK results when topK > 0.
//
// The only error is ctx's, when it is cancelled before scoring finishes.
func (r *Ranker) Rank(ctx context.Context, candidates []CandidateProfile, job JobRequirements, topK int) ([]MatchResult, error) {
	slots := make([]scored, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := r.scorer.Score(candidates[i], job)
			if err != nil {
				r.logger.Warn("skipping candidate that failed scoring",
					zap.String("candidate_id", candidates[i].ID),
					zap.String("job_id", job.ID),
					zap.Error(err),
				)
				return nil
			}
			slots[i] = scored{result: result, ok: true}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]MatchResult, 0, len(candidates))
	for _, s := range slots {
		if s.ok {
			results = append(results, s.result)
		}
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].TotalScore > results[b].TotalScore
	})
	for i := range results {
		results[i].Rank = i + 1
	}

	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// FilterEligible keeps results scoring at least minMatchPercent or matching
// at least one skill. Order and ranks are preserved.
func FilterEligible(results []MatchResult, minMatchPercent float64) []MatchResult {
	out := make([]MatchResult, 0, len(results))
	for _, r := range results {
		if r.TotalScore >= minMatchPercent || len(r.MatchedSkills) >= 1 {
			out = append(out, r)
		}
	}
	return out
}
