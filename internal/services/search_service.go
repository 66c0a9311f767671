package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/ats-engine/internal/models"
	"alfredoptarigan/ats-engine/internal/query"
)

const (
	defaultSearchTopK = 10
	maxSearchPool     = 500
	searchPoolFactor  = 10
)

var ErrEmptyQuery = errors.New("search query is empty")

type SearchService interface {
	Search(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error)
}

type searchService struct {
	embedder EmbeddingProvider
	index    VectorIndex
	log      *zap.Logger
	now      func() time.Time
}

func NewSearchService(embedder EmbeddingProvider, index VectorIndex, log *zap.Logger) SearchService {
	return &searchService{
		embedder: embedder,
		index:    index,
		log:      log.Named("search_service"),
		now:      time.Now,
	}
}

// Search runs a semantic search and, unless disabled, keeps only the hits
// whose metadata satisfies the boolean form of the query. Boolean filtering
// widens the semantic pool first so enough hits survive it.
func (s *searchService) Search(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error) {
	start := s.now()

	q := strings.TrimSpace(req.Query)
	if q == "" {
		return nil, ErrEmptyQuery
	}

	topK := req.TopK
	if topK < 1 {
		topK = defaultSearchTopK
	}
	useBoolean := req.UseBooleanSearch == nil || *req.UseBooleanSearch

	pool := topK
	if useBoolean {
		pool = min(maxSearchPool, topK*searchPoolFactor)
	}

	vector, err := s.embedder.GenerateEmbedding(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	hits, err := s.index.Search(ctx, vector, pool, req.Filters)
	if err != nil {
		return nil, err
	}

	resp := &models.SearchResponse{
		Query:   q,
		Results: []models.SearchHit{},
	}

	if useBoolean {
		parsed := query.Compile(q)
		before := len(hits)

		filtered := hits[:0:0]
		for _, hit := range hits {
			if query.Matches(query.BuildSearchableText(hit.Metadata), parsed) {
				filtered = append(filtered, hit)
			}
		}
		hits = filtered

		resp.BooleanFilterApplied = true
		resp.TotalBeforeFilter = &before
		resp.Message = fmt.Sprintf("Boolean + semantic search completed. Filtered %d candidates from %d semantic matches.", len(hits), before)
	} else {
		resp.Message = "Semantic search completed"
	}

	if len(hits) > topK {
		hits = hits[:topK]
	}
	for _, hit := range hits {
		resp.Results = append(resp.Results, toSearchHit(hit))
	}

	resp.TotalMatches = len(resp.Results)
	resp.Timestamp = s.now().UTC()
	resp.ProcessingTimeMillis = resp.Timestamp.Sub(start).Milliseconds()

	s.log.Debug("search completed",
		zap.String("query", q),
		zap.Int("pool", pool),
		zap.Int("matches", resp.TotalMatches),
		zap.Bool("boolean", useBoolean),
	)
	return resp, nil
}

func toSearchHit(hit SearchResult) models.SearchHit {
	md := hit.Metadata
	name, _ := md["name"].(string)
	email, _ := md["email"].(string)
	return models.SearchHit{
		CandidateID:     hit.ID,
		Name:            name,
		Email:           email,
		MatchScore:      hit.Score,
		PrimarySkills:   md["primary_skills"],
		TotalExperience: md["total_experience"],
		Domain:          md["domain"],
		Education:       md["education"],
		CurrentLocation: md["current_location"],
		CurrentCompany:  md["current_company"],
		ResumeSummary:   md["resume_summary"],
		Metadata:        md,
	}
}
