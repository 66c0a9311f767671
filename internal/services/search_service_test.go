package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"alfredoptarigan/ats-engine/internal/models"
)

func searchHits() []SearchResult {
	return []SearchResult{
		{ID: "c1", Score: 0.91, Metadata: map[string]any{
			"name": "Asha", "email": "asha@example.com",
			"primary_skills": []any{"Python", "AWS"}, "total_experience": 6.0,
		}},
		{ID: "c2", Score: 0.88, Metadata: map[string]any{
			"name": "Ravi", "primary_skills": []any{"Python", "GCP"},
			"resume_summary": "Machine learning engineer",
		}},
		{ID: "c3", Score: 0.80, Metadata: map[string]any{
			"name": "Lee", "primary_skills": []any{"Java", "AWS"},
		}},
		{ID: "c4", Score: 0.75, Metadata: map[string]any{
			"name": "Unknown", "primary_skills": []any{"No skills"},
		}},
	}
}

func newSearchFixture(hits []SearchResult) (SearchService, *fakeIndex, *fakeEmbedder) {
	index := newFakeIndex()
	index.results = hits
	embedder := &fakeEmbedder{vector: []float32{0.5, 0.5}}
	return NewSearchService(embedder, index, zap.NewNop()), index, embedder
}

func TestSearch_BooleanFilter(t *testing.T) {
	svc, index, embedder := newSearchFixture(searchHits())

	resp, err := svc.Search(context.Background(), models.SearchRequest{
		Query:   "Python AND (AWS OR GCP)",
		TopK:    5,
		Filters: map[string]string{"education": "Bachelors"},
	})
	require.NoError(t, err)

	assert.Equal(t, 50, index.lastTopK)
	assert.Equal(t, map[string]string{"education": "Bachelors"}, index.lastFilter)
	assert.Equal(t, []string{"Python AND (AWS OR GCP)"}, embedder.texts)

	assert.True(t, resp.BooleanFilterApplied)
	require.NotNil(t, resp.TotalBeforeFilter)
	assert.Equal(t, 4, *resp.TotalBeforeFilter)
	assert.Equal(t, 2, resp.TotalMatches)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "c1", resp.Results[0].CandidateID)
	assert.Equal(t, "Asha", resp.Results[0].Name)
	assert.Equal(t, float32(0.91), resp.Results[0].MatchScore)
	assert.Equal(t, "c2", resp.Results[1].CandidateID)
	assert.Equal(t, "Boolean + semantic search completed. Filtered 2 candidates from 4 semantic matches.", resp.Message)
}

func TestSearch_LiteralQuery(t *testing.T) {
	svc, _, _ := newSearchFixture(searchHits())

	resp, err := svc.Search(context.Background(), models.SearchRequest{Query: "machine learning"})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "c2", resp.Results[0].CandidateID)
}

func TestSearch_PlaceholdersNeverMatch(t *testing.T) {
	svc, _, _ := newSearchFixture(searchHits())

	resp, err := svc.Search(context.Background(), models.SearchRequest{Query: "unknown OR no skills"})
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.NotNil(t, resp.Results)
}

func TestSearch_SemanticOnly(t *testing.T) {
	svc, index, _ := newSearchFixture(searchHits())
	off := false

	resp, err := svc.Search(context.Background(), models.SearchRequest{Query: "Rust", TopK: 3, UseBooleanSearch: &off})
	require.NoError(t, err)

	assert.Equal(t, 3, index.lastTopK)
	assert.False(t, resp.BooleanFilterApplied)
	assert.Nil(t, resp.TotalBeforeFilter)
	assert.Equal(t, "Semantic search completed", resp.Message)
	assert.Len(t, resp.Results, 3)
}

func TestSearch_PoolAndTruncation(t *testing.T) {
	hits := make([]SearchResult, 0, 30)
	for i := 0; i < 30; i++ {
		hits = append(hits, SearchResult{ID: fmt.Sprintf("c%d", i), Metadata: map[string]any{"primary_skills": []any{"Go"}}})
	}

	svc, index, _ := newSearchFixture(hits)
	resp, err := svc.Search(context.Background(), models.SearchRequest{Query: "go"})
	require.NoError(t, err)
	assert.Equal(t, 100, index.lastTopK)
	assert.Len(t, resp.Results, defaultSearchTopK)
	assert.Equal(t, 30, *resp.TotalBeforeFilter)

	_, err = svc.Search(context.Background(), models.SearchRequest{Query: "go", TopK: 100})
	require.NoError(t, err)
	assert.Equal(t, maxSearchPool, index.lastTopK)
}

func TestSearch_Errors(t *testing.T) {
	svc, index, embedder := newSearchFixture(nil)

	_, err := svc.Search(context.Background(), models.SearchRequest{Query: "   "})
	require.ErrorIs(t, err, ErrEmptyQuery)

	embedder.err = errors.New("embedding quota")
	_, err = svc.Search(context.Background(), models.SearchRequest{Query: "go"})
	require.Error(t, err)

	embedder.err = nil
	index.searchErr = errors.New("qdrant unavailable")
	_, err = svc.Search(context.Background(), models.SearchRequest{Query: "go"})
	require.Error(t, err)
}
