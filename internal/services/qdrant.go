package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"
)

// VectorIndex stores candidate embeddings with their search metadata.
type VectorIndex interface {
	InitCollection(ctx context.Context) error
	Upsert(ctx context.Context, id string, vector []float32, metadata map[string]any) error
	Search(ctx context.Context, vector []float32, topK int, filter map[string]string) ([]SearchResult, error)
	Delete(ctx context.Context, id string) error
}

type SearchResult struct {
	ID       string
	Score    float32
	Metadata map[string]any
}

type qdrantService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
	log            *zap.Logger
}

func NewQdrantService(urlStr, apiKey, collectionName string, vectorSize int, log *zap.Logger) (VectorIndex, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     uint64(vectorSize),
		log:            log.Named("qdrant"),
	}, nil
}

// InitCollection implements VectorIndex.
func (q *qdrantService) InitCollection(ctx context.Context) error {
	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		q.log.Info("collection already exists", zap.String("collection", q.collectionName))
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	q.log.Info("collection created", zap.String("collection", q.collectionName), zap.Uint64("size", q.vectorSize))
	return nil
}

// Upsert implements VectorIndex. Point ids are the candidate UUIDs, so
// re-indexing a candidate replaces its previous point.
func (q *qdrantService) Upsert(ctx context.Context, id string, vector []float32, metadata map[string]any) error {
	payload, err := qdrant.TryValueMap(toPayload(metadata))
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	point := &qdrant.PointStruct{
		Id:      pointID(id),
		Vectors: qdrant.NewVectors(vector...),
		Payload: payload,
	}

	_, err = q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

// Search implements VectorIndex. Every filter entry must match exactly.
func (q *qdrantService) Search(ctx context.Context, vector []float32, topK int, filter map[string]string) ([]SearchResult, error) {
	var qf *qdrant.Filter
	if len(filter) > 0 {
		qf = &qdrant.Filter{}
		for key, value := range filter {
			qf.Must = append(qf.Must, qdrant.NewMatch(key, value))
		}
	}

	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(vector...),
		Filter:         qf,
		Limit:          qdrant.PtrOf(uint64(topK)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	results := make([]SearchResult, 0, len(points))
	for _, point := range points {
		metadata := make(map[string]any, len(point.Payload))
		for key, value := range point.Payload {
			metadata[key] = fromValue(value)
		}

		id, _ := metadata["candidate_id"].(string)
		if id == "" {
			id = point.GetId().GetUuid()
		}

		results = append(results, SearchResult{
			ID:       id,
			Score:    point.Score,
			Metadata: metadata,
		})
	}

	return results, nil
}

// Delete implements VectorIndex.
func (q *qdrantService) Delete(ctx context.Context, id string) error {
	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Points{
				Points: &qdrant.PointsIdsList{Ids: []*qdrant.PointId{pointID(id)}},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete point: %w", err)
	}

	return nil
}

func pointID(id string) *qdrant.PointId {
	return &qdrant.PointId{PointIdOptions: &qdrant.PointId_Uuid{Uuid: id}}
}

// toPayload converts typed slices into []any, the only list form the payload
// encoder accepts.
func toPayload(metadata map[string]any) map[string]any {
	out := make(map[string]any, len(metadata))
	for key, value := range metadata {
		switch v := value.(type) {
		case []string:
			list := make([]any, len(v))
			for i, s := range v {
				list[i] = s
			}
			out[key] = list
		case float32:
			out[key] = float64(v)
		default:
			out[key] = value
		}
	}
	return out
}

func fromValue(v *qdrant.Value) any {
	switch kind := v.GetKind().(type) {
	case *qdrant.Value_StringValue:
		return kind.StringValue
	case *qdrant.Value_DoubleValue:
		return kind.DoubleValue
	case *qdrant.Value_IntegerValue:
		return kind.IntegerValue
	case *qdrant.Value_BoolValue:
		return kind.BoolValue
	case *qdrant.Value_ListValue:
		values := kind.ListValue.GetValues()
		list := make([]any, len(values))
		for i, item := range values {
			list[i] = fromValue(item)
		}
		return list
	case *qdrant.Value_StructValue:
		fields := kind.StructValue.GetFields()
		m := make(map[string]any, len(fields))
		for key, item := range fields {
			m[key] = fromValue(item)
		}
		return m
	default:
		return nil
	}
}
