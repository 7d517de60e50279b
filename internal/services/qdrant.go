package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/qdrant/go-client/qdrant"
)

// ResumeIndex stores one vector per successfully extracted resume so
// recruiters can find previously seen applicants with similar profiles.
type ResumeIndex interface {
	InitCollection() error
	UpsertResume(ctx context.Context, extractionID, applicantName, jobTitle string, embedding []float32) error
	SearchSimilar(ctx context.Context, queryEmbedding []float32, limit int) ([]ResumeMatch, error)
}

type ResumeMatch struct {
	ExtractionID  string
	Score         float32
	ApplicantName string
	JobTitle      string
}

type resumeIndex struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewResumeIndex(urlStr, apiKey, collectionName string) (ResumeIndex, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port, not the REST one.
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

	return &resumeIndex{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 dimension
	}, nil
}

// InitCollection implements ResumeIndex.
func (q *resumeIndex) InitCollection() error {
	ctx := context.Background()

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Resume index collection already exists")
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

	log.Printf("✅ Qdrant collection '%s' created successfully\n", q.collectionName)
	return nil
}

// UpsertResume implements ResumeIndex.
func (q *resumeIndex) UpsertResume(ctx context.Context, extractionID, applicantName, jobTitle string, embedding []float32) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(extractionID),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"extraction_id":  extractionID,
			"applicant_name": applicantName,
			"job_title":      jobTitle,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

// SearchSimilar implements ResumeIndex.
func (q *resumeIndex) SearchSimilar(ctx context.Context, queryEmbedding []float32, limit int) ([]ResumeMatch, error) {
	searchResult, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	var matches []ResumeMatch
	for _, point := range searchResult {
		match := ResumeMatch{Score: point.Score}

		if v, ok := point.Payload["extraction_id"]; ok {
			if s, ok := v.GetKind().(*qdrant.Value_StringValue); ok {
				match.ExtractionID = s.StringValue
			}
		}
		if v, ok := point.Payload["applicant_name"]; ok {
			if s, ok := v.GetKind().(*qdrant.Value_StringValue); ok {
				match.ApplicantName = s.StringValue
			}
		}
		if v, ok := point.Payload["job_title"]; ok {
			if s, ok := v.GetKind().(*qdrant.Value_StringValue); ok {
				match.JobTitle = s.StringValue
			}
		}

		matches = append(matches, match)
	}

	return matches, nil
}
