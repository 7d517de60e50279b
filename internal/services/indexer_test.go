package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIndex struct {
	mu      sync.Mutex
	upserts []string
}

func (f *fakeIndex) InitCollection() error { return nil }

func (f *fakeIndex) UpsertResume(_ context.Context, extractionID, _, _ string, _ []float32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts = append(f.upserts, extractionID)
	return nil
}

func (f *fakeIndex) SearchSimilar(context.Context, []float32, int) ([]ResumeMatch, error) {
	return nil, nil
}

func (f *fakeIndex) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.upserts)
}

func TestIndexerProcessesQueuedJobs(t *testing.T) {
	llm := &fakeLLM{script: []fakeStep{{text: "unused"}}}
	index := &fakeIndex{}

	w := NewIndexer(llm, index, 2)
	w.Start(context.Background())

	w.Enqueue(IndexJob{ExtractionID: "ex-1", ApplicantName: "Ada", Text: "resume text"})
	w.Enqueue(IndexJob{ExtractionID: "ex-2", ApplicantName: "Alan", Text: "other resume"})

	require.Eventually(t, func() bool {
		return index.count() == 2
	}, 2*time.Second, 10*time.Millisecond)

	w.Stop()

	index.mu.Lock()
	defer index.mu.Unlock()
	assert.ElementsMatch(t, []string{"ex-1", "ex-2"}, index.upserts)
}

func TestIndexerEnqueueAfterStopDoesNotBlock(t *testing.T) {
	llm := &fakeLLM{script: []fakeStep{{text: "unused"}}}
	index := &fakeIndex{}

	w := NewIndexer(llm, index, 1)
	w.Start(context.Background())
	w.Stop()

	// Enqueue after shutdown must not block or panic.
	done := make(chan struct{})
	go func() {
		w.Enqueue(IndexJob{ExtractionID: "late"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked after Stop")
	}
}
