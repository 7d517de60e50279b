package services

import (
	"context"
	"log"
	"sync"
)

// IndexJob is one resume queued for embedding and upsert after a successful
// structured extraction.
type IndexJob struct {
	ExtractionID  string
	ApplicantName string
	JobTitle      string
	Text          string
}

// Indexer embeds and indexes resumes on a background worker pool so HTTP
// responses never wait on the vector store.
type Indexer interface {
	Start(ctx context.Context)
	Stop()
	Enqueue(job IndexJob)
}

type indexer struct {
	llm         LLMService
	index       ResumeIndex
	jobQueue    chan IndexJob
	concurrency int
	wg          sync.WaitGroup
	stopChan    chan struct{}
}

func NewIndexer(llm LLMService, index ResumeIndex, concurrency int) Indexer {
	if concurrency <= 0 {
		concurrency = 2
	}
	return &indexer{
		llm:         llm,
		index:       index,
		jobQueue:    make(chan IndexJob, 100),
		concurrency: concurrency,
		stopChan:    make(chan struct{}),
	}
}

// Start implements Indexer.
func (w *indexer) Start(ctx context.Context) {
	log.Printf("🚀 Starting resume indexer with %d workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}
}

// Stop implements Indexer. Blocks until in-flight jobs finish.
func (w *indexer) Stop() {
	log.Println("🛑 Stopping resume indexer...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Resume indexer stopped")
}

// Enqueue implements Indexer. Drops the job if the queue is full or the
// indexer is shutting down; indexing is best-effort.
func (w *indexer) Enqueue(job IndexJob) {
	select {
	case w.jobQueue <- job:
	case <-w.stopChan:
		log.Printf("⚠️  Indexer stopped, dropping job for extraction %s\n", job.ExtractionID)
	default:
		log.Printf("⚠️  Index queue full, dropping job for extraction %s\n", job.ExtractionID)
	}
}

func (w *indexer) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			return
		case job := <-w.jobQueue:
			if err := w.indexResume(ctx, job); err != nil {
				log.Printf("❌ Indexer #%d failed for extraction %s: %v\n", workerID, job.ExtractionID, err)
			} else {
				log.Printf("✅ Indexer #%d indexed extraction %s\n", workerID, job.ExtractionID)
			}
		}
	}
}

func (w *indexer) indexResume(ctx context.Context, job IndexJob) error {
	embedding, err := w.llm.GenerateEmbedding(ctx, job.Text)
	if err != nil {
		return err
	}

	return w.index.UpsertResume(ctx, job.ExtractionID, job.ApplicantName, job.JobTitle, embedding)
}
