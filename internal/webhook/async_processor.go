package webhook

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
)

// AsyncConfig sizes the review job queue and worker pool. Workers
// bound how many reviews (and so how many comment-posting bursts) run
// at once against the GitHub API.
type AsyncConfig struct {
	QueueSize int
	Workers   int
}

// AsyncProcessor runs webhook deliveries on a bounded worker pool so
// the HTTP handler can acknowledge GitHub immediately.
type AsyncProcessor struct {
	processor *Processor
	jobs      chan job

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type job struct {
	eventType  string
	payload    []byte
	deliveryID string
}

// NewAsyncProcessor starts the worker pool
func NewAsyncProcessor(processor *Processor, cfg AsyncConfig) *AsyncProcessor {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 100
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	p := &AsyncProcessor{
		processor: processor,
		jobs:      make(chan job, cfg.QueueSize),
		cancel:    cancel,
	}

	for i := 0; i < cfg.Workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}

	return p
}

// Enqueue queues a delivery for processing; it never blocks. A full
// queue is reported back so the handler can return an error to GitHub
// and rely on its redelivery.
func (p *AsyncProcessor) Enqueue(ctx context.Context, eventType string, payload []byte, deliveryID string) error {
	_ = ctx
	if p.processor == nil {
		return errors.New("webhook processor is nil")
	}

	j := job{eventType: eventType, payload: append([]byte(nil), payload...), deliveryID: deliveryID}

	select {
	case p.jobs <- j:
		return nil
	default:
		return errors.New("webhook queue full")
	}
}

// Stop cancels in-flight reviews and waits for workers to exit.
// Annotations already dispatched stay posted; there is no rollback.
func (p *AsyncProcessor) Stop(ctx context.Context) error {
	p.cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		p.wg.Wait()
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("stop webhook workers: %w", ctx.Err())
	case <-done:
		return nil
	}
}

func (p *AsyncProcessor) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-p.jobs:
			// The worker ctx flows into the review so shutdown
			// abandons in-flight hunks.
			if err := p.processor.Process(ctx, j.eventType, j.payload, j.deliveryID); err != nil {
				log.Printf("Webhook %s processing failed: %v", j.deliveryID, err)
			}
		}
	}
}
