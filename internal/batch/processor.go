package batch

import (
	"context"
	"sync"

	"github.com/avasilev/estate-doc-agent/internal/models"
	"github.com/avasilev/estate-doc-agent/internal/pipeline"
	"github.com/rs/zerolog"
)

// Processor fans records out to a pool of workers. Each Process call on the
// pipeline is independent; the shared history store synchronizes its own
// appends, so workers never interleave partial state.
type Processor struct {
	pipeline *pipeline.Pipeline
	workers  int
	logger   *zerolog.Logger
}

func NewProcessor(pipe *pipeline.Pipeline, workers int, logger *zerolog.Logger) *Processor {
	if workers <= 0 {
		workers = 1
	}

	return &Processor{
		pipeline: pipe,
		workers:  workers,
		logger:   logger,
	}
}

// Process runs every valid record through the pipeline. Records carrying a
// parse error are skipped with a log line; the pipeline itself never fails,
// so every processed document yields a result.
func (p *Processor) Process(ctx context.Context, records []InputRecord) <-chan models.ProcessingResult {
	jobs := make(chan models.Document)
	results := make(chan models.ProcessingResult, len(records))

	var wg sync.WaitGroup
	for range p.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for doc := range jobs {
				results <- p.pipeline.Process(doc)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, record := range records {
			if record.Error != nil {
				p.logger.Error().
					Int("line", record.LineNumber).
					Err(record.Error).
					Msg("skipping malformed record")
				continue
			}

			select {
			case jobs <- record.Document:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}
