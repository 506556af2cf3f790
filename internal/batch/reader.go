// Package batch reads JSONL document files, runs them through the pipeline
// with a worker pool, and writes results.
package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/avasilev/estate-doc-agent/internal/models"
	"github.com/rs/zerolog"
)

// InputRecord is one parsed line of the input file. Error is set when the
// line is not a valid document payload.
type InputRecord struct {
	Document   models.Document
	LineNumber int
	Error      error
}

type Reader struct {
	source io.Reader
	logger *zerolog.Logger
}

func NewReader(source io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{
		source: source,
		logger: logger,
	}
}

// ReadAll streams the input line by line. Blank lines are skipped; malformed
// lines are emitted with Error set so the caller decides whether to stop.
func (r *Reader) ReadAll(ctx context.Context) <-chan InputRecord {
	records := make(chan InputRecord)

	go func() {
		defer close(records)

		scanner := bufio.NewScanner(r.source)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		lineNumber := 0
		for scanner.Scan() {
			lineNumber++

			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			record := InputRecord{LineNumber: lineNumber}

			var doc models.Document
			if err := json.Unmarshal([]byte(line), &doc); err != nil {
				record.Error = fmt.Errorf("line %d: %w", lineNumber, err)
			} else {
				record.Document = doc
			}

			select {
			case records <- record:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			r.logger.Error().Err(err).Msg("failed to read input")
		}
	}()

	return records
}
