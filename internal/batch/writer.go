package batch

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/avasilev/estate-doc-agent/internal/models"
	"github.com/avasilev/estate-doc-agent/internal/pipeline"
	"github.com/rs/zerolog"
)

const (
	FormatJSONL   = "jsonl"
	FormatSummary = "summary"
)

// Writer emits processing results either as one JSON object per line, or as
// a single aggregated batch summary written on Close.
type Writer struct {
	out     io.Writer
	format  string
	results []models.ProcessingResult
	logger  *zerolog.Logger
}

func NewWriter(out io.Writer, format string, logger *zerolog.Logger) (*Writer, error) {
	switch format {
	case FormatJSONL, FormatSummary:
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}

	return &Writer{
		out:    out,
		format: format,
		logger: logger,
	}, nil
}

func (w *Writer) Write(result models.ProcessingResult) error {
	if w.format == FormatSummary {
		w.results = append(w.results, result)
		return nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result %s: %w", result.DocumentID, err)
	}

	if _, err := fmt.Fprintln(w.out, string(data)); err != nil {
		return err
	}

	return nil
}

// Close flushes the aggregated summary in summary mode.
func (w *Writer) Close() error {
	if w.format != FormatSummary {
		return nil
	}

	summary := pipeline.Summarize(w.results)

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal batch summary: %w", err)
	}

	if _, err := fmt.Fprintln(w.out, string(data)); err != nil {
		return err
	}

	w.logger.Info().
		Int("total", summary.TotalDocuments).
		Int("approved", summary.Approved).
		Int("rejected", summary.Rejected).
		Int("errors", summary.Errored).
		Msg("batch summary written")

	return nil
}
