// Package pipeline orchestrates the document decision flow: classification,
// validation, final decision, and history recording.
package pipeline

import (
	"fmt"
	"time"

	"github.com/avasilev/estate-doc-agent/internal/models"
	"github.com/rs/zerolog"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . DocumentClassifier,DocumentValidator,History

// DocumentClassifier assigns a taxonomy category to a document.
type DocumentClassifier interface {
	Classify(doc models.Document) models.ClassificationResult
}

// DocumentValidator checks a classified document for compliance.
type DocumentValidator interface {
	Validate(doc models.Document, classification models.ClassificationResult) models.ValidationOutcome
}

// History records processing results.
type History interface {
	Append(result models.ProcessingResult)
	Snapshot() []models.ProcessingResult
	Reset()
}

type Pipeline struct {
	classifier DocumentClassifier
	validator  DocumentValidator
	history    History
	logger     *zerolog.Logger
}

func New(classifier DocumentClassifier, validator DocumentValidator, history History, logger *zerolog.Logger) *Pipeline {
	return &Pipeline{
		classifier: classifier,
		validator:  validator,
		history:    history,
		logger:     logger,
	}
}

// Process runs a document through classification and validation and derives
// the final decision. Faults inside either stage never propagate: they are
// captured and returned as an ERROR result with the partial stage results
// discarded. The result is appended to history before returning.
func (p *Pipeline) Process(doc models.Document) models.ProcessingResult {
	start := time.Now()
	documentID := doc.ID()

	p.logger.Info().Str("document_id", documentID).Msg("processing document")

	result, err := p.run(doc, documentID)
	if err != nil {
		p.logger.Error().Err(err).Str("document_id", documentID).Msg("pipeline error")
		result = models.ProcessingResult{
			DocumentID:    documentID,
			Status:        models.StatusError,
			FinalDecision: models.DecisionError,
			ErrorDetail:   err.Error(),
		}
	}

	result.Duration = time.Since(start)
	result.ProcessedAt = time.Now()

	p.history.Append(result)

	p.logger.Info().
		Str("document_id", documentID).
		Str("final_status", string(result.FinalDecision)).
		Dur("duration", result.Duration).
		Msg("processing complete")

	return result
}

func (p *Pipeline) run(doc models.Document, documentID string) (result models.ProcessingResult, err error) {
	// Sub-components never fail by contract, but a broken implementation
	// must surface as an ERROR result, not a crash.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pipeline stage panic: %v", r)
		}
	}()

	classification := p.classifier.Classify(doc)
	if classification.Category == "" {
		return result, fmt.Errorf("classifier returned empty result for document %s", documentID)
	}

	p.logger.Debug().
		Str("document_id", documentID).
		Str("category", classification.Category).
		Float64("confidence", classification.Confidence).
		Msg("document classified")

	validation := p.validator.Validate(doc, classification)
	if validation.Category == "" {
		return result, fmt.Errorf("validator returned empty result for document %s", documentID)
	}

	decision := models.DecisionRejected
	if validation.Valid {
		decision = models.DecisionApproved
	}

	return models.ProcessingResult{
		DocumentID:     documentID,
		Status:         models.StatusSuccess,
		Classification: &classification,
		Validation:     &validation,
		FinalDecision:  decision,
	}, nil
}

// ProcessBatch processes documents sequentially in order and aggregates the
// outcomes. Counts are computed from the completed result list.
func (p *Pipeline) ProcessBatch(docs []models.Document) models.BatchSummary {
	start := time.Now()

	p.logger.Info().Int("total", len(docs)).Msg("starting batch processing")

	results := make([]models.ProcessingResult, 0, len(docs))
	for _, doc := range docs {
		results = append(results, p.Process(doc))
	}

	summary := Summarize(results)
	summary.Duration = time.Since(start)
	summary.CompletedAt = time.Now()

	p.logger.Info().
		Int("total", summary.TotalDocuments).
		Int("approved", summary.Approved).
		Int("rejected", summary.Rejected).
		Int("errors", summary.Errored).
		Dur("duration", summary.Duration).
		Msg("batch processing complete")

	return summary
}

// Summarize aggregates status and decision counts over a completed result
// list. approved + rejected + errored always equals the total.
func Summarize(results []models.ProcessingResult) models.BatchSummary {
	summary := models.BatchSummary{
		TotalDocuments: len(results),
		Results:        results,
	}

	for _, result := range results {
		if result.Status == models.StatusSuccess {
			summary.Succeeded++
		}
		switch result.FinalDecision {
		case models.DecisionApproved:
			summary.Approved++
		case models.DecisionRejected:
			summary.Rejected++
		case models.DecisionError:
			summary.Errored++
		}
	}

	return summary
}

// History returns a snapshot of all results processed so far.
func (p *Pipeline) History() []models.ProcessingResult {
	return p.history.Snapshot()
}

// ResetHistory clears the accumulated processing history.
func (p *Pipeline) ResetHistory() {
	p.history.Reset()
	p.logger.Info().Msg("processing history reset")
}
