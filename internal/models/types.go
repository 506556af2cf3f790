package models

import (
	"time"
)

type ProcessingStatus string

const (
	StatusSuccess ProcessingStatus = "SUCCESS"
	StatusError   ProcessingStatus = "ERROR"
)

type Decision string

const (
	DecisionApproved Decision = "APPROVED"
	DecisionRejected Decision = "REJECTED"
	DecisionError    Decision = "ERROR"
)

// UnknownDocumentID is the sentinel used when a caller submits a document
// without an identifier.
const UnknownDocumentID = "unknown"

// Document is the caller-supplied input. Metadata is carried through
// untouched; the pipeline never inspects it.
type Document struct {
	DocumentID string         `json:"document_id"`
	Content    string         `json:"content"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// ID returns the document identifier, defaulting to the unknown sentinel.
func (d Document) ID() string {
	if d.DocumentID == "" {
		return UnknownDocumentID
	}
	return d.DocumentID
}

// ClassificationResult is produced fresh per classification call.
// Confidence is a saturation ratio (matched keyword coverage), not a probability.
type ClassificationResult struct {
	DocumentID      string   `json:"document_id"`
	Category        string   `json:"category"`
	CategoryCode    string   `json:"categoryCode"`
	Confidence      float64  `json:"confidence"`
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
}

// ValidationDetails is the structured evidence behind a validation outcome.
type ValidationDetails struct {
	Bypassed           bool     `json:"bypassed"`
	RequiredValidation bool     `json:"required_validation"`
	RequiredPhrases    []string `json:"required_phrases,omitempty"`
	AcceptedPhrases    []string `json:"required_phrases_any,omitempty"`
	FoundPhrases       []string `json:"found_phrases,omitempty"`
	MissingPhrases     []string `json:"missing_phrases,omitempty"`
	RequiresAnyPhrase  bool     `json:"requires_any_phrase,omitempty"`
}

type ValidationOutcome struct {
	DocumentID string            `json:"document_id"`
	Category   string            `json:"category"`
	Valid      bool              `json:"valid"`
	Reason     string            `json:"reason"`
	Details    ValidationDetails `json:"validation_details"`
}

// ProcessingResult is created once per submitted document and never mutated
// after creation. Classification and Validation are nil on pipeline errors.
type ProcessingResult struct {
	DocumentID     string                `json:"document_id"`
	Status         ProcessingStatus      `json:"processing_status"`
	Classification *ClassificationResult `json:"classification_result"`
	Validation     *ValidationOutcome    `json:"compliance_result"`
	FinalDecision  Decision              `json:"final_status"`
	ErrorDetail    string                `json:"error_message,omitempty"`
	ProcessedAt    time.Time             `json:"processing_timestamp"`
	Duration       time.Duration         `json:"processing_duration_ns"`
}

// BatchSummary aggregates an ordered batch of processing results.
type BatchSummary struct {
	TotalDocuments int                `json:"total_documents"`
	Succeeded      int                `json:"successful_processing"`
	Approved       int                `json:"approved_documents"`
	Rejected       int                `json:"rejected_documents"`
	Errored        int                `json:"error_documents"`
	Results        []ProcessingResult `json:"results"`
	CompletedAt    time.Time          `json:"batch_timestamp"`
	Duration       time.Duration      `json:"batch_duration_ns"`
}
