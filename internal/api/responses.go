package api

import (
	"github.com/avasilev/estate-doc-agent/internal/models"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// TaxonomyResponse lists the supported categories with their codes and which
// of them carry a validation rule.
type TaxonomyResponse struct {
	Categories          map[string]string `json:"categories"`
	FallbackCategory    string            `json:"fallback_category"`
	RequiringValidation []string          `json:"categories_requiring_validation"`
}

// HistoryResponse is a read-only snapshot of the processing history.
type HistoryResponse struct {
	Total   int                       `json:"total"`
	Results []models.ProcessingResult `json:"results"`
}

// BatchRequest is the request body for batch processing.
type BatchRequest struct {
	Documents []models.Document `json:"documents"`
}
