package api

import (
	"fmt"
	"net/http"

	"github.com/avasilev/estate-doc-agent/internal/api/middleware"
	"github.com/avasilev/estate-doc-agent/internal/classifier"
	"github.com/avasilev/estate-doc-agent/internal/models"
	"github.com/avasilev/estate-doc-agent/internal/pipeline"
	"github.com/avasilev/estate-doc-agent/internal/taxonomy"
	"github.com/avasilev/estate-doc-agent/internal/validator"
	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"
)

type Handler struct {
	pipeline   *pipeline.Pipeline
	classifier *classifier.Classifier
	validator  *validator.Validator
	logger     *zerolog.Logger
}

func NewHandler(pipe *pipeline.Pipeline, cls *classifier.Classifier, val *validator.Validator, logger *zerolog.Logger) *Handler {
	return &Handler{
		pipeline:   pipe,
		classifier: cls,
		validator:  val,
		logger:     logger,
	}
}

// POST /api/v1/documents/process
// Body: Document
// Returns: ProcessingResult
func (h *Handler) ProcessDocument(req *restful.Request, resp *restful.Response) {
	var doc models.Document
	if err := req.ReadEntity(&doc); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("document_id", doc.ID()).
		Int("content_length", len(doc.Content)).
		Msg("Start document processing")

	result := h.pipeline.Process(doc)

	h.logger.Info().
		Str("document_id", result.DocumentID).
		Str("final_status", string(result.FinalDecision)).
		Msg("Document processing complete")

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// POST /api/v1/documents/process/batch
// Body: BatchRequest
// Returns: BatchSummary
func (h *Handler) ProcessBatch(req *restful.Request, resp *restful.Response) {
	var batchReq BatchRequest
	if err := req.ReadEntity(&batchReq); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if len(batchReq.Documents) == 0 {
		middleware.HandleError(resp, fmt.Errorf("no documents provided"), http.StatusBadRequest)
		return
	}

	h.logger.Info().Int("total", len(batchReq.Documents)).Msg("Start batch processing")

	summary := h.pipeline.ProcessBatch(batchReq.Documents)

	resp.WriteHeaderAndEntity(http.StatusOK, summary)
}

// POST /api/v1/documents/classify
// Body: Document
// Returns: ClassificationResult (classification only, no validation)
func (h *Handler) ClassifyDocument(req *restful.Request, resp *restful.Response) {
	var doc models.Document
	if err := req.ReadEntity(&doc); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	result := h.classifier.Classify(doc)

	h.logger.Info().
		Str("document_id", result.DocumentID).
		Str("category", result.Category).
		Float64("confidence", result.Confidence).
		Msg("Document classified")

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// GET /api/v1/taxonomy
func (h *Handler) GetTaxonomy(req *restful.Request, resp *restful.Response) {
	var requiring []string
	for _, category := range h.classifier.Categories() {
		if h.validator.RequiresValidation(category) {
			requiring = append(requiring, category)
		}
	}

	resp.WriteHeaderAndEntity(http.StatusOK, TaxonomyResponse{
		Categories:          taxonomy.Categories(),
		FallbackCategory:    taxonomy.Fallback,
		RequiringValidation: requiring,
	})
}

// GET /api/v1/history
func (h *Handler) GetHistory(req *restful.Request, resp *restful.Response) {
	results := h.pipeline.History()

	resp.WriteHeaderAndEntity(http.StatusOK, HistoryResponse{
		Total:   len(results),
		Results: results,
	})
}

// DELETE /api/v1/history
func (h *Handler) ResetHistory(req *restful.Request, resp *restful.Response) {
	h.pipeline.ResetHistory()
	resp.WriteHeader(http.StatusNoContent)
}

// GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}
