package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avasilev/estate-doc-agent/internal/classifier"
	"github.com/avasilev/estate-doc-agent/internal/config"
	"github.com/avasilev/estate-doc-agent/internal/history"
	"github.com/avasilev/estate-doc-agent/internal/models"
	"github.com/avasilev/estate-doc-agent/internal/pipeline"
	"github.com/avasilev/estate-doc-agent/internal/taxonomy"
	"github.com/avasilev/estate-doc-agent/internal/validator"
	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"
)

func newTestContainer(t *testing.T) *restful.Container {
	t.Helper()

	logger := zerolog.Nop()
	cfg := config.DefaultRulesConfig()
	cls := classifier.New(cfg.ClassifierRules(), &logger)
	val := validator.New(cfg.ValidatorRules(), &logger)
	pipe := pipeline.New(cls, val, history.NewStore(), &logger)

	container := restful.NewContainer()
	RegisterRoutes(container, NewHandler(pipe, cls, val, &logger))
	return container
}

func doJSON(t *testing.T, container *restful.Container, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", restful.MIME_JSON)
	req.Header.Set("Accept", restful.MIME_JSON)

	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)
	return recorder
}

func decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(recorder.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", recorder.Body.String(), err)
	}
	return out
}

func TestHealth(t *testing.T) {
	container := newTestContainer(t)

	recorder := doJSON(t, container, http.MethodGet, "/api/v1/health", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	health := decode[HealthResponse](t, recorder)
	if health.Status != "ok" {
		t.Errorf("status = %q, want ok", health.Status)
	}
}

func TestProcessDocument(t *testing.T) {
	container := newTestContainer(t)

	doc := models.Document{
		DocumentID: "doc-1",
		Content:    "CERTIFICATE OF DEATH. Date of Death: January 15, 2023.",
	}

	recorder := doJSON(t, container, http.MethodPost, "/api/v1/documents/process", doc)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
	}

	result := decode[models.ProcessingResult](t, recorder)
	if result.FinalDecision != models.DecisionApproved {
		t.Errorf("decision = %q, want APPROVED", result.FinalDecision)
	}
	if result.Classification == nil || result.Classification.Category != "Death Certificate" {
		t.Errorf("classification = %+v", result.Classification)
	}
}

func TestProcessDocument_BadBody(t *testing.T) {
	container := newTestContainer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/process", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", restful.MIME_JSON)

	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", recorder.Code)
	}
}

func TestProcessBatch(t *testing.T) {
	container := newTestContainer(t)

	request := BatchRequest{
		Documents: []models.Document{
			{DocumentID: "doc-1", Content: "Certificate of Death. Date of Death: May 1, 2022."},
			{DocumentID: "doc-2", Content: "unclassifiable note"},
		},
	}

	recorder := doJSON(t, container, http.MethodPost, "/api/v1/documents/process/batch", request)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
	}

	summary := decode[models.BatchSummary](t, recorder)
	if summary.TotalDocuments != 2 {
		t.Errorf("total = %d, want 2", summary.TotalDocuments)
	}
	if summary.Approved+summary.Rejected+summary.Errored != summary.TotalDocuments {
		t.Errorf("counts do not sum: %+v", summary)
	}
}

func TestProcessBatch_Empty(t *testing.T) {
	container := newTestContainer(t)

	recorder := doJSON(t, container, http.MethodPost, "/api/v1/documents/process/batch", BatchRequest{})
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", recorder.Code)
	}
}

func TestClassifyDocument(t *testing.T) {
	container := newTestContainer(t)

	doc := models.Document{DocumentID: "doc-1", Content: "warranty deed from grantor to grantee"}

	recorder := doJSON(t, container, http.MethodPost, "/api/v1/documents/classify", doc)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
	}

	result := decode[models.ClassificationResult](t, recorder)
	if result.Category != "Property Deed" {
		t.Errorf("category = %q, want Property Deed", result.Category)
	}
	if result.CategoryCode != "03.0090-00" {
		t.Errorf("code = %q, want 03.0090-00", result.CategoryCode)
	}
}

func TestGetTaxonomy(t *testing.T) {
	container := newTestContainer(t)

	recorder := doJSON(t, container, http.MethodGet, "/api/v1/taxonomy", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d", recorder.Code)
	}

	response := decode[TaxonomyResponse](t, recorder)
	if response.FallbackCategory != taxonomy.Fallback {
		t.Errorf("fallback = %q, want %q", response.FallbackCategory, taxonomy.Fallback)
	}
	if len(response.Categories) != 6 {
		t.Errorf("categories = %d, want 6", len(response.Categories))
	}
	if len(response.RequiringValidation) != 2 {
		t.Errorf("requiring validation = %v, want 2 categories", response.RequiringValidation)
	}
}

func TestHistoryEndpoints(t *testing.T) {
	container := newTestContainer(t)

	doc := models.Document{DocumentID: "doc-1", Content: "irs form 1040 for tax year 2023"}
	if recorder := doJSON(t, container, http.MethodPost, "/api/v1/documents/process", doc); recorder.Code != http.StatusOK {
		t.Fatalf("process status = %d", recorder.Code)
	}

	recorder := doJSON(t, container, http.MethodGet, "/api/v1/history", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("history status = %d", recorder.Code)
	}
	historyResponse := decode[HistoryResponse](t, recorder)
	if historyResponse.Total != 1 {
		t.Errorf("total = %d, want 1", historyResponse.Total)
	}

	if recorder := doJSON(t, container, http.MethodDelete, "/api/v1/history", nil); recorder.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", recorder.Code)
	}

	recorder = doJSON(t, container, http.MethodGet, "/api/v1/history", nil)
	historyResponse = decode[HistoryResponse](t, recorder)
	if historyResponse.Total != 0 {
		t.Errorf("total after reset = %d, want 0", historyResponse.Total)
	}
}
