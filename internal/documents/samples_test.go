package documents_test

import (
	"testing"

	"github.com/avasilev/estate-doc-agent/internal/classifier"
	"github.com/avasilev/estate-doc-agent/internal/config"
	"github.com/avasilev/estate-doc-agent/internal/documents"
	"github.com/avasilev/estate-doc-agent/internal/history"
	"github.com/avasilev/estate-doc-agent/internal/models"
	"github.com/avasilev/estate-doc-agent/internal/pipeline"
	"github.com/avasilev/estate-doc-agent/internal/validator"
	"github.com/rs/zerolog"
)

func TestByID(t *testing.T) {
	doc, ok := documents.ByID("DC001")
	if !ok || doc.DocumentID != "DC001" {
		t.Fatalf("ByID(DC001) = %q, %t", doc.DocumentID, ok)
	}

	if _, ok := documents.ByID("NOPE"); ok {
		t.Error("unknown id must not resolve")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	docs := documents.All()
	if len(docs) != 7 {
		t.Fatalf("samples = %d, want 7", len(docs))
	}

	docs[0].DocumentID = "mutated"
	if documents.All()[0].DocumentID == "mutated" {
		t.Error("All must return a copy")
	}
}

// The samples are curated to cover every decision path, so their outcomes
// are pinned here.
func TestSampleDecisions(t *testing.T) {
	logger := zerolog.Nop()
	cfg := config.DefaultRulesConfig()
	pipe := pipeline.New(
		classifier.New(cfg.ClassifierRules(), &logger),
		validator.New(cfg.ValidatorRules(), &logger),
		history.NewStore(),
		&logger,
	)

	expected := map[string]struct {
		category string
		decision models.Decision
	}{
		"DC001": {category: "Death Certificate", decision: models.DecisionApproved},
		"DC002": {category: "Death Certificate", decision: models.DecisionRejected},
		"WT001": {category: "Will or Trust", decision: models.DecisionApproved},
		"WT002": {category: "Will or Trust", decision: models.DecisionApproved},
		"WT003": {category: "Will or Trust", decision: models.DecisionRejected},
		"FS001": {category: "Financial Statement", decision: models.DecisionApproved},
		"PD001": {category: "Property Deed", decision: models.DecisionApproved},
	}

	summary := pipe.ProcessBatch(documents.All())

	if summary.TotalDocuments != len(expected) {
		t.Fatalf("total = %d, want %d", summary.TotalDocuments, len(expected))
	}
	if summary.Errored != 0 {
		t.Errorf("errored = %d, want 0", summary.Errored)
	}

	for _, result := range summary.Results {
		want, ok := expected[result.DocumentID]
		if !ok {
			t.Errorf("unexpected sample %q", result.DocumentID)
			continue
		}
		if result.Classification == nil || result.Classification.Category != want.category {
			t.Errorf("%s category = %+v, want %q", result.DocumentID, result.Classification, want.category)
			continue
		}
		if result.FinalDecision != want.decision {
			t.Errorf("%s decision = %q, want %q (reason: %s)",
				result.DocumentID, result.FinalDecision, want.decision, result.Validation.Reason)
		}
	}
}
