package validator_test

import (
	"reflect"
	"testing"

	"github.com/avasilev/estate-doc-agent/internal/config"
	"github.com/avasilev/estate-doc-agent/internal/models"
	"github.com/avasilev/estate-doc-agent/internal/taxonomy"
	"github.com/avasilev/estate-doc-agent/internal/validator"
	"github.com/rs/zerolog"
)

func newTestValidator(t *testing.T) *validator.Validator {
	t.Helper()

	logger := zerolog.Nop()
	return validator.New(config.DefaultRulesConfig().ValidatorRules(), &logger)
}

func classification(category string) models.ClassificationResult {
	code, _ := taxonomy.Code(category)
	return models.ClassificationResult{
		DocumentID:   "doc-1",
		Category:     category,
		CategoryCode: code,
		Confidence:   0.5,
	}
}

func TestValidate_AllOf(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantValid   bool
		wantFound   []string
		wantMissing []string
	}{
		{
			name:        "All required phrases present",
			content:     "CERTIFICATE OF DEATH. Date of Death: January 15, 2023.",
			wantValid:   true,
			wantFound:   []string{"certificate of death", "date of death"},
			wantMissing: nil,
		},
		{
			name:        "One required phrase missing",
			content:     "CERTIFICATE OF DEATH issued by the county clerk.",
			wantValid:   false,
			wantFound:   []string{"certificate of death"},
			wantMissing: []string{"date of death"},
		},
		{
			name:        "All required phrases missing",
			content:     "An unrelated memo about the estate.",
			wantValid:   false,
			wantFound:   nil,
			wantMissing: []string{"certificate of death", "date of death"},
		},
	}

	v := newTestValidator(t)

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			outcome := v.Validate(
				models.Document{DocumentID: "doc-1", Content: test.content},
				classification("Death Certificate"),
			)

			if outcome.Valid != test.wantValid {
				t.Errorf("valid = %t, want %t (reason: %s)", outcome.Valid, test.wantValid, outcome.Reason)
			}
			if !reflect.DeepEqual(outcome.Details.FoundPhrases, test.wantFound) {
				t.Errorf("found = %v, want %v", outcome.Details.FoundPhrases, test.wantFound)
			}
			if !reflect.DeepEqual(outcome.Details.MissingPhrases, test.wantMissing) {
				t.Errorf("missing = %v, want %v", outcome.Details.MissingPhrases, test.wantMissing)
			}
			if outcome.Details.Bypassed {
				t.Error("rule-backed category must not bypass")
			}
			if !outcome.Details.RequiredValidation {
				t.Error("rule-backed category must report required validation")
			}
			if outcome.Reason == "" {
				t.Error("outcome must carry a reason")
			}
		})
	}
}

func TestValidate_AnyOf(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantValid bool
		wantFound []string
	}{
		{
			name:      "First alternative present",
			content:   "This is the LAST WILL AND TESTAMENT of Jane Doe.",
			wantValid: true,
			wantFound: []string{"last will and testament"},
		},
		{
			name:      "Second alternative present",
			content:   "The Smith Family TRUST AGREEMENT, dated March 1, 2020.",
			wantValid: true,
			wantFound: []string{"trust agreement"},
		},
		{
			name:      "Both alternatives present",
			content:   "Last will and testament incorporating the trust agreement.",
			wantValid: true,
			wantFound: []string{"last will and testament", "trust agreement"},
		},
		{
			name:      "No alternative present",
			content:   "I leave my estate to my children in equal shares.",
			wantValid: false,
			wantFound: nil,
		},
	}

	v := newTestValidator(t)

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			outcome := v.Validate(
				models.Document{DocumentID: "doc-1", Content: test.content},
				classification("Will or Trust"),
			)

			if outcome.Valid != test.wantValid {
				t.Errorf("valid = %t, want %t (reason: %s)", outcome.Valid, test.wantValid, outcome.Reason)
			}
			if !reflect.DeepEqual(outcome.Details.FoundPhrases, test.wantFound) {
				t.Errorf("found = %v, want %v", outcome.Details.FoundPhrases, test.wantFound)
			}
			if !outcome.Details.RequiresAnyPhrase {
				t.Error("any-of rule must set the any-phrase marker")
			}
		})
	}
}

func TestValidate_AnyOfFailureNamesAlternatives(t *testing.T) {
	v := newTestValidator(t)

	outcome := v.Validate(
		models.Document{DocumentID: "doc-1", Content: "nothing relevant"},
		classification("Will or Trust"),
	)

	want := "Will or Trust validation failed: must contain 'last will and testament' or 'trust agreement'"
	if outcome.Reason != want {
		t.Errorf("reason = %q, want %q", outcome.Reason, want)
	}
}

func TestValidate_Bypass(t *testing.T) {
	v := newTestValidator(t)

	for _, category := range []string{"Financial Statement", "Property Deed", "Tax Document", taxonomy.Fallback} {
		t.Run(category, func(t *testing.T) {
			outcome := v.Validate(
				models.Document{DocumentID: "doc-1", Content: "any content at all"},
				classification(category),
			)

			if !outcome.Valid {
				t.Errorf("bypass category must be valid, reason: %s", outcome.Reason)
			}
			if !outcome.Details.Bypassed {
				t.Error("bypass marker not set")
			}
			if outcome.Details.RequiredValidation {
				t.Error("bypass category must not report required validation")
			}
		})
	}
}

func TestValidate_EmptyCategoryFallsBack(t *testing.T) {
	v := newTestValidator(t)

	outcome := v.Validate(
		models.Document{DocumentID: "doc-1", Content: "anything"},
		models.ClassificationResult{DocumentID: "doc-1"},
	)

	if outcome.Category != taxonomy.Fallback {
		t.Errorf("category = %q, want fallback", outcome.Category)
	}
	if !outcome.Valid || !outcome.Details.Bypassed {
		t.Error("fallback category must bypass validation")
	}
}

func TestRequiresValidation(t *testing.T) {
	v := newTestValidator(t)

	if !v.RequiresValidation("Death Certificate") {
		t.Error("Death Certificate must require validation")
	}
	if !v.RequiresValidation("Will or Trust") {
		t.Error("Will or Trust must require validation")
	}
	if v.RequiresValidation("Financial Statement") {
		t.Error("Financial Statement must not require validation")
	}
	if v.RequiresValidation(taxonomy.Fallback) {
		t.Error("fallback category must not require validation")
	}
}
