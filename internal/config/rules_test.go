package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/avasilev/estate-doc-agent/internal/validator"
)

func writeRulesFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write rules file: %v", err)
	}
	return path
}

func TestLoadRulesConfig_Defaults(t *testing.T) {
	t.Setenv("RULES_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := LoadRulesConfig()
	if err != nil {
		t.Fatalf("LoadRulesConfig: %v", err)
	}

	if len(cfg.Classification.Categories) != 5 {
		t.Errorf("categories = %d, want 5", len(cfg.Classification.Categories))
	}
	if cfg.Classification.Categories[0].Name != "Death Certificate" {
		t.Errorf("first category = %q, want Death Certificate", cfg.Classification.Categories[0].Name)
	}

	rules := cfg.ValidatorRules()
	if len(rules) != 2 {
		t.Fatalf("validation rules = %d, want 2", len(rules))
	}
	if rules["Death Certificate"].Kind != validator.RuleAllOf {
		t.Errorf("Death Certificate rule kind = %q, want %q", rules["Death Certificate"].Kind, validator.RuleAllOf)
	}
	if rules["Will or Trust"].Kind != validator.RuleAnyOf {
		t.Errorf("Will or Trust rule kind = %q, want %q", rules["Will or Trust"].Kind, validator.RuleAnyOf)
	}
}

func TestLoadRulesConfig_FromFile(t *testing.T) {
	path := writeRulesFile(t, `
classification:
  categories:
    - name: Tax Document
      keywords:
        - tax return
        - irs
validation:
  rules:
    - category: Tax Document
      phrases:
        - tax return
`)
	t.Setenv("RULES_CONFIG_PATH", path)

	cfg, err := LoadRulesConfig()
	if err != nil {
		t.Fatalf("LoadRulesConfig: %v", err)
	}

	classifierRules := cfg.ClassifierRules()
	if len(classifierRules) != 1 || classifierRules[0].Category != "Tax Document" {
		t.Fatalf("classifier rules = %+v", classifierRules)
	}

	// Omitted require mode defaults to all-of.
	rule := cfg.ValidatorRules()["Tax Document"]
	if rule.Kind != validator.RuleAllOf {
		t.Errorf("rule kind = %q, want %q", rule.Kind, validator.RuleAllOf)
	}
}

func TestLoadRulesConfig_InvalidYAML(t *testing.T) {
	path := writeRulesFile(t, "classification: [not a mapping")
	t.Setenv("RULES_CONFIG_PATH", path)

	if _, err := LoadRulesConfig(); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *RulesConfig)
		wantErr bool
	}{
		{
			name:    "Defaults are valid",
			mutate:  func(cfg *RulesConfig) {},
			wantErr: false,
		},
		{
			name: "No categories",
			mutate: func(cfg *RulesConfig) {
				cfg.Classification.Categories = nil
			},
			wantErr: true,
		},
		{
			name: "Category outside the taxonomy",
			mutate: func(cfg *RulesConfig) {
				cfg.Classification.Categories[0].Name = "Parking Ticket"
			},
			wantErr: true,
		},
		{
			name: "Duplicate category",
			mutate: func(cfg *RulesConfig) {
				cfg.Classification.Categories[1].Name = cfg.Classification.Categories[0].Name
			},
			wantErr: true,
		},
		{
			name: "Category without keywords",
			mutate: func(cfg *RulesConfig) {
				cfg.Classification.Categories[0].Keywords = nil
			},
			wantErr: true,
		},
		{
			name: "Validation category outside the taxonomy",
			mutate: func(cfg *RulesConfig) {
				cfg.Validation.Rules[0].Category = "Parking Ticket"
			},
			wantErr: true,
		},
		{
			name: "Unknown require mode",
			mutate: func(cfg *RulesConfig) {
				cfg.Validation.Rules[0].Require = "some"
			},
			wantErr: true,
		},
		{
			name: "Validation rule without phrases",
			mutate: func(cfg *RulesConfig) {
				cfg.Validation.Rules[0].Phrases = nil
			},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := DefaultRulesConfig()
			test.mutate(cfg)

			err := cfg.Validate()
			if test.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !test.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
