package config

import (
	"fmt"
	"os"

	"github.com/avasilev/estate-doc-agent/internal/classifier"
	"github.com/avasilev/estate-doc-agent/internal/taxonomy"
	"github.com/avasilev/estate-doc-agent/internal/validator"
	"gopkg.in/yaml.v3"
)

const defaultRulesPath = "configs/rules.yaml"

// LoadRulesConfig reads the rules file named by RULES_CONFIG_PATH (default
// configs/rules.yaml). When no file exists the compiled-in defaults are used,
// so the pipeline works without any configuration on disk.
func LoadRulesConfig() (*RulesConfig, error) {
	path := os.Getenv("RULES_CONFIG_PATH")
	if path == "" {
		path = defaultRulesPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultRulesConfig()
			return cfg, cfg.Validate()
		}
		return nil, err
	}

	var cfg RulesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse rules config %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules config %s: %w", path, err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *RulesConfig) {
	for i := range cfg.Validation.Rules {
		if cfg.Validation.Rules[i].Require == "" {
			cfg.Validation.Rules[i].Require = string(validator.RuleAllOf)
		}
	}
}

// Validate checks that every referenced category exists in the taxonomy and
// that each rule carries usable phrase data.
func (c *RulesConfig) Validate() error {
	if len(c.Classification.Categories) == 0 {
		return fmt.Errorf("no classification categories configured")
	}

	seen := make(map[string]bool, len(c.Classification.Categories))
	for _, category := range c.Classification.Categories {
		if !taxonomy.Contains(category.Name) {
			return fmt.Errorf("classification category %q is not in the taxonomy", category.Name)
		}
		if seen[category.Name] {
			return fmt.Errorf("classification category %q configured twice", category.Name)
		}
		if len(category.Keywords) == 0 {
			return fmt.Errorf("classification category %q has no keywords", category.Name)
		}
		seen[category.Name] = true
	}

	for _, rule := range c.Validation.Rules {
		if !taxonomy.Contains(rule.Category) {
			return fmt.Errorf("validation category %q is not in the taxonomy", rule.Category)
		}
		if rule.Require != string(validator.RuleAllOf) && rule.Require != string(validator.RuleAnyOf) {
			return fmt.Errorf("validation category %q has unknown require mode %q", rule.Category, rule.Require)
		}
		if len(rule.Phrases) == 0 {
			return fmt.Errorf("validation category %q has no phrases", rule.Category)
		}
	}

	return nil
}

// ClassifierRules converts the classification config into classifier rules,
// preserving the declared priority order.
func (c *RulesConfig) ClassifierRules() []classifier.CategoryRule {
	rules := make([]classifier.CategoryRule, 0, len(c.Classification.Categories))
	for _, category := range c.Classification.Categories {
		rules = append(rules, classifier.CategoryRule{
			Category: category.Name,
			Keywords: category.Keywords,
		})
	}
	return rules
}

// ValidatorRules converts the validation config into the tagged rule table
// consumed by the validator.
func (c *RulesConfig) ValidatorRules() map[string]validator.Rule {
	rules := make(map[string]validator.Rule, len(c.Validation.Rules))
	for _, rule := range c.Validation.Rules {
		rules[rule.Category] = validator.Rule{
			Kind:    validator.RuleKind(rule.Require),
			Phrases: rule.Phrases,
		}
	}
	return rules
}

// DefaultRulesConfig returns the built-in estate document rules.
func DefaultRulesConfig() *RulesConfig {
	return &RulesConfig{
		Classification: ClassificationConfig{
			Categories: []CategoryKeywords{
				{
					Name: "Death Certificate",
					Keywords: []string{
						"certificate of death",
						"death certificate",
						"department of health",
						"deceased",
						"date of death",
						"cause of death",
						"certifying physician",
					},
				},
				{
					Name: "Will or Trust",
					Keywords: []string{
						"last will and testament",
						"will and testament",
						"trust agreement",
						"trust document",
						"executor",
						"beneficiary",
						"testator",
						"trustee",
					},
				},
				{
					Name: "Property Deed",
					Keywords: []string{
						"deed",
						"property deed",
						"warranty deed",
						"quitclaim deed",
						"real estate",
						"property transfer",
						"grantor",
						"grantee",
					},
				},
				{
					Name: "Financial Statement",
					Keywords: []string{
						"financial statement",
						"bank statement",
						"account statement",
						"balance sheet",
						"income statement",
						"assets",
						"liabilities",
						"account balance",
					},
				},
				{
					Name: "Tax Document",
					Keywords: []string{
						"tax return",
						"tax document",
						"irs",
						"internal revenue service",
						"form 1040",
						"tax year",
						"taxable income",
						"tax liability",
					},
				},
			},
		},
		Validation: ValidationConfig{
			Rules: []ValidationRule{
				{
					Category: "Death Certificate",
					Require:  string(validator.RuleAllOf),
					Phrases:  []string{"certificate of death", "date of death"},
				},
				{
					Category: "Will or Trust",
					Require:  string(validator.RuleAnyOf),
					Phrases:  []string{"last will and testament", "trust agreement"},
				},
			},
		},
	}
}
