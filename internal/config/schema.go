package config

// RulesConfig is the complete decision rule configuration: classification
// keywords and validation requirements, keyed by taxonomy category.
type RulesConfig struct {
	Classification ClassificationConfig `yaml:"classification"`
	Validation     ValidationConfig     `yaml:"validation"`
}

// ClassificationConfig lists categories with their keyword phrases. The list
// order is the category priority order used for tie-breaking.
type ClassificationConfig struct {
	Categories []CategoryKeywords `yaml:"categories"`
}

type CategoryKeywords struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// ValidationConfig lists the categories that require validation. Categories
// absent from this list bypass validation.
type ValidationConfig struct {
	Rules []ValidationRule `yaml:"rules"`
}

// ValidationRule requires either all configured phrases ("all") or at least
// one of them ("any") to be present in the document.
type ValidationRule struct {
	Category string   `yaml:"category"`
	Require  string   `yaml:"require"`
	Phrases  []string `yaml:"phrases"`
}
