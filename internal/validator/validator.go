// Package validator applies category-specific compliance rules to document
// text. A category either requires all of a phrase set, any one of a phrase
// set, or has no rule at all and bypasses validation.
package validator

import (
	"fmt"
	"strings"

	"github.com/avasilev/estate-doc-agent/internal/models"
	"github.com/avasilev/estate-doc-agent/internal/taxonomy"
	"github.com/avasilev/estate-doc-agent/internal/textmatch"
	"github.com/rs/zerolog"
)

type RuleKind string

const (
	RuleAllOf RuleKind = "all"
	RuleAnyOf RuleKind = "any"
)

// Rule is the validation requirement for one category. Categories without a
// rule bypass validation entirely.
type Rule struct {
	Kind    RuleKind
	Phrases []string
}

type compiledRule struct {
	kind    RuleKind
	phrases []textmatch.Phrase
}

type Validator struct {
	rules  map[string]compiledRule
	logger *zerolog.Logger
}

// New compiles the per-category rules. Phrases are tokenized once up front.
func New(rules map[string]Rule, logger *zerolog.Logger) *Validator {
	compiled := make(map[string]compiledRule, len(rules))
	for category, rule := range rules {
		compiled[category] = compiledRule{
			kind:    rule.Kind,
			phrases: textmatch.NewPhrases(rule.Phrases),
		}
	}

	return &Validator{
		rules:  compiled,
		logger: logger,
	}
}

// Validate checks the document content against the rule configured for the
// classified category. Categories without a rule are never blocked: they pass
// with a bypass marker. Validate never fails; a non-compliant document is a
// normal invalid outcome, not an error.
func (v *Validator) Validate(doc models.Document, classification models.ClassificationResult) models.ValidationOutcome {
	documentID := doc.ID()

	category := classification.Category
	if category == "" {
		category = taxonomy.Fallback
	}

	rule, ok := v.rules[category]
	if !ok {
		v.logger.Debug().Str("document_id", documentID).Str("category", category).Msg("no validation rule, bypassing")
		return models.ValidationOutcome{
			DocumentID: documentID,
			Category:   category,
			Valid:      true,
			Reason:     fmt.Sprintf("Document category '%s' bypasses validation", category),
			Details: models.ValidationDetails{
				Bypassed:           true,
				RequiredValidation: false,
			},
		}
	}

	tokens := textmatch.Tokens(doc.Content)

	var outcome models.ValidationOutcome
	switch rule.kind {
	case RuleAllOf:
		outcome = validateAllOf(documentID, category, tokens, rule.phrases)
	case RuleAnyOf:
		outcome = validateAnyOf(documentID, category, tokens, rule.phrases)
	}

	v.logger.Debug().
		Str("document_id", documentID).
		Str("category", category).
		Bool("valid", outcome.Valid).
		Msg("document validated")

	return outcome
}

// RequiresValidation reports whether a category has a configured rule.
func (v *Validator) RequiresValidation(category string) bool {
	_, ok := v.rules[category]
	return ok
}

func validateAllOf(documentID, category string, tokens []string, phrases []textmatch.Phrase) models.ValidationOutcome {
	var found, missing []string
	for _, phrase := range phrases {
		if phrase.In(tokens) {
			found = append(found, phrase.String())
		} else {
			missing = append(missing, phrase.String())
		}
	}

	valid := len(missing) == 0

	var reason string
	if valid {
		reason = fmt.Sprintf("%s validation passed: all required phrases found (%s)", category, strings.Join(found, ", "))
	} else {
		reason = fmt.Sprintf("%s validation failed: missing required phrases (%s)", category, strings.Join(missing, ", "))
	}

	return models.ValidationOutcome{
		DocumentID: documentID,
		Category:   category,
		Valid:      valid,
		Reason:     reason,
		Details: models.ValidationDetails{
			Bypassed:           false,
			RequiredValidation: true,
			RequiredPhrases:    phraseStrings(phrases),
			FoundPhrases:       found,
			MissingPhrases:     missing,
		},
	}
}

func validateAnyOf(documentID, category string, tokens []string, phrases []textmatch.Phrase) models.ValidationOutcome {
	var found []string
	for _, phrase := range phrases {
		if phrase.In(tokens) {
			found = append(found, phrase.String())
		}
	}

	valid := len(found) > 0

	var reason string
	if valid {
		reason = fmt.Sprintf("%s validation passed: found required phrase(s) (%s)", category, strings.Join(found, ", "))
	} else {
		// Name every accepted alternative so the caller knows what would
		// have satisfied the rule.
		reason = fmt.Sprintf("%s validation failed: must contain %s", category, quoteJoin(phraseStrings(phrases), " or "))
	}

	return models.ValidationOutcome{
		DocumentID: documentID,
		Category:   category,
		Valid:      valid,
		Reason:     reason,
		Details: models.ValidationDetails{
			Bypassed:           false,
			RequiredValidation: true,
			AcceptedPhrases:    phraseStrings(phrases),
			FoundPhrases:       found,
			RequiresAnyPhrase:  true,
		},
	}
}

func phraseStrings(phrases []textmatch.Phrase) []string {
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		out = append(out, p.String())
	}
	return out
}

func quoteJoin(items []string, sep string) string {
	quoted := make([]string, 0, len(items))
	for _, item := range items {
		quoted = append(quoted, "'"+item+"'")
	}
	return strings.Join(quoted, sep)
}
