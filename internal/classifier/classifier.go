// Package classifier scores document text against per-category keyword sets
// and picks the best matching taxonomy category.
package classifier

import (
	"strings"

	"github.com/avasilev/estate-doc-agent/internal/models"
	"github.com/avasilev/estate-doc-agent/internal/taxonomy"
	"github.com/avasilev/estate-doc-agent/internal/textmatch"
	"github.com/rs/zerolog"
)

// CategoryRule configures the keyword phrases for one category. The declared
// order of rules is the category priority order used to break score ties.
type CategoryRule struct {
	Category string
	Keywords []string
}

type compiledRule struct {
	category string
	code     string
	keywords []textmatch.Phrase
}

type Classifier struct {
	rules  []compiledRule
	logger *zerolog.Logger
}

// New compiles the keyword rules in declared order. Categories must exist in
// the taxonomy; the caller validates that at config load.
func New(rules []CategoryRule, logger *zerolog.Logger) *Classifier {
	compiled := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		code, _ := taxonomy.Code(rule.Category)
		compiled = append(compiled, compiledRule{
			category: rule.Category,
			code:     code,
			keywords: textmatch.NewPhrases(rule.Keywords),
		})
	}

	return &Classifier{
		rules:  compiled,
		logger: logger,
	}
}

// Classify scores the document content against every category and returns the
// best match. Empty or whitespace-only content short-circuits to the fallback
// category with confidence 0.0; so does content matching no keyword at all.
//
// Ties on the aggregate score resolve to the earliest declared category, so
// the outcome is deterministic for a given rule order.
func (c *Classifier) Classify(doc models.Document) models.ClassificationResult {
	documentID := doc.ID()

	if strings.TrimSpace(doc.Content) == "" {
		c.logger.Debug().Str("document_id", documentID).Msg("empty content, using fallback category")
		return fallbackResult(documentID)
	}

	tokens := textmatch.Tokens(doc.Content)

	bestScore := 0
	var best *compiledRule
	var bestMatched []string

	for i := range c.rules {
		rule := &c.rules[i]

		score := 0
		var matched []string
		for _, keyword := range rule.keywords {
			n := keyword.Count(tokens)
			if n > 0 {
				score += n
				matched = append(matched, keyword.String())
			}
		}

		if score > bestScore {
			bestScore = score
			best = rule
			bestMatched = matched
		}
	}

	if best == nil {
		c.logger.Debug().Str("document_id", documentID).Msg("no keyword matched, using fallback category")
		return fallbackResult(documentID)
	}

	confidence := float64(bestScore) / float64(len(best.keywords))
	if confidence > 1.0 {
		confidence = 1.0
	}

	c.logger.Debug().
		Str("document_id", documentID).
		Str("category", best.category).
		Int("score", bestScore).
		Float64("confidence", confidence).
		Msg("document classified")

	return models.ClassificationResult{
		DocumentID:      documentID,
		Category:        best.category,
		CategoryCode:    best.code,
		Confidence:      confidence,
		MatchedKeywords: bestMatched,
	}
}

// Categories returns the configured category names in priority order.
func (c *Classifier) Categories() []string {
	names := make([]string, 0, len(c.rules))
	for _, rule := range c.rules {
		names = append(names, rule.category)
	}
	return names
}

func fallbackResult(documentID string) models.ClassificationResult {
	return models.ClassificationResult{
		DocumentID:   documentID,
		Category:     taxonomy.Fallback,
		CategoryCode: taxonomy.FallbackCode(),
		Confidence:   0.0,
	}
}
