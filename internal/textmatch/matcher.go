// Package textmatch provides whole-word phrase matching over tokenized text.
// Text is tokenized once and phrases are matched as token subsequences, so a
// phrase can never match inside a longer word ("deceased" does not match
// "predeceased") and no regex is compiled per call.
package textmatch

import (
	"strings"
	"unicode"
)

// Tokens splits text into lower-cased word tokens. A word rune is a letter,
// a digit, or an underscore; every other rune is a separator.
func Tokens(text string) []string {
	lowered := strings.ToLower(text)

	return strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}

// Phrase is a pre-tokenized search phrase. The zero value matches nothing.
type Phrase struct {
	raw    string
	tokens []string
}

// NewPhrase tokenizes a phrase once for repeated matching.
func NewPhrase(s string) Phrase {
	return Phrase{
		raw:    s,
		tokens: Tokens(s),
	}
}

// NewPhrases tokenizes a list of phrases, preserving order.
func NewPhrases(phrases []string) []Phrase {
	compiled := make([]Phrase, 0, len(phrases))
	for _, p := range phrases {
		compiled = append(compiled, NewPhrase(p))
	}
	return compiled
}

// String returns the phrase as originally configured.
func (p Phrase) String() string {
	return p.raw
}

// Count returns the number of non-overlapping occurrences of the phrase in
// the token stream.
func (p Phrase) Count(tokens []string) int {
	if len(p.tokens) == 0 || len(tokens) < len(p.tokens) {
		return 0
	}

	count := 0
	for i := 0; i+len(p.tokens) <= len(tokens); {
		if matchAt(tokens, p.tokens, i) {
			count++
			i += len(p.tokens)
		} else {
			i++
		}
	}
	return count
}

// In reports whether the phrase occurs at least once in the token stream.
func (p Phrase) In(tokens []string) bool {
	if len(p.tokens) == 0 || len(tokens) < len(p.tokens) {
		return false
	}
	for i := 0; i+len(p.tokens) <= len(tokens); i++ {
		if matchAt(tokens, p.tokens, i) {
			return true
		}
	}
	return false
}

func matchAt(tokens, phrase []string, at int) bool {
	for j, want := range phrase {
		if tokens[at+j] != want {
			return false
		}
	}
	return true
}
