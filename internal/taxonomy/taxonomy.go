// Package taxonomy holds the fixed estate document taxonomy: category names
// mapped to their stable classification codes. The table is immutable; every
// category referenced by classification or validation rules must exist here.
package taxonomy

// Fallback is the category returned when no classification rule matches.
const Fallback = "Miscellaneous"

var categoryCodes = map[string]string{
	"Death Certificate":   "01.0000-50",
	"Will or Trust":       "02.0300-50",
	"Property Deed":       "03.0090-00",
	"Financial Statement": "04.5000-00",
	"Tax Document":        "05.5000-70",
	Fallback:              "00.0000-00",
}

var codeCategories = func() map[string]string {
	m := make(map[string]string, len(categoryCodes))
	for category, code := range categoryCodes {
		m[code] = category
	}
	return m
}()

// Code returns the classification code for a category.
func Code(category string) (string, bool) {
	code, ok := categoryCodes[category]
	return code, ok
}

// FallbackCode returns the code of the fallback category.
func FallbackCode() string {
	return categoryCodes[Fallback]
}

// Category returns the category name for a classification code.
func Category(code string) (string, bool) {
	category, ok := codeCategories[code]
	return category, ok
}

// Categories returns a copy of the full category-to-code table.
func Categories() map[string]string {
	m := make(map[string]string, len(categoryCodes))
	for category, code := range categoryCodes {
		m[category] = code
	}
	return m
}

// Contains reports whether a category exists in the taxonomy.
func Contains(category string) bool {
	_, ok := categoryCodes[category]
	return ok
}
