// Package template routes prompts to one of four fixed report categories and
// renders each category's pre-composed body from a selected template pack.
//
// The context data embedded in a prompt is consumed only for classification;
// the rendered body is static text. Interpolating configuration values into
// the bodies would change observable behavior and is out of scope here.
package template

import (
	"strings"

	"github.com/regima/cycle-insights/internal/format"
)

// Category is one of the four fixed report types.
type Category string

// Category constants.
// Use these instead of string literals for compile-time safety.
const (
	ZoneConcept   Category = "zone_concept"
	Consciousness Category = "consciousness"
	Guidance      Category = "guidance"
	Comprehensive Category = "comprehensive"
)

// categoryOrder defines the canonical category order used for assembly and
// artifact listing. Routing precedence in Classify follows the same order.
var categoryOrder = []Category{
	ZoneConcept,
	Consciousness,
	Guidance,
	Comprehensive,
}

// Categories returns the categories in canonical order.
func Categories() []Category {
	result := make([]Category, len(categoryOrder))
	copy(result, categoryOrder)
	return result
}

// Title returns the category name in title case for artifact headers,
// e.g. "zone_concept" -> "Zone_Concept".
func (c Category) Title() string {
	return format.Title(string(c))
}

// routes maps distinguishing keywords to categories, in precedence order.
// First match wins; Comprehensive is the catch-all when nothing matches.
//
// Review candidate: the catch-all also absorbs prompts that match no keyword
// at all (malformed or unexpected input) instead of reporting them. Kept
// as-is; see DESIGN.md.
var routes = []struct {
	keyword  string
	category Category
}{
	{"zone concept", ZoneConcept},
	{"consciousness", Consciousness},
	{"guidance", Guidance},
}

// Classify returns the category for a prompt using ordered, case-insensitive
// substring matching. It is total: prompts matching no keyword are
// Comprehensive.
func Classify(prompt string) Category {
	lower := strings.ToLower(prompt)
	for _, r := range routes {
		if strings.Contains(lower, r.keyword) {
			return r.category
		}
	}
	return Comprehensive
}
