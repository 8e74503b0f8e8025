package template

import (
	"errors"
	"strings"
	"testing"
)

// =============================================================================
// Classify
// =============================================================================

// TestClassify verifies keyword routing, precedence, and the catch-all.
// Table-driven for extensibility with explicit case names.
func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		prompt string
		want   Category
	}{
		{"zone_concept_keyword", "Analyze the Zone Concept framework", ZoneConcept},
		{"consciousness_keyword", "Analyze the organizational consciousness evolution", Consciousness},
		{"guidance_keyword", "Analyze the professional guidance framework", Guidance},
		{"no_keyword_falls_back", "Provide a comprehensive analysis of the learning cycle", Comprehensive},
		{"empty_prompt_falls_back", "", Comprehensive},
		{"case_insensitive_upper", "ZONE CONCEPT review", ZoneConcept},
		{"case_insensitive_mixed", "CoNsCiOuSnEsS check", Consciousness},
		{"keyword_mid_word_context", "misguidance detected", Guidance},
		{"zone_beats_consciousness", "zone concept and consciousness together", ZoneConcept},
		{"zone_beats_guidance", "guidance first, then zone concept", ZoneConcept},
		{"consciousness_beats_guidance", "guidance and consciousness together", Consciousness},
		{"all_three_keywords", "zone concept consciousness guidance", ZoneConcept},
		{"zone_without_concept", "zone framework only", Comprehensive},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.prompt); got != tc.want {
				t.Errorf("Classify(%q) = %q, want %q", tc.prompt, got, tc.want)
			}
		})
	}
}

// =============================================================================
// Categories
// =============================================================================

// TestCategories_ContentAndOrder verifies the canonical assembly order.
func TestCategories_ContentAndOrder(t *testing.T) {
	got := Categories()
	want := []Category{ZoneConcept, Consciousness, Guidance, Comprehensive}

	if len(got) != len(want) {
		t.Fatalf("got %d categories, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

// TestCategories_ReturnsCopy verifies mutation does not leak between calls.
func TestCategories_ReturnsCopy(t *testing.T) {
	first := Categories()
	original := first[0]
	first[0] = Category("corrupted")

	if second := Categories(); second[0] != original {
		t.Errorf("Categories returned reference instead of copy: got %q, want %q", second[0], original)
	}
}

func TestCategory_Title(t *testing.T) {
	cases := []struct {
		category Category
		want     string
	}{
		{ZoneConcept, "Zone_Concept"},
		{Consciousness, "Consciousness"},
		{Guidance, "Guidance"},
		{Comprehensive, "Comprehensive"},
	}

	for _, tc := range cases {
		t.Run(string(tc.category), func(t *testing.T) {
			if got := tc.category.Title(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

// =============================================================================
// Packs
// =============================================================================

// TestPack_Render_AllCategories verifies every category renders a substantial,
// fixed body regardless of any input data.
func TestPack_Render_AllCategories(t *testing.T) {
	const minBodyLength = 500 // bodies are long-form analysis text

	pack := DefaultPack()
	for _, c := range Categories() {
		t.Run(string(c), func(t *testing.T) {
			body := pack.Render(c)
			if len(body) < minBodyLength {
				t.Errorf("body for %q suspiciously short: %d chars", c, len(body))
			}
			if body != pack.Render(c) {
				t.Errorf("body for %q is not stable across calls", c)
			}
		})
	}
}

// TestPack_Render_NoDuplicateBodies verifies each category has unique content.
func TestPack_Render_NoDuplicateBodies(t *testing.T) {
	seen := make(map[string]Category)

	for _, c := range Categories() {
		body := DefaultPack().Render(c)
		if existing, ok := seen[body]; ok {
			t.Errorf("categories %q and %q share identical bodies", existing, c)
		}
		seen[body] = c
	}
}

// TestPack_Render_IsStatic verifies bodies carry no interpolation artifacts.
func TestPack_Render_IsStatic(t *testing.T) {
	for _, c := range Categories() {
		body := DefaultPack().Render(c)
		for _, marker := range []string{"%s", "%d", "{{", "}}"} {
			if strings.Contains(body, marker) {
				t.Errorf("body for %q contains interpolation marker %q", c, marker)
			}
		}
	}
}

func TestSelectPack(t *testing.T) {
	t.Run("standard", func(t *testing.T) {
		p, err := SelectPack(Standard)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name() != Standard {
			t.Errorf("got pack %q, want %q", p.Name(), Standard)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		for _, name := range []string{"", "Standard", "v3", " standard"} {
			if _, err := SelectPack(name); !errors.Is(err, ErrUnknownPack) {
				t.Errorf("SelectPack(%q): expected ErrUnknownPack, got %v", name, err)
			}
		}
	})
}

// TestPackNames_MatchesRegistry verifies every listed name resolves.
func TestPackNames_MatchesRegistry(t *testing.T) {
	names := PackNames()
	if len(names) == 0 {
		t.Fatal("no registered packs")
	}
	for _, name := range names {
		if _, err := SelectPack(name); err != nil {
			t.Errorf("PackNames lists %q but SelectPack(%q) failed: %v", name, name, err)
		}
	}
}
