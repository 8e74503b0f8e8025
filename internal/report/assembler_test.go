package report

import (
	"sort"
	"strings"
	"testing"

	"github.com/regima/cycle-insights/internal/orgdata"
	"github.com/regima/cycle-insights/internal/template"
)

// mustParse parses JSON or fails the test.
func mustParse(t *testing.T, data string) orgdata.Document {
	t.Helper()
	doc, err := orgdata.Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

// keysOf returns the sorted category names of a report map.
func keysOf(reports map[template.Category]string) []string {
	var keys []string
	for c := range reports {
		keys = append(keys, string(c))
	}
	sort.Strings(keys)
	return keys
}

// =============================================================================
// Mode
// =============================================================================

func TestMode_Known(t *testing.T) {
	for _, m := range Modes() {
		if !m.Known() {
			t.Errorf("declared mode %q not recognized", m)
		}
	}
	for _, m := range []Mode{"", "FULL", "all", "zone_concept", "comprehensive_only"} {
		if m.Known() {
			t.Errorf("mode %q should not be recognized", m)
		}
	}
}

// =============================================================================
// Assemble - category selection
// =============================================================================

// TestAssemble_ModeMatrix verifies exactly which categories each mode yields.
func TestAssemble_ModeMatrix(t *testing.T) {
	cases := []struct {
		name string
		mode Mode
		want []string
	}{
		{"full", ModeFull, []string{"comprehensive", "consciousness", "guidance", "zone_concept"}},
		{"zone_concept_only", ModeZoneConceptOnly, []string{"zone_concept"}},
		{"consciousness_only", ModeConsciousnessOnly, []string{"consciousness"}},
		{"guidance_only", ModeGuidanceOnly, []string{"guidance"}},
		{"unknown_mode", Mode("weekly"), nil},
		{"empty_mode", Mode(""), nil},
		{"case_sensitive", Mode("Full"), nil},
	}

	asm := NewAssembler(orgdata.Empty(), nil, nil)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reports := asm.Assemble(tc.mode)

			got := keysOf(reports)
			if len(got) != len(tc.want) {
				t.Fatalf("got categories %v, want %v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("got categories %v, want %v", got, tc.want)
					break
				}
			}
		})
	}
}

// =============================================================================
// Assemble - routing
// =============================================================================

// TestAssemble_EachCategoryGetsItsOwnBody verifies that under full mode each
// requested category routes to its own template body: the instruction phrase
// is the only keyword source, so nothing cross-routes.
func TestAssemble_EachCategoryGetsItsOwnBody(t *testing.T) {
	reports := NewAssembler(orgdata.Empty(), nil, nil).Assemble(ModeFull)

	pack := template.DefaultPack()
	for _, c := range template.Categories() {
		if reports[c] != pack.Render(c) {
			t.Errorf("category %q did not receive its own template body", c)
		}
	}
}

// TestAssemble_ConsciousnessOnlyScenario pins the concrete behavior for a
// minimal populated document: one key, the fixed consciousness body.
func TestAssemble_ConsciousnessOnlyScenario(t *testing.T) {
	doc := mustParse(t, `{"organizationalConsciousness": {"currentState": "Active"}}`)

	reports := NewAssembler(doc, nil, nil).Assemble(ModeConsciousnessOnly)

	if len(reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(reports))
	}
	body, ok := reports[template.Consciousness]
	if !ok {
		t.Fatal("missing consciousness report")
	}
	if body != template.DefaultPack().Render(template.Consciousness) {
		t.Error("consciousness report is not the fixed consciousness body")
	}
}

// TestAssemble_IgnoresConfigurationContent verifies bodies are identical for
// any configuration input, populated or empty: the context informs routing
// only, never the rendered text.
func TestAssemble_IgnoresConfigurationContent(t *testing.T) {
	populated := mustParse(t, `{
		"organizationalConsciousness": {"currentState": "Transcendent"},
		"professionalGuidance": {"focusAreas": ["Everything"]}
	}`)

	fromEmpty := NewAssembler(orgdata.Empty(), nil, nil).Assemble(ModeFull)
	fromPopulated := NewAssembler(populated, nil, nil).Assemble(ModeFull)

	for _, c := range template.Categories() {
		if fromEmpty[c] != fromPopulated[c] {
			t.Errorf("body for %q varies with configuration content", c)
		}
	}
}

// =============================================================================
// Prompt
// =============================================================================

// TestPrompt_ContainsKeywordAndContext verifies the prompt shape
// "<instruction>. Context: <block>" with the category keyword present.
func TestPrompt_ContainsKeywordAndContext(t *testing.T) {
	keywords := map[template.Category]string{
		template.ZoneConcept:   "zone concept",
		template.Consciousness: "consciousness",
		template.Guidance:      "guidance",
	}

	for _, c := range template.Categories() {
		prompt := Prompt(c, "CONTEXT-BLOCK")

		if !strings.Contains(prompt, ". Context: CONTEXT-BLOCK") {
			t.Errorf("prompt for %q missing context suffix: %q", c, prompt)
		}
		if kw, ok := keywords[c]; ok {
			if !strings.Contains(strings.ToLower(prompt), kw) {
				t.Errorf("prompt for %q missing keyword %q", c, kw)
			}
		}
		if template.Classify(prompt) != c && c != template.Comprehensive {
			t.Errorf("prompt for %q does not classify back to it", c)
		}
	}
}
