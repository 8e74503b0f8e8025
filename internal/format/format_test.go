package format

import (
	"testing"
	"time"
)

// TestStamp_Layout verifies the filename timestamp pattern.
func TestStamp_Layout(t *testing.T) {
	instant := time.Date(2026, 3, 7, 9, 5, 42, 0, time.UTC)

	got := Stamp(instant)
	want := "20260307_090542"

	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestStamp_SecondResolution verifies that instants one second apart
// produce distinct stamps.
func TestStamp_SecondResolution(t *testing.T) {
	instant := time.Date(2026, 3, 7, 9, 5, 42, 0, time.UTC)

	first := Stamp(instant)
	second := Stamp(instant.Add(time.Second))

	if first == second {
		t.Errorf("stamps one second apart are identical: %q", first)
	}
}

// TestTitle verifies word capitalization with non-letter boundaries.
// Table-driven for extensibility with explicit case names.
func TestTitle(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"single_word", "consciousness", "Consciousness"},
		{"underscore_boundary", "zone_concept", "Zone_Concept"},
		{"camel_case_flattened", "antiInflammatory", "Antiinflammatory"},
		{"already_titled", "Guidance", "Guidance"},
		{"all_caps", "COMPREHENSIVE", "Comprehensive"},
		{"hyphen_boundary", "anti-oxidant", "Anti-Oxidant"},
		{"digit_boundary", "zone2concept", "Zone2Concept"},
		{"leading_space", " guidance", " Guidance"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Title(tc.input); got != tc.want {
				t.Errorf("Title(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
