package report

import "github.com/regima/cycle-insights/internal/template"

// Mode selects which subset of the four categories a run produces.
// It arrives from outside the pipeline (flag or ANALYSIS_TYPE), so any string
// is a Mode; an unrecognized value simply includes no categories. That silent
// empty result is specified behavior, not an error.
type Mode string

// Known analysis modes.
const (
	ModeFull              Mode = "full"
	ModeZoneConceptOnly   Mode = "zone_concept_only"
	ModeConsciousnessOnly Mode = "consciousness_only"
	ModeGuidanceOnly      Mode = "guidance_only"
)

// DefaultMode is used when no mode is supplied.
const DefaultMode = ModeFull

// Modes returns the known modes in stable order, for CLI help text.
func Modes() []Mode {
	return []Mode{ModeFull, ModeZoneConceptOnly, ModeConsciousnessOnly, ModeGuidanceOnly}
}

// Known reports whether m is one of the declared modes.
func (m Mode) Known() bool {
	switch m {
	case ModeFull, ModeZoneConceptOnly, ModeConsciousnessOnly, ModeGuidanceOnly:
		return true
	}
	return false
}

// Includes reports whether the category is produced under this mode.
// Full includes all four; each *_only mode includes exactly its category
// (comprehensive only exists under full); unknown modes include nothing.
func (m Mode) Includes(c template.Category) bool {
	switch m {
	case ModeFull:
		return true
	case ModeZoneConceptOnly:
		return c == template.ZoneConcept
	case ModeConsciousnessOnly:
		return c == template.Consciousness
	case ModeGuidanceOnly:
		return c == template.Guidance
	}
	return false
}

// String returns the mode selector string.
func (m Mode) String() string {
	return string(m)
}
