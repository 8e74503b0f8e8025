// Package report assembles the per-category report set for one run: it builds
// a routing prompt per requested category, classifies it, and renders the
// matching template body.
package report

import (
	"go.uber.org/zap"

	"github.com/regima/cycle-insights/internal/briefing"
	"github.com/regima/cycle-insights/internal/orgdata"
	"github.com/regima/cycle-insights/internal/template"
)

// instructions holds the fixed per-category instruction phrases.
// Each phrase contains its category's distinguishing keyword, which is what
// makes prompt routing deterministic.
var instructions = map[template.Category]string{
	template.ZoneConcept:   "Analyze the Zone Concept framework and provide strategic recommendations",
	template.Consciousness: "Analyze the organizational consciousness evolution and provide development insights",
	template.Guidance:      "Analyze the professional guidance framework and provide enhancement recommendations",
	template.Comprehensive: "Provide a comprehensive analysis of the RegimA organizational learning cycle",
}

// Prompt builds the ephemeral routing prompt for a category. The context
// block is consumed only for classification and never persisted.
func Prompt(c template.Category, contextBlock string) string {
	return instructions[c] + ". Context: " + contextBlock
}

// Assembler drives context construction and template routing across the
// requested category set. It holds no mutable state; Assemble may be called
// repeatedly.
type Assembler struct {
	doc  orgdata.Document
	pack *template.Pack
	log  *zap.Logger
}

// NewAssembler creates an assembler over the primary document using the given
// template pack. A nil logger disables logging.
func NewAssembler(doc orgdata.Document, pack *template.Pack, log *zap.Logger) *Assembler {
	if pack == nil {
		pack = template.DefaultPack()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Assembler{doc: doc, pack: pack, log: log}
}

// Assemble produces the report map for the mode: category name to rendered
// body, in canonical category order. An unknown mode yields an empty map.
//
// The context block is rebuilt for every category rather than cached; each
// category's rendering stays independent of the others.
func (a *Assembler) Assemble(mode Mode) map[template.Category]string {
	reports := make(map[template.Category]string)

	if !mode.Known() {
		a.log.Warn("unknown analysis mode, producing no reports",
			zap.String("mode", mode.String()))
		return reports
	}

	a.log.Info("assembling reports",
		zap.String("mode", mode.String()),
		zap.String("pack", a.pack.Name()))

	for _, c := range template.Categories() {
		if !mode.Includes(c) {
			continue
		}

		prompt := Prompt(c, briefing.Build(a.doc))
		routed := template.Classify(prompt)
		reports[c] = a.pack.Render(routed)

		a.log.Info("report assembled",
			zap.String("category", string(c)),
			zap.String("routed", string(routed)),
			zap.Int("chars", len(reports[c])))
	}

	return reports
}
