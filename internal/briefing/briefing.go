// Package briefing renders the textual context block that prefixes every
// routing prompt. The block is a pure projection of the primary document and
// is rebuilt for each category, which keeps category rendering independent
// and stateless.
package briefing

import (
	"fmt"
	"strings"

	"github.com/regima/cycle-insights/internal/format"
	"github.com/regima/cycle-insights/internal/orgdata"
)

// Placeholder substitutes any absent headline value.
const Placeholder = "N/A"

// Build renders the context block for doc in fixed section order:
// organizational headline fields, zone framework core elements (in document
// order), focus areas, and cycle insights. Empty collections render their
// heading with no bullets rather than dropping the section.
//
// The section labels deliberately avoid the router's category keywords:
// routing must be decided by the instruction phrase of the prompt, not by
// boilerplate headings repeated in every prompt.
func Build(doc orgdata.Document) string {
	var b strings.Builder

	org := doc.Section("organizationalConsciousness")
	cycle := doc.Section("cycleCompletion")

	b.WriteString("# RegimA Organizational Learning Cycle Context\n\n")

	b.WriteString("## Current Organizational State\n")
	fmt.Fprintf(&b, "- **Current State**: %s\n", org.Scalar("currentState", Placeholder))
	fmt.Fprintf(&b, "- **Evolution Level**: %s\n", org.Scalar("evolutionLevel", Placeholder))
	fmt.Fprintf(&b, "- **Cycle Status**: %s\n", cycle.Scalar("status", Placeholder))

	b.WriteString("\n## Zone Framework\n### Core Elements:\n")
	for _, e := range doc.Section("zoneConceptFramework", "coreElements").Entries() {
		fmt.Fprintf(&b, "\n**%s**:\n", format.Title(e.Key))
		fmt.Fprintf(&b, "- Relevance: %s/10\n", e.Doc.Scalar("relevance", Placeholder))
		fmt.Fprintf(&b, "- Focus: %s\n", e.Doc.Scalar("focus", Placeholder))
		fmt.Fprintf(&b, "- Key Technologies: %s\n", strings.Join(e.Doc.Strings("keyTechnologies"), ", "))
	}

	b.WriteString("\n## Focus Areas:\n")
	for _, area := range doc.Section("professionalGuidance").Strings("focusAreas") {
		fmt.Fprintf(&b, "- %s\n", area)
	}

	b.WriteString("\n## Current Cycle Insights:\n")
	for _, insight := range cycle.Strings("insights") {
		fmt.Fprintf(&b, "- %s\n", insight)
	}

	return b.String()
}
