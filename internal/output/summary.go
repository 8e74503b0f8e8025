package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/regima/cycle-insights/internal/briefing"
	"github.com/regima/cycle-insights/internal/orgdata"
	"github.com/regima/cycle-insights/internal/report"
	"github.com/regima/cycle-insights/internal/template"
)

// Static summary boilerplate. Only the headline fields and the generated
// component list vary between runs.

const summaryFrameworkStatus = `
### Revolutionary Framework Status
- **Zone Concept Evolution:** Advanced four-pillar framework with AI integration (Version 2.0.0)
- **Professional Guidance:** Breakthrough capabilities with predictive optimization
- **Innovation Ecosystem:** Established with next-generation technology integration
- **Global Impact:** Advanced wisdom distribution systems operational
`

const summaryNextSteps = `
### Revolutionary Next Steps
Based on the breakthrough AI analysis, RegimA should focus on:

1. **Quantum-Level Actions**: Pioneer next-generation Zone Concept applications with molecular-level personalization
2. **Transcendent Development**: Advance consciousness evolution toward global collective intelligence leadership
3. **Revolutionary Innovation**: Establish breakthrough research ecosystems for continuous advancement
4. **Global Leadership**: Deploy worldwide wisdom distribution systems and industry transformation initiatives

### Breakthrough Capabilities Achieved
- AI-Enhanced predictive personalization protocols operational
- Collective intelligence networks established and growing
- Innovation ecosystem with continuous breakthrough research active
- Global impact orientation with advanced technology deployment successful

### Files Generated
- Individual revolutionary analysis files for each breakthrough component
- Comprehensive JSON output with advanced analytics for programmatic access
- This enhanced summary for quantum-level strategic review

For detailed breakthrough insights, refer to the individual analysis files in the outputs directory.
`

// renderSummary composes the summary artifact: headline fields restated from
// the primary document, the list of generated categories, and fixed
// next-step boilerplate.
func renderSummary(reports map[template.Category]string, mode report.Mode, doc orgdata.Document, now time.Time) string {
	org := doc.Section("organizationalConsciousness")
	cycle := doc.Section("cycleCompletion")

	var b strings.Builder

	b.WriteString("# RegimA Revolutionary AI Analysis Summary\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n", now.Format(time.RFC3339))
	fmt.Fprintf(&b, "**Analysis Type:** %s\n\n", mode)

	b.WriteString("## Breakthrough Evolution Status\n\n")
	b.WriteString("### Transcendent Organizational State\n")
	fmt.Fprintf(&b, "- **Consciousness Level:** %s\n", org.Scalar("currentState", briefing.Placeholder))
	fmt.Fprintf(&b, "- **Evolution Stage:** %s\n", org.Scalar("evolutionLevel", briefing.Placeholder))
	fmt.Fprintf(&b, "- **Cycle Status:** %s\n", cycle.Scalar("status", briefing.Placeholder))

	b.WriteString(summaryFrameworkStatus)

	b.WriteString("\n### Analysis Components Generated\n")
	for _, c := range template.Categories() {
		if _, ok := reports[c]; ok {
			fmt.Fprintf(&b, "- %s Analysis ✅\n", c.Title())
		}
	}

	b.WriteString(summaryNextSteps)

	return b.String()
}
