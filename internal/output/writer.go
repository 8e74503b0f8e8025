// Package output persists an assembled report set as files: one markdown
// artifact per category, a summary markdown, and a consolidated JSON
// snapshot, all stamped with a single run timestamp.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/regima/cycle-insights/internal/format"
	"github.com/regima/cycle-insights/internal/orgdata"
	"github.com/regima/cycle-insights/internal/report"
	"github.com/regima/cycle-insights/internal/template"
)

// SummaryFileName is the one artifact overwritten on every run; everything
// else carries the run stamp and accumulates.
const SummaryFileName = "ai_insights_summary.md"

// ErrArtifactExists indicates a stamped artifact for this run already exists,
// which happens when two runs start within the same second.
var ErrArtifactExists = errors.New("artifact already exists")

// Writer persists report sets into a target directory.
type Writer struct {
	dir   string
	now   func() time.Time
	runID func() string
	log   *zap.Logger
}

// Option configures a Writer.
type Option func(*Writer)

// WithNow sets the clock used to capture the run timestamp.
func WithNow(fn func() time.Time) Option {
	return func(w *Writer) {
		w.now = fn
	}
}

// WithRunID sets the run identifier generator.
func WithRunID(fn func() string) Option {
	return func(w *Writer) {
		w.runID = fn
	}
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(w *Writer) {
		w.log = log
	}
}

// NewWriter creates a writer targeting dir, which must already exist.
func NewWriter(dir string, opts ...Option) *Writer {
	w := &Writer{
		dir:   dir,
		now:   time.Now,
		runID: uuid.NewString,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Manifest describes the artifacts of one persisted run.
type Manifest struct {
	RunID        string
	Timestamp    time.Time
	Stamp        string
	ReportPaths  []string
	SummaryPath  string
	SnapshotPath string
}

// snapshot is the consolidated JSON artifact for programmatic access.
type snapshot struct {
	Timestamp          string             `json:"timestamp"`
	RunID              string             `json:"run_id"`
	AnalysisType       string             `json:"analysis_type"`
	OrganizationalData organizationalData `json:"organizational_data"`
	Analyses           map[string]string  `json:"ai_analyses"`
}

// organizationalData carries the snapshot's configuration slices.
// Absent sections serialize as empty objects.
type organizationalData struct {
	ConsciousnessState orgdata.Document `json:"consciousness_state"`
	CycleStatus        orgdata.Document `json:"cycle_status"`
	ZoneFramework      orgdata.Document `json:"zone_framework"`
}

// Persist writes all artifacts for one run. The run timestamp is captured
// once at entry and shared by every filename and every embedded "Generated"
// field. Storage errors propagate; already-written artifacts of the same run
// are not rolled back.
func (w *Writer) Persist(reports map[template.Category]string, mode report.Mode, doc orgdata.Document) (*Manifest, error) {
	now := w.now()
	m := &Manifest{
		RunID:     w.runID(),
		Timestamp: now,
		Stamp:     format.Stamp(now),
	}

	// Per-category markdown, in canonical order.
	for _, c := range template.Categories() {
		body, ok := reports[c]
		if !ok {
			continue
		}

		name := fmt.Sprintf("regima_%s_analysis_%s.md", c, m.Stamp)
		path := filepath.Join(w.dir, name)
		content := reportHeader(c, mode, now) + body

		if err := writeNew(path, content); err != nil {
			return nil, err
		}
		m.ReportPaths = append(m.ReportPaths, path)

		w.log.Info("analysis written",
			zap.String("category", string(c)),
			zap.String("file", name))
	}

	// Summary: the single artifact overwritten unconditionally every run.
	m.SummaryPath = filepath.Join(w.dir, SummaryFileName)
	summary := renderSummary(reports, mode, doc, now)
	if err := os.WriteFile(m.SummaryPath, []byte(summary), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write summary: %w", err)
	}
	w.log.Info("summary written", zap.String("file", SummaryFileName))

	// Consolidated JSON snapshot.
	snap := snapshot{
		Timestamp:    now.Format(time.RFC3339),
		RunID:        m.RunID,
		AnalysisType: mode.String(),
		OrganizationalData: organizationalData{
			ConsciousnessState: doc.Section("organizationalConsciousness"),
			CycleStatus:        doc.Section("cycleCompletion"),
			ZoneFramework:      doc.Section("zoneConceptFramework"),
		},
		Analyses: analysesByName(reports),
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	snapshotName := fmt.Sprintf("regima_ai_analysis_%s.json", m.Stamp)
	m.SnapshotPath = filepath.Join(w.dir, snapshotName)
	if err := writeNew(m.SnapshotPath, string(data)+"\n"); err != nil {
		return nil, err
	}
	w.log.Info("snapshot written",
		zap.String("file", snapshotName),
		zap.String("run_id", m.RunID))

	return m, nil
}

// reportHeader renders the per-category artifact header.
func reportHeader(c template.Category, mode report.Mode, now time.Time) string {
	return fmt.Sprintf("# RegimA %s Analysis\nGenerated: %s\nAnalysis Type: %s\n\n",
		c.Title(), now.Format(time.RFC3339), mode)
}

// analysesByName converts the report map to plain string keys for encoding.
func analysesByName(reports map[template.Category]string) map[string]string {
	out := make(map[string]string, len(reports))
	for c, body := range reports {
		out[string(c)] = body
	}
	return out
}

// writeNew writes content to a path that must not exist yet.
// O_EXCL atomically checks existence and creates the file; on write failure
// the partial file is removed.
func writeNew(path, content string) error {
	// #nosec G302 G304 -- artifact under the configured output directory
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrArtifactExists, path)
		}
		return fmt.Errorf("cannot create artifact: %w", err)
	}

	writeErr := func() error {
		defer func() { _ = f.Close() }()
		if _, err := f.WriteString(content); err != nil {
			return fmt.Errorf("failed to write artifact %s: %w", filepath.Base(path), err)
		}
		return nil
	}()

	if writeErr != nil {
		_ = os.Remove(path)
		return writeErr
	}

	return nil
}
