package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/regima/cycle-insights/internal/orgdata"
	"github.com/regima/cycle-insights/internal/output"
	"github.com/regima/cycle-insights/internal/report"
	"github.com/regima/cycle-insights/internal/template"
)

// EnvAnalysisType is the environment fallback for the analysis mode.
const EnvAnalysisType = "ANALYSIS_TYPE"

// generateOptions holds resolved options for the generate command.
type generateOptions struct {
	mode      report.Mode
	base      string
	outputDir string
	pack      string
}

// GenerateCmd creates the generate command (run the full report pipeline).
// The env parameter provides injectable dependencies for testing.
func GenerateCmd(env *Env) *cobra.Command {
	var (
		mode      string
		base      string
		outputDir string
		pack      string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate analysis reports from the organizational cycle data",
		Long: `Generate analysis reports from the organizational learning cycle data.

Reads regcyc.json and cycleCompletion.json from the base directory, assembles
one report per requested category, and writes markdown artifacts plus a JSON
snapshot into the output directory. Missing or malformed documents are
replaced by empty defaults so a run always produces output.

The analysis mode selects the categories: full produces all four, the *_only
modes produce one each.`,
		Example: `  cycle-insights generate
  cycle-insights generate -m consciousness_only
  cycle-insights generate -b ./data -o ./data/outputs
  ANALYSIS_TYPE=guidance_only cycle-insights generate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := resolveGenerateOptions(env, mode, base, outputDir, pack)
			return runGenerate(env, opts)
		},
	}

	modes := make([]string, 0, len(report.Modes()))
	for _, m := range report.Modes() {
		modes = append(modes, m.String())
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "",
		fmt.Sprintf("Analysis mode: %s (default: $%s or %s)",
			strings.Join(modes, ", "), EnvAnalysisType, report.DefaultMode))
	cmd.Flags().StringVarP(&base, "base", "b", "..",
		"Base directory containing the configuration documents")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "",
		"Output directory for generated artifacts (default: <base>/outputs)")
	cmd.Flags().StringVar(&pack, "pack", template.Standard,
		fmt.Sprintf("Template pack: %s", strings.Join(template.PackNames(), ", ")))

	return cmd
}

// resolveGenerateOptions applies defaults at the CLI boundary.
// Mode precedence: flag, then ANALYSIS_TYPE, then full. An unrecognized mode
// is kept as-is — it yields an empty report set downstream, not an error.
func resolveGenerateOptions(env *Env, mode, base, outputDir, pack string) generateOptions {
	if mode == "" {
		mode = env.Getenv(EnvAnalysisType)
	}
	if mode == "" {
		mode = report.DefaultMode.String()
	}
	if outputDir == "" {
		outputDir = filepath.Join(base, "outputs")
	}
	return generateOptions{
		mode:      report.Mode(mode),
		base:      base,
		outputDir: outputDir,
		pack:      pack,
	}
}

// runGenerate executes the pipeline with resolved options.
func runGenerate(env *Env, opts generateOptions) error {
	runID := env.RunID()
	log := env.Logger.With(zap.String("run_id", runID))

	log.Info("starting analysis run",
		zap.String("mode", opts.mode.String()),
		zap.String("base", opts.base),
		zap.String("output_dir", opts.outputDir))

	// === VALIDATION (fail-fast) ===

	pack, err := template.SelectPack(opts.pack)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
		return fmt.Errorf("cannot create output directory: %w", err)
	}

	// === LOAD DOCUMENTS (fail-soft) ===

	loader := env.Documents.NewLoader(opts.base, log)

	primary, err := loader.Load(orgdata.DocPrimary)
	if err != nil {
		log.Error("primary document unavailable, using empty defaults", zap.Error(err))
		primary = orgdata.Empty()
	}

	completion, err := loader.Load(orgdata.DocCompletion)
	if err != nil {
		log.Error("completion document unavailable, using empty defaults", zap.Error(err))
		completion = orgdata.Empty()
	}
	log.Debug("completion document status", zap.Bool("empty", completion.IsEmpty()))

	// === ASSEMBLE ===

	fmt.Fprintf(env.Stderr, "Generating %s analysis...\n", opts.mode)

	reports := report.NewAssembler(primary, pack, log).Assemble(opts.mode)

	// === PERSIST ===

	writer := output.NewWriter(opts.outputDir,
		output.WithNow(env.Now),
		output.WithRunID(func() string { return runID }),
		output.WithLogger(log),
	)

	manifest, err := writer.Persist(reports, opts.mode, primary)
	if err != nil {
		return err
	}

	log.Info("analysis run completed",
		zap.Int("reports", len(manifest.ReportPaths)),
		zap.String("stamp", manifest.Stamp))

	fmt.Fprintf(env.Stderr, "Done: %d report(s), summary, and snapshot in %s\n",
		len(manifest.ReportPaths), opts.outputDir)
	return nil
}
