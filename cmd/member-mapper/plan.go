package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"member-mapper/internal/analyze"
	"member-mapper/internal/diagnostic"
	"member-mapper/internal/mapping"
	"member-mapper/internal/plan"
)

func newPlanCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Resolve the mappings of a mapping file",
		Long: `Resolve every type mapping declared in a mapping file and report the
assignments and diagnostics of each pair.

The type model is read from the file's types section, or from Go packages when
--package is given. Flags override the file's options.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.StringP("file", "f", "", "Mapping file (required)")
	flags.StringSliceP("package", "p", nil, "Go package patterns providing the types")
	flags.String("null-policy", "", "Null handling: strict or lenient")
	flags.Bool("no-flatten", false, "Disable automatic flattening")
	flags.Int("max-depth", 0, "Maximum number of hops of a flattened source path")
	flags.StringP("output", "o", outputText, "Output format: text or yaml")
	flags.String("fail-on", failOnError, "Exit non-zero on diagnostics of this severity: error, warning, info or never")
	flags.String("suggest", "", "Write the resolved assignments as a mapping file to review")
	flags.Int("parallelism", 0, "Maximum number of mappings resolved at once (0: unbounded)")
	bindAll(v, flags)

	return cmd
}

func runPlan(cmd *cobra.Command, v *viper.Viper) error {
	logger := newLogger(v)
	defer func() { _ = logger.Sync() }()

	path := v.GetString("file")
	if path == "" {
		return errors.New("a mapping file is required (--file)")
	}

	output := v.GetString("output")
	if err := checkOutput(output); err != nil {
		return err
	}

	threshold, failOn, err := failThreshold(v.GetString("fail-on"))
	if err != nil {
		return err
	}

	opts, err := resolutionOptions(v)
	if err != nil {
		return err
	}

	mf, err := mapping.LoadFile(path)
	if err != nil {
		return err
	}

	graph, err := loadGraph(mf, v.GetStringSlice("package"))
	if err != nil {
		return err
	}

	logger.Debug("loaded mapping file",
		zap.String("file", path),
		zap.Int("types", len(graph.Types)),
		zap.Int("mappings", len(mf.Mappings)),
	)

	// Configuration problems make the plans meaningless.
	if problems := mapping.Validate(mf, graph); problems.Len() > 0 {
		writeDiagnostics(cmd.OutOrStdout(), problems.All())

		if problems.HasBlocking() {
			return errors.Newf("%s: invalid mapping file", path)
		}
	}

	resolver := plan.NewResolver(graph, mf, plan.ResolutionConfig{
		Options:     opts,
		Logger:      logger,
		Parallelism: v.GetInt("parallelism"),
	})

	results, err := resolver.ResolveFile(cmd.Context())
	if err != nil {
		return errors.Wrap(err, "resolution interrupted")
	}

	if err := writeResults(cmd, output, results); err != nil {
		return err
	}

	if suggest := v.GetString("suggest"); suggest != "" {
		suggested := plan.ExportSuggestions(results)
		suggested.Options = mf.Options
		suggested.Types = mf.Types

		if err := mapping.WriteFile(suggested, suggest); err != nil {
			return err
		}

		logger.Info("wrote suggested mapping", zap.String("file", suggest), zap.Int("mappings", len(suggested.Mappings)))
	}

	if failOn && reached(results, threshold) {
		return ErrFindings
	}

	return nil
}

// loadGraph builds the type model from Go packages when patterns are given,
// from the mapping file otherwise.
func loadGraph(mf *mapping.MappingFile, patterns []string) (*analyze.TypeGraph, error) {
	if len(patterns) == 0 {
		return mf.Graph()
	}

	graph, err := analyze.NewAnalyzer().LoadPackages(patterns...)
	if err != nil {
		return nil, err
	}

	return graph, nil
}

func writeResults(cmd *cobra.Command, output string, results []*plan.Result) error {
	if output == outputYAML {
		data, err := plan.ExportYAML(results)
		if err != nil {
			return errors.Wrap(err, "failed to marshal plans")
		}

		_, err = cmd.OutOrStdout().Write(data)

		return err
	}

	writeReport(cmd.OutOrStdout(), results)

	return nil
}

// reached reports whether any diagnostic is at least min.
func reached(results []*plan.Result, minSeverity diagnostic.Severity) bool {
	for _, r := range results {
		if len(r.Diagnostics.AtLeast(minSeverity)) > 0 {
			return true
		}
	}

	return false
}
