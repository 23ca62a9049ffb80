package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"member-mapper/internal/analyze"
	"member-mapper/internal/mapping"
)

func newInspectCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect PACKAGE...",
		Short: "Print the type model of Go packages",
		Long: `Load Go packages and print their exported structs as the types section of
a mapping file. Field accessors come from the mapper struct tag:
readonly, init, required or settable (the default); "-" skips a field.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(v)
			defer func() { _ = logger.Sync() }()

			graph, err := analyze.NewAnalyzer().LoadPackages(args...)
			if err != nil {
				return err
			}

			logger.Debug("loaded packages", zap.Strings("patterns", args), zap.Int("types", len(graph.Types)))

			data, err := mapping.Marshal(&mapping.MappingFile{
				Version: mapping.CurrentVersion,
				Types:   mapping.TypeDefs(graph),
			})
			if err != nil {
				return errors.Wrap(err, "failed to marshal types")
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
