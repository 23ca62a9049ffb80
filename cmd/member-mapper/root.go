package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"member-mapper/internal/logging"
)

// EnvPrefix prefixes the environment variables bound to flags.
const EnvPrefix = "MEMBER_MAPPER"

func newRootCmd() *cobra.Command {
	v := newViper()

	root := &cobra.Command{
		Use:   "member-mapper",
		Short: "Resolve member mappings between structured types",
		Long: `member-mapper decides, for each member of a target type, which source
member feeds it and whether it is assigned while constructing the target or
afterwards.

Examples:
  member-mapper plan -f mapping.yaml                 # Text report of every mapping
  member-mapper plan -f mapping.yaml -o yaml         # Plans as YAML
  member-mapper plan -f mapping.yaml -p ./store -p ./warehouse
  member-mapper inspect ./store                      # Type model of a Go package`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Log resolution traces")
	root.PersistentFlags().Bool("log-json", false, "Log as JSON")
	mustBind(v, root.PersistentFlags().Lookup("verbose"))
	mustBind(v, root.PersistentFlags().Lookup("log-json"))

	root.AddCommand(newPlanCmd(v))
	root.AddCommand(newInspectCmd(v))

	return root
}

// newViper returns a viper instance reading MEMBER_MAPPER_* variables.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("output", outputText)
	v.SetDefault("fail-on", failOnError)
	v.SetDefault("parallelism", 0)

	return v
}

func newLogger(v *viper.Viper) *zap.Logger {
	return logging.New(logging.Options{
		Verbose: v.GetBool("verbose"),
		JSON:    v.GetBool("log-json"),
	})
}
