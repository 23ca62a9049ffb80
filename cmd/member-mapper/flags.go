package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"member-mapper/internal/diagnostic"
	"member-mapper/internal/mapping"
)

const (
	outputText = "text"
	outputYAML = "yaml"

	failOnError   = "error"
	failOnWarning = "warning"
	failOnNever   = "never"
)

// ErrFindings is returned when diagnostics reach the --fail-on severity.
var ErrFindings = errors.New("mapping diagnostics reached the failure threshold")

func mustBind(v *viper.Viper, flag *pflag.Flag) {
	if err := v.BindPFlag(flag.Name, flag); err != nil {
		panic(err)
	}
}

func bindAll(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		mustBind(v, f)
	})
}

// resolutionOptions returns the options set on the command line or in the
// environment. Unset values leave the mapping file's options in effect.
func resolutionOptions(v *viper.Viper) (mapping.Options, error) {
	var opts mapping.Options

	policy := mapping.NullPolicy(v.GetString("null-policy"))
	if !policy.IsValid() {
		return opts, errors.Newf("invalid --null-policy %q: want strict or lenient", policy)
	}

	opts.NullPolicy = policy

	if v.GetBool("no-flatten") {
		off := false
		opts.AutoFlatten = &off
	}

	depth := v.GetInt("max-depth")
	if depth < 0 {
		return opts, errors.Newf("invalid --max-depth %d", depth)
	}

	opts.MaxFlattenDepth = depth

	return opts, nil
}

// failThreshold parses --fail-on. ok is false for "never".
func failThreshold(s string) (severity diagnostic.Severity, ok bool, err error) {
	if s == failOnNever {
		return diagnostic.SeverityUnset, false, nil
	}

	severity, valid := diagnostic.ParseSeverity(s)
	if !valid {
		return diagnostic.SeverityUnset, false, errors.Newf("invalid --fail-on %q: want error, warning, info or %s", s, failOnNever)
	}

	return severity, true, nil
}

func checkOutput(s string) error {
	if s != outputText && s != outputYAML {
		return errors.Newf("invalid --output %q: want %s or %s", s, outputText, outputYAML)
	}

	return nil
}
