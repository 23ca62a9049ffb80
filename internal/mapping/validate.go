package mapping

import (
	"fmt"
	"strings"

	"member-mapper/internal/analyze"
	"member-mapper/internal/diagnostic"
)

// Validate checks a mapping definition against the given type graph.
// This is a structural validation step only: it checks names, paths and
// option values. Field level problems are reported during resolution.
func Validate(mf *MappingFile, graph *analyze.TypeGraph) *diagnostic.Collector {
	res := &diagnostic.Collector{}
	if mf == nil {
		invalid(res, "", "", "mapping file is nil")
		return res
	}

	if graph == nil {
		invalid(res, "", "", "type graph is nil")
		return res
	}

	if mf.Version != "" && mf.Version != CurrentVersion {
		invalid(res, "", "version", fmt.Sprintf("unsupported mapping version %q", mf.Version))
	}

	validateOptions(res, mf.Options)

	for i := range mf.Mappings {
		validateTypeMapping(res, &mf.Mappings[i], graph)
	}

	return res
}

func validateOptions(res *diagnostic.Collector, opts Options) {
	if !opts.NullPolicy.IsValid() {
		invalid(res, "", "null_policy", fmt.Sprintf("unknown null policy %q", opts.NullPolicy))
	}

	if opts.MaxFlattenDepth < 0 {
		invalid(res, "", "max_flatten_depth", fmt.Sprintf("max flatten depth must not be negative, got %d", opts.MaxFlattenDepth))
	}
}

func validateTypeMapping(res *diagnostic.Collector, tm *TypeMapping, graph *analyze.TypeGraph) {
	pair := tm.Name()

	if !tm.Mode.IsValid() {
		invalid(res, pair, "mode", fmt.Sprintf("unknown mapping mode %q", tm.Mode))
	}

	validateTypeName(res, pair, "source", tm.Source, graph)
	validateTypeName(res, pair, "target", tm.Target, graph)

	for _, o := range tm.Overrides {
		if _, err := ParsePath(o.Source); err != nil {
			invalid(res, pair, o.Source, fmt.Sprintf("invalid source path in override %s: %v", o, err))
		}

		if _, err := ParsePath(o.Target); err != nil {
			invalid(res, pair, o.Target, fmt.Sprintf("invalid target path in override %s: %v", o, err))
		}
	}

	for _, name := range tm.Ignore {
		if !isValidIdent(name) {
			invalid(res, pair, name, fmt.Sprintf("invalid ignored target member %q", name))
		}
	}

	for _, name := range tm.IgnoreSources {
		if !isValidIdent(name) {
			invalid(res, pair, name, fmt.Sprintf("invalid ignored source member %q", name))
		}
	}
}

func validateTypeName(res *diagnostic.Collector, pair, role, name string, graph *analyze.TypeGraph) {
	if name == "" {
		invalid(res, pair, role, role+" type is empty")
		return
	}

	if graph.GetType(name) != nil {
		return
	}

	candidates := TypeNameCandidates(name, graph)
	switch len(candidates) {
	case 0:
		invalid(res, pair, role, fmt.Sprintf("%s type %q not found", role, name))
	case 1:
	default:
		res.Report(diagnostic.KindInvalidConfiguration, pair, "", role,
			fmt.Sprintf("%s type %q is ambiguous (%s)", role, name, strings.Join(candidates, ", ")),
			candidates...)
	}
}

func invalid(res *diagnostic.Collector, pair, field, msg string) {
	res.Report(diagnostic.KindInvalidConfiguration, pair, "", field, msg)
}
