package mapping

import (
	"strings"

	"member-mapper/internal/analyze"
	"member-mapper/internal/common"
)

// ResolveTypeName resolves a type name like:
// - "Order" (name only)
// - "store.Order" (short)
// - "member-mapper/store.Order" (full).
//
// It returns nil if the name is unknown or matches more than one type.
func ResolveTypeName(name string, graph *analyze.TypeGraph) *analyze.TypeDescriptor {
	if graph == nil || name == "" {
		return nil
	}

	if t := graph.GetType(name); t != nil {
		return t
	}

	matches := TypeNameCandidates(name, graph)
	if !common.IsSingle(matches) {
		return nil
	}

	return graph.GetType(matches[0])
}

// TypeNameCandidates returns the sorted names of every type that name could refer to.
func TypeNameCandidates(name string, graph *analyze.TypeGraph) []string {
	if graph == nil {
		return nil
	}

	var out []string

	for _, full := range graph.Names() {
		if full == name || ShortName(full) == name || typeBaseName(full) == name {
			out = append(out, full)
			continue
		}

		// Suffix match for partial import paths like "module/store.Order".
		if strings.HasSuffix(full, "/"+name) {
			out = append(out, full)
		}
	}

	return out
}

// ShortName returns "pkg.Name" for a qualified "path/to/pkg.Name".
func ShortName(full string) string {
	lastDot := strings.LastIndex(full, ".")
	if lastDot <= 0 {
		return full
	}

	return common.PkgAlias(full[:lastDot]) + "." + full[lastDot+1:]
}

func typeBaseName(full string) string {
	return full[strings.LastIndex(full, ".")+1:]
}
