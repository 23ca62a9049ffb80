package plan

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"member-mapper/internal/analyze"
	"member-mapper/internal/diagnostic"
	"member-mapper/internal/mapping"
)

func load(t *testing.T, src string) (*analyze.TypeGraph, *mapping.MappingFile) {
	t.Helper()

	mf, err := mapping.Parse([]byte(src))
	require.NoError(t, err)

	graph, err := mf.Graph()
	require.NoError(t, err)

	return graph, mf
}

// resolveFirst resolves the first mapping of the file.
func resolveFirst(t *testing.T, src string, config ResolutionConfig) *Result {
	t.Helper()

	graph, mf := load(t, src)
	require.NotEmpty(t, mf.Mappings)

	return NewResolver(graph, mf, config).Resolve(&mf.Mappings[0])
}

func kinds(res *Result) []diagnostic.Kind {
	var out []diagnostic.Kind
	for _, d := range res.Diagnostics.All() {
		out = append(out, d.Kind)
	}

	return out
}

func targets(list []ResolvedAssignment) []string {
	var out []string
	for _, a := range list {
		out = append(out, a.TargetPath.String())
	}

	return out
}

// dump renders diagnostics for failure messages.
func dump(res *Result) string {
	return spew.Sdump(res.Diagnostics.All())
}
