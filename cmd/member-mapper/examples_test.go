package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"member-mapper/internal/plan"
)

// TestExamples plans every examples/*/mapping.yaml. Example directories with
// Go sources take their types from the package.
func TestExamples(t *testing.T) {
	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join(repoRoot, "examples", "*", "mapping.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		dir := filepath.Dir(file)

		t.Run(filepath.Base(dir), func(t *testing.T) {
			args := []string{"plan", "-f", file, "-o", "yaml"}

			sources, err := filepath.Glob(filepath.Join(dir, "*.go"))
			require.NoError(t, err)

			if len(sources) > 0 {
				args = append(args, "-p", "member-mapper/examples/"+filepath.Base(dir))
			}

			out, err := execute(t, args...)
			require.NoError(t, err, out)

			var docs []plan.ResultDocument
			require.NoError(t, yaml.Unmarshal([]byte(out), &docs))
			require.NotEmpty(t, docs)

			for _, doc := range docs {
				assert.True(t, doc.Valid, doc.Mapping)
			}
		})
	}
}

func TestExamples_NestedUnits(t *testing.T) {
	out, err := execute(t, "plan", "-f", filepath.Join("..", "..", "examples", "nested", "mapping.yaml"),
		"-p", "member-mapper/examples/nested", "-o", "yaml")
	require.NoError(t, err, out)

	var docs []plan.ResultDocument
	require.NoError(t, yaml.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 2)

	order := docs[0]
	assert.Empty(t, order.Diagnostics)

	var names []string
	for _, u := range order.Units {
		names = append(names, u.Name)
	}

	const pkg = "member-mapper/examples/nested."

	assert.Equal(t, []string{
		pkg + "Order->" + pkg + "OrderView",
		pkg + "Line->" + pkg + "LineView",
		pkg + "Category->" + pkg + "CategoryView",
	}, names)

	city := order.Units[0].PostConstruction[0]
	assert.Equal(t, "CustomerAddressCity", city.Target)
	assert.Equal(t, "Customer.Address.City", city.Source)
	assert.Equal(t, "default_if_null", city.NullHandling)

	line := order.Units[1]
	require.Len(t, line.Initializer, 1)
	assert.Equal(t, "override", line.Initializer[0].Origin)
	assert.Equal(t, "cast", line.PostConstruction[0].Conversion)

	category := order.Units[2]
	assert.Equal(t, category.Name, category.Initializer[1].Unit)
	assert.Equal(t, category.Name, category.PostConstruction[0].Unit)
}

func TestExamples_InitOnlyDiagnostics(t *testing.T) {
	out, err := execute(t, "plan", "-f", filepath.Join("..", "..", "examples", "init-only", "mapping.yaml"))
	require.NoError(t, err, out)

	assert.Contains(t, out, "      NestedValue <- Nested.Value (auto, direct, throw if source.Nested.Value is null)\n")
	assert.Contains(t, out, "[Renamed->IgnoredTarget] IgnoredTarget.StringValue: [IgnoredTargetMemberExplicitlyMapped]")
	assert.Contains(t, out, "[Renamed->IgnoredTarget] Renamed.StringValue2: [SourceMemberNotMapped]")
}
