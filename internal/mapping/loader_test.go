package mapping

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"member-mapper/internal/analyze"
)

const sampleYAML = `
version: "1"
options:
  null_policy: lenient
  max_flatten_depth: 2
types:
  - name: A
    fields:
      - {name: Nested, type: "*C"}
      - {name: StringValue2, type: string}
      - {name: Items, type: "[]C"}
  - name: B
    fields:
      - {name: NestedValue, type: string, accessor: init}
      - {name: Id, type: int, accessor: required}
      - {name: Created, type: time.Time, accessor: readonly}
  - name: C
    fields:
      - {name: Value, type: string, nullable: true}
mappings:
  - source: A
    target: B
    121:
      Nested.Value: NestedValue
      StringValue2: Id
    overrides:
      - {source: Nested.Value, target: NestedValue}
    ignore: Id
    ignore_sources: [StringValue2]
  - source: C
    target: C
    mode: existing
`

func TestParse(t *testing.T) {
	mf, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "1", mf.Version)
	assert.Equal(t, NullPolicyLenient, mf.Options.NullPolicy)
	assert.Nil(t, mf.Options.AutoFlatten)
	assert.Equal(t, 2, mf.Options.MaxFlattenDepth)
	require.Len(t, mf.Types, 3)
	require.Len(t, mf.Mappings, 2)

	tm := mf.Mappings[0]
	assert.Equal(t, ModeNew, tm.Mode)
	assert.Nil(t, tm.OneToOne, "121 is folded into overrides")
	assert.Equal(t, []PathOverride{
		{Source: "Nested.Value", Target: "NestedValue"},
		{Source: "StringValue2", Target: "Id"},
		{Source: "Nested.Value", Target: "NestedValue"},
	}, tm.Overrides)
	assert.Equal(t, StringOrArray{"Id"}, tm.Ignore)
	assert.True(t, tm.IsIgnored("Id"))
	assert.Equal(t, StringOrArray{"StringValue2"}, tm.IgnoreSources)

	assert.Equal(t, ModeExisting, mf.Mappings[1].Mode)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("mappings: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse mapping YAML")

	_, err = Parse([]byte("mappings:\n  - source: A\n    target: B\n    ignore: {a: b}\n"))
	require.Error(t, err)
}

func TestMappingFile_Graph(t *testing.T) {
	mf, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	graph, err := mf.Graph()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, graph.Names())

	a := graph.GetType("A")
	nested := a.Field("Nested")
	require.NotNil(t, nested)
	assert.True(t, nested.Nullable)
	assert.Equal(t, analyze.TypeKindStruct, nested.Type.Kind)
	assert.Same(t, graph.GetType("C"), graph.Struct(nested.Type))

	items := a.Field("Items")
	assert.Equal(t, analyze.TypeKindSlice, items.Type.Kind)
	assert.Equal(t, "[]C", items.Type.Name)
	assert.Same(t, graph.GetType("C"), graph.ElemStruct(items.Type))

	b := graph.GetType("B")
	assert.Equal(t, analyze.AccessorConstructionOnly, b.Field("NestedValue").Accessor)
	assert.Equal(t, analyze.AccessorMandatory, b.Field("Id").Accessor)
	assert.Equal(t, analyze.AccessorReadable, b.Field("Created").Accessor)
	assert.Equal(t, analyze.TypeKindExternal, b.Field("Created").Type.Kind)

	assert.True(t, graph.GetType("C").Field("Value").Nullable)
}

func TestMappingFile_GraphErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "duplicate type",
			yaml: "types:\n  - name: A\n  - name: A\n",
			want: `type "A" declared twice`,
		},
		{
			name: "duplicate field",
			yaml: "types:\n  - name: A\n    fields:\n      - {name: X, type: int}\n      - {name: X, type: int}\n",
			want: `field "X" declared twice`,
		},
		{
			name: "bad accessor",
			yaml: "types:\n  - name: A\n    fields:\n      - {name: X, type: int, accessor: sometimes}\n",
			want: `unknown accessor "sometimes"`,
		},
		{
			name: "missing type",
			yaml: "types:\n  - name: A\n    fields:\n      - {name: X}\n",
			want: "empty type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mf, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			_, err = mf.Graph()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestWriteFile_RoundTrip(t *testing.T) {
	mf, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "mapping.yaml")
	require.NoError(t, WriteFile(mf, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, mf.Mappings[0].Overrides, loaded.Mappings[0].Overrides)
	assert.Equal(t, mf.Types, loaded.Types)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read mapping file")
}

func TestOptions_Defaults(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, NullPolicyStrict, opts.NullPolicy)
	assert.True(t, opts.Flatten())
	assert.Equal(t, DefaultMaxFlattenDepth, opts.MaxFlattenDepth)
	assert.False(t, opts.Lenient())

	off := false
	merged := opts.Override(Options{AutoFlatten: &off, NullPolicy: NullPolicyLenient})
	assert.False(t, merged.Flatten())
	assert.True(t, merged.Lenient())
	assert.Equal(t, DefaultMaxFlattenDepth, merged.MaxFlattenDepth)
	assert.True(t, opts.Flatten(), "override does not alias the receiver")
}

func TestMappingFile_FindMapping(t *testing.T) {
	mf, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	graph, err := mf.Graph()
	require.NoError(t, err)

	tm := mf.FindMapping("C", "C", graph)
	require.NotNil(t, tm)
	assert.Equal(t, ModeExisting, tm.Mode)
	assert.Nil(t, mf.FindMapping("B", "A", graph))
}
