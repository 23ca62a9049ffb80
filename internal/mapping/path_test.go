package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		input    string
		segments []string
		wantErr  bool
	}{
		{"Name", []string{"Name"}, false},
		{"Nested.Value", []string{"Nested", "Value"}, false},
		{"A.B.C", []string{"A", "B", "C"}, false},
		{"_private", []string{"_private"}, false},
		{"", nil, true},
		{"A..B", nil, true},
		{"Items[]", nil, true},
		{"1Bad", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePath(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.segments, got.Segments)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestFieldPath_Helpers(t *testing.T) {
	p := NewFieldPath("Nested")
	assert.Equal(t, "Nested", p.Root())
	assert.False(t, p.IsMember())

	child := p.Child("Value")
	assert.Equal(t, "Nested.Value", child.String())
	assert.True(t, child.IsMember())
	assert.Equal(t, 2, child.Len())
	assert.Equal(t, 1, p.Len(), "Child does not modify the parent")

	assert.Equal(t, "", FieldPath{}.Root())
}
