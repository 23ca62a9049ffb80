package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAccessor(t *testing.T) {
	tests := []struct {
		input    string
		expected Accessor
		ok       bool
	}{
		{"", AccessorWritable, true},
		{"settable", AccessorWritable, true},
		{"readonly", AccessorReadable, true},
		{"init", AccessorConstructionOnly, true},
		{"Required", AccessorMandatory, true},
		{"bogus", AccessorWritable, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseAccessor(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestTypeRef_ZeroLiteral(t *testing.T) {
	assert.Equal(t, `""`, TypeRef{Name: "string", Kind: TypeKindBasic}.ZeroLiteral())
	assert.Equal(t, "0", TypeRef{Name: "int64", Kind: TypeKindBasic}.ZeroLiteral())
	assert.Equal(t, "false", TypeRef{Name: "bool", Kind: TypeKindBasic}.ZeroLiteral())
	assert.Equal(t, "nil", TypeRef{Name: "[]C", Kind: TypeKindSlice}.ZeroLiteral())
	assert.Equal(t, "default", TypeRef{Name: "C", Kind: TypeKindStruct}.ZeroLiteral())
}

func TestTypeDescriptor_Key(t *testing.T) {
	a := &TypeDescriptor{Name: "A", Fields: []FieldDescriptor{{Name: "X"}, {Name: "Y"}}}
	b := &TypeDescriptor{Name: "A", Fields: []FieldDescriptor{{Name: "X"}}}

	assert.Equal(t, "A{X,Y}", a.Key())
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestFieldDescriptor_Accessors(t *testing.T) {
	assert.True(t, (&FieldDescriptor{Accessor: AccessorMandatory}).RequiresInitializer())
	assert.True(t, (&FieldDescriptor{Accessor: AccessorConstructionOnly}).RequiresInitializer())
	assert.False(t, (&FieldDescriptor{Accessor: AccessorWritable}).RequiresInitializer())
	assert.False(t, (&FieldDescriptor{Accessor: AccessorReadable}).CanWrite())
}
