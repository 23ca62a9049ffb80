package analyze

import (
	"sort"
	"strings"

	"member-mapper/internal/common"
)

// TypeKind represents the kind of a declared type.
type TypeKind int

const (
	TypeKindUnknown  TypeKind = iota
	TypeKindBasic             // int, string, bool, etc.
	TypeKindStruct            // structured type with fields
	TypeKindSlice             // slice of another type
	TypeKindExternal          // external/opaque type (e.g., time.Time)
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindSlice:
		return "slice"
	case TypeKindExternal:
		return "external"
	default:
		return common.UnknownStr
	}
}

// Accessor describes how a field can be read or written.
type Accessor int

const (
	// AccessorReadable fields can only be read.
	AccessorReadable Accessor = iota
	// AccessorWritable fields can be set at any time after construction.
	AccessorWritable
	// AccessorConstructionOnly fields can only be set as part of object creation.
	AccessorConstructionOnly
	// AccessorMandatory fields must receive a value during construction.
	AccessorMandatory
)

// String returns the accessor name used in mapping files.
func (a Accessor) String() string {
	switch a {
	case AccessorReadable:
		return "readonly"
	case AccessorWritable:
		return "settable"
	case AccessorConstructionOnly:
		return "init"
	case AccessorMandatory:
		return "required"
	default:
		return common.UnknownStr
	}
}

// ParseAccessor parses an accessor name. Empty means settable.
func ParseAccessor(s string) (Accessor, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "settable", "set", "writable":
		return AccessorWritable, true
	case "readonly", "get", "readable":
		return AccessorReadable, true
	case "init", "construction-only", "constructiononly":
		return AccessorConstructionOnly, true
	case "required", "mandatory":
		return AccessorMandatory, true
	default:
		return AccessorWritable, false
	}
}

// TypeRef is the declared type of a field.
type TypeRef struct {
	Name string   // e.g. "string", "C", "[]C", "store.Order"
	Kind TypeKind // kind of the declared type
	Elem *TypeRef // element type for slices
}

// String returns the declared type name.
func (r TypeRef) String() string {
	if r.Name != "" {
		return r.Name
	}

	if r.Kind == TypeKindSlice && r.Elem != nil {
		return "[]" + r.Elem.String()
	}

	return common.UnknownStr
}

// IsStruct returns true if the ref points at a structured type.
func (r TypeRef) IsStruct() bool {
	return r.Kind == TypeKindStruct
}

// IsTextual returns true for string-like basic types.
func (r TypeRef) IsTextual() bool {
	return r.Kind == TypeKindBasic && r.Name == "string"
}

// ZeroLiteral returns the literal substituted for a missing value of this type.
func (r TypeRef) ZeroLiteral() string {
	switch r.Kind {
	case TypeKindBasic:
		switch {
		case r.IsTextual():
			return `""`
		case r.Name == "bool":
			return "false"
		case isNumeric(r.Name):
			return "0"
		}
	case TypeKindSlice:
		return "nil"
	}

	return "default"
}

var basicTypes = map[string]bool{
	"string": true, "bool": true, "byte": true, "rune": true,
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true, "uintptr": true,
	"float32": true, "float64": true, "complex64": true, "complex128": true,
}

// IsBasicName returns true if name is a predeclared basic type.
func IsBasicName(name string) bool {
	return basicTypes[name]
}

func isNumeric(name string) bool {
	return basicTypes[name] && name != "string" && name != "bool"
}

// FieldDescriptor describes a single member of a type.
// It is immutable once the owning TypeDescriptor is built.
type FieldDescriptor struct {
	Name     string
	Type     TypeRef
	Nullable bool
	Accessor Accessor
}

// CanWrite returns true if the field can receive a value at all.
func (f *FieldDescriptor) CanWrite() bool {
	return f.Accessor != AccessorReadable
}

// RequiresInitializer returns true if the field can only be set while constructing.
func (f *FieldDescriptor) RequiresInitializer() bool {
	return f.Accessor == AccessorConstructionOnly || f.Accessor == AccessorMandatory
}

// TypeDescriptor describes a structured type. Field order is declaration order.
type TypeDescriptor struct {
	Name   string
	Fields []FieldDescriptor
}

// Field returns the field with the given name, or nil.
func (t *TypeDescriptor) Field(name string) *FieldDescriptor {
	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return &t.Fields[i]
		}
	}

	return nil
}

// Key returns the structural identity of the type: its name and field set.
func (t *TypeDescriptor) Key() string {
	names := make([]string, len(t.Fields))
	for i := range t.Fields {
		names[i] = t.Fields[i].Name
	}

	return t.Name + "{" + strings.Join(names, ",") + "}"
}

// TypeGraph holds all known structured types by name.
type TypeGraph struct {
	Types map[string]*TypeDescriptor
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types: make(map[string]*TypeDescriptor),
	}
}

// Add registers a type descriptor.
func (g *TypeGraph) Add(t *TypeDescriptor) {
	g.Types[t.Name] = t
}

// GetType returns the descriptor for the given name, or nil if not found.
func (g *TypeGraph) GetType(name string) *TypeDescriptor {
	if g == nil {
		return nil
	}

	return g.Types[name]
}

// Struct returns the descriptor behind a struct TypeRef, or nil.
func (g *TypeGraph) Struct(ref TypeRef) *TypeDescriptor {
	if ref.Kind != TypeKindStruct {
		return nil
	}

	return g.GetType(ref.Name)
}

// ElemStruct returns the element descriptor of a slice of structs, or nil.
func (g *TypeGraph) ElemStruct(ref TypeRef) *TypeDescriptor {
	if ref.Kind != TypeKindSlice || ref.Elem == nil {
		return nil
	}

	return g.Struct(*ref.Elem)
}

// Names returns the sorted type names in the graph.
func (g *TypeGraph) Names() []string {
	names := make([]string, 0, len(g.Types))
	for name := range g.Types {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
