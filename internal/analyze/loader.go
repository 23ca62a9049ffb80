package analyze

import (
	"go/types"
	"reflect"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedImports

// TagKey is the struct tag that selects a field's accessor.
const TagKey = "mapper"

// Analyzer loads Go packages and builds a type graph of their structs.
type Analyzer struct {
	graph *TypeGraph
	seen  map[*types.Named]bool // named structs already registered (handles recursive types)
	errs  []error               // invalid struct tags
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph: NewTypeGraph(),
		seen:  make(map[*types.Named]bool),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./store", "member-mapper/warehouse").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load packages")
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Newf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	if len(a.errs) > 0 {
		return nil, errors.Newf("invalid struct tags: %v", a.errs)
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage registers every exported named struct of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		if _, isStruct := named.Underlying().(*types.Struct); isStruct {
			a.registerStruct(named)
		}
	}
}

// registerStruct adds a named struct to the graph. It is registered before its
// fields are analyzed so that self-referential types terminate.
func (a *Analyzer) registerStruct(named *types.Named) string {
	name := QualifiedName(named.Obj())
	if a.seen[named] {
		return name
	}

	a.seen[named] = true

	desc := &TypeDescriptor{Name: name}
	a.graph.Add(desc)

	st := named.Underlying().(*types.Struct)
	for i := range st.NumFields() {
		field := st.Field(i)
		if !field.Exported() {
			continue
		}

		tag := reflect.StructTag(st.Tag(i)).Get(TagKey)
		if tag == "-" {
			continue
		}

		accessor, ok := ParseAccessor(tag)
		if !ok {
			a.errs = append(a.errs, errors.Newf("%s.%s: unknown %s tag %q", name, field.Name(), TagKey, tag))
			continue
		}

		ref, nullable := a.analyzeType(field.Type())

		desc.Fields = append(desc.Fields, FieldDescriptor{
			Name:     field.Name(),
			Type:     ref,
			Nullable: nullable,
			Accessor: accessor,
		})
	}

	return name
}

// analyzeType converts a go/types type into a TypeRef. Pointers are unwrapped
// and reported as nullable.
func (a *Analyzer) analyzeType(t types.Type) (TypeRef, bool) {
	nullable := false
	if ptr, ok := t.(*types.Pointer); ok {
		nullable = true
		t = ptr.Elem()
	}

	switch tt := t.(type) {
	case *types.Basic:
		return TypeRef{Name: tt.Name(), Kind: TypeKindBasic}, nullable

	case *types.Slice:
		elem, _ := a.analyzeType(tt.Elem())
		return TypeRef{Name: "[]" + elem.String(), Kind: TypeKindSlice, Elem: &elem}, true

	case *types.Named:
		if _, isStruct := tt.Underlying().(*types.Struct); isStruct && tt.Obj().Pkg() != nil {
			return TypeRef{Name: a.registerStruct(tt), Kind: TypeKindStruct}, nullable
		}

		return TypeRef{Name: QualifiedName(tt.Obj()), Kind: TypeKindExternal}, nullable

	default:
		return TypeRef{Name: t.String(), Kind: TypeKindUnknown}, nullable
	}
}

// QualifiedName returns "pkgpath.Name" for a type name object.
func QualifiedName(obj *types.TypeName) string {
	if obj.Pkg() == nil {
		return obj.Name()
	}

	return obj.Pkg().Path() + "." + obj.Name()
}
