package mapping

import (
	"strings"

	"github.com/cockroachdb/errors"

	"member-mapper/internal/analyze"
)

// Graph builds the structural type model declared in the file.
func (mf *MappingFile) Graph() (*analyze.TypeGraph, error) {
	graph := analyze.NewTypeGraph()
	declared := make(map[string]bool, len(mf.Types))

	for _, td := range mf.Types {
		if td.Name == "" {
			return nil, errors.New("type declaration without a name")
		}

		if declared[td.Name] {
			return nil, errors.Newf("type %q declared twice", td.Name)
		}

		declared[td.Name] = true
	}

	for _, td := range mf.Types {
		desc := &analyze.TypeDescriptor{Name: td.Name}

		for _, fd := range td.Fields {
			field, err := fd.descriptor(declared)
			if err != nil {
				return nil, errors.Wrapf(err, "type %s", td.Name)
			}

			if desc.Field(field.Name) != nil {
				return nil, errors.Newf("type %s: field %q declared twice", td.Name, field.Name)
			}

			desc.Fields = append(desc.Fields, field)
		}

		graph.Add(desc)
	}

	return graph, nil
}

func (fd FieldDef) descriptor(declared map[string]bool) (analyze.FieldDescriptor, error) {
	if fd.Name == "" {
		return analyze.FieldDescriptor{}, errors.New("field without a name")
	}

	accessor, ok := analyze.ParseAccessor(fd.Accessor)
	if !ok {
		return analyze.FieldDescriptor{}, errors.Newf("field %s: unknown accessor %q", fd.Name, fd.Accessor)
	}

	ref, nullable, err := ParseTypeRef(fd.Type, declared)
	if err != nil {
		return analyze.FieldDescriptor{}, errors.Wrapf(err, "field %s", fd.Name)
	}

	return analyze.FieldDescriptor{
		Name:     fd.Name,
		Type:     ref,
		Nullable: nullable || fd.Nullable,
		Accessor: accessor,
	}, nil
}

// ParseTypeRef parses a declared field type. A leading "*" marks the field
// nullable; slices are always nullable.
func ParseTypeRef(s string, declared map[string]bool) (analyze.TypeRef, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return analyze.TypeRef{}, false, errors.New("empty type")
	}

	if rest, ok := strings.CutPrefix(s, "*"); ok {
		ref, _, err := ParseTypeRef(rest, declared)
		return ref, true, err
	}

	if rest, ok := strings.CutPrefix(s, "[]"); ok {
		elem, _, err := ParseTypeRef(rest, declared)
		if err != nil {
			return analyze.TypeRef{}, false, err
		}

		return analyze.TypeRef{Name: "[]" + elem.String(), Kind: analyze.TypeKindSlice, Elem: &elem}, true, nil
	}

	switch {
	case analyze.IsBasicName(s):
		return analyze.TypeRef{Name: s, Kind: analyze.TypeKindBasic}, false, nil
	case declared[s]:
		return analyze.TypeRef{Name: s, Kind: analyze.TypeKindStruct}, false, nil
	default:
		return analyze.TypeRef{Name: s, Kind: analyze.TypeKindExternal}, false, nil
	}
}

// TypeDefs returns the declarations of every type of the graph, sorted by
// name. Graph applied to the result rebuilds an equivalent graph.
func TypeDefs(graph *analyze.TypeGraph) []TypeDef {
	var defs []TypeDef

	for _, name := range graph.Names() {
		t := graph.GetType(name)
		def := TypeDef{Name: t.Name}

		for _, f := range t.Fields {
			fd := FieldDef{Name: f.Name, Type: f.Type.String()}

			if f.Nullable && f.Type.Kind != analyze.TypeKindSlice {
				fd.Type = "*" + fd.Type
			}

			if f.Accessor != analyze.AccessorWritable {
				fd.Accessor = f.Accessor.String()
			}

			def.Fields = append(def.Fields, fd)
		}

		defs = append(defs, def)
	}

	return defs
}
