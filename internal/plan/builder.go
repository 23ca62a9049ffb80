package plan

import (
	"fmt"

	"member-mapper/internal/analyze"
	"member-mapper/internal/common"
	"member-mapper/internal/diagnostic"
	"member-mapper/internal/mapping"
	"member-mapper/internal/match"
)

// build produces the plan of a registered unit.
func (s *session) build(unit *MappingUnit, tm *mapping.TypeMapping) *MappingPlan {
	b := &unitBuild{
		session: s,
		tm:      tm,
		source:  unit.SourceType,
		target:  unit.TargetType,
		pair:    unit.Name,
		plan: &MappingPlan{
			SourceType: unit.SourceType,
			TargetType: unit.TargetType,
			Mode:       tm.Mode.OrDefault(),
			Valid:      true,
		},
		direct:  make(map[string][]mapping.PathOverride),
		members: make(map[string][]memberOverride),
		used:    make(map[string]bool),
	}

	b.indexOverrides()
	b.checkIgnores()

	for i := range b.target.Fields {
		field := &b.target.Fields[i]

		assigned := false
		if sel, ok := b.selectSource(field); ok {
			assigned = b.assign(sel)
		}

		if field.Accessor == analyze.AccessorMandatory && !assigned && b.constructs() {
			b.plan.Valid = false
			b.report(diagnostic.KindTargetMemberNotMapped, b.target.Name, field.Name,
				fmt.Sprintf("The required member %s on the mapping target type %s is not mapped", field.Name, b.target.Name))
		}

		b.assignMembers(field)
	}

	b.reportUnmappedSources()

	return b.plan
}

// constructs reports whether the mapping creates the target, so that an
// initializer exists.
func (b *unitBuild) constructs() bool {
	return b.plan.Mode == mapping.ModeNew
}

// assign turns a selection into an assignment of the right phase.
func (b *unitBuild) assign(sel selection) bool {
	field := sel.field
	leaf := sel.source.Leaf()

	phase := PhasePostConstruction
	if field.RequiresInitializer() && !sel.target.IsMember() {
		if !b.constructs() {
			b.reportConstructionOnly(sel.source.String(), leaf.Type, sel.target.String(), field.Type)
			return false
		}

		phase = PhaseInitializer
	}

	conversion, unit, ok := b.convert(sel, leaf)
	if !ok {
		return false
	}

	expr := PathExpression{
		Path:     mapping.NewFieldPath(sel.source.Segments...),
		Hops:     sel.source.Hops,
		Nullable: sel.source.Nullable(),
	}

	handling, def, failure := nullHandling(expr, field, b.opts)

	a := ResolvedAssignment{
		TargetField:  field,
		TargetPath:   sel.target,
		Source:       expr,
		NullHandling: handling,
		Default:      def,
		FailurePath:  failure,
		Conversion:   conversion,
		Unit:         unit,
		Origin:       sel.origin,
		Phase:        phase,
	}

	if phase == PhaseInitializer {
		b.plan.Initializer = append(b.plan.Initializer, a)
	} else {
		b.plan.PostConstruction = append(b.plan.PostConstruction, a)
	}

	b.used[sel.source.Segments[0]] = true

	return true
}

// convert picks the conversion from the source leaf to the target member and
// dispatches nested units.
func (b *unitBuild) convert(sel selection, leaf *analyze.FieldDescriptor) (Conversion, *MappingUnit, bool) {
	field := sel.field
	compat := match.ScoreTypeCompatibility(leaf.Type, field.Type)

	switch compat.Compatibility {
	case match.TypeIdentical:
		return ConversionDirect, nil, true

	case match.TypeConvertible:
		return ConversionCast, nil, true

	case match.TypeNested:
		src, dst := b.graph.Struct(leaf.Type), b.graph.Struct(field.Type)
		if src != nil && dst != nil {
			return ConversionNested, b.dispatch(src, dst, nil), true
		}

	case match.TypeNestedCollection:
		src, dst := b.graph.ElemStruct(leaf.Type), b.graph.ElemStruct(field.Type)
		if src != nil && dst != nil {
			return ConversionNestedCollection, b.dispatch(src, dst, nil), true
		}
	}

	b.report(diagnostic.KindIncompatibleMemberTypes, b.target.Name, sel.target.String(),
		fmt.Sprintf("Cannot map from member %s.%s of type %s to member %s.%s of type %s: %s",
			b.source.Name, sel.source, leaf.Type, b.target.Name, sel.target, field.Type, compat.Reason))

	return 0, nil, false
}

func (b *unitBuild) reportConstructionOnly(source string, sourceType analyze.TypeRef, target string, targetType analyze.TypeRef) {
	b.report(diagnostic.KindCannotMapToConstructionOnlyMemberPath, b.target.Name, target,
		fmt.Sprintf("Cannot map from member %s.%s of type %s to construction-only member path %s.%s of type %s",
			b.source.Name, source, sourceType, b.target.Name, target, targetType))
}

// assignMembers applies the member-path overrides rooted at field. They can
// only run on a constructed value, so they are post-construction assignments.
func (b *unitBuild) assignMembers(field *analyze.FieldDescriptor) {
	overrides := b.members[field.Name]
	if common.IsEmpty(overrides) {
		return
	}

	byPath := make(map[string][]mapping.PathOverride)
	for _, mo := range overrides {
		key := mo.path.String()
		byPath[key] = append(byPath[key], mo.override)
	}

	reported := make(map[string]bool)

	for _, mo := range overrides {
		key := mo.path.String()

		switch {
		case len(byPath[key]) > 1:
			if !reported[key] {
				reported[key] = true
				b.reportDuplicate(key, byPath[key])
			}

		case b.tm.IsIgnored(field.Name):
			b.reportIgnoredButMapped(key, mo.override)

		default:
			b.assignMember(field, mo)
		}
	}
}

func (b *unitBuild) assignMember(root *analyze.FieldDescriptor, mo memberOverride) {
	leaf, ok := b.resolveTargetPath(mo.path)
	if !ok {
		return
	}

	sel, ok := b.resolveOverride(leaf, mo.path, mo.override)
	if !ok {
		return
	}

	if root.RequiresInitializer() || leaf.RequiresInitializer() {
		b.reportConstructionOnly(sel.source.String(), sel.source.Leaf().Type, mo.path.String(), leaf.Type)
		return
	}

	if !leaf.CanWrite() {
		b.report(diagnostic.KindCannotMapToReadOnlyMember, b.target.Name, mo.path.String(),
			fmt.Sprintf("Cannot map from member %s to read only member path %s.%s",
				mo.override.Source, b.target.Name, mo.path))

		return
	}

	b.assign(sel)
}

// resolveTargetPath walks a member path through the target type.
func (b *unitBuild) resolveTargetPath(path mapping.FieldPath) (*analyze.FieldDescriptor, bool) {
	current := b.target

	var field *analyze.FieldDescriptor

	for i, seg := range path.Segments {
		if current == nil {
			b.reportTargetNotFound(path, seg, nil)
			return nil, false
		}

		field = current.Field(seg)
		if field == nil {
			b.reportTargetNotFound(path, seg, current)
			return nil, false
		}

		if i < len(path.Segments)-1 {
			current = b.graph.Struct(field.Type)
		}
	}

	return field, true
}

func (b *unitBuild) reportTargetNotFound(path mapping.FieldPath, seg string, owner *analyze.TypeDescriptor) {
	b.report(diagnostic.KindConfiguredTargetMemberNotFound, b.target.Name, path.String(),
		fmt.Sprintf("Specified member %s on mapping target type %s was not found", path, b.target.Name),
		match.Suggest(seg, owner)...)
}
