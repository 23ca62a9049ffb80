package plan

import (
	"member-mapper/internal/analyze"
	"member-mapper/internal/common"
	"member-mapper/internal/diagnostic"
	"member-mapper/internal/mapping"
)

// NullHandling describes what happens when a nullable source value is null.
type NullHandling int

const (
	// NullHandlingNone passes the value through.
	NullHandlingNone NullHandling = iota
	// NullHandlingThrow fails at the point of access, naming FailurePath.
	NullHandlingThrow
	// NullHandlingDefault substitutes Default.
	NullHandlingDefault
)

// String returns a human-readable null handling name.
func (n NullHandling) String() string {
	switch n {
	case NullHandlingNone:
		return "none"
	case NullHandlingThrow:
		return "throw_if_null"
	case NullHandlingDefault:
		return "default_if_null"
	default:
		return common.UnknownStr
	}
}

// Conversion describes how the source value becomes the target value.
type Conversion int

const (
	// ConversionDirect assigns the value as is.
	ConversionDirect Conversion = iota
	// ConversionCast converts between distinct basic types.
	ConversionCast
	// ConversionNested maps the value with a nested mapping unit.
	ConversionNested
	// ConversionNestedCollection maps each element with a nested mapping unit.
	ConversionNestedCollection
)

// String returns a human-readable conversion name.
func (c Conversion) String() string {
	switch c {
	case ConversionDirect:
		return "direct"
	case ConversionCast:
		return "cast"
	case ConversionNested:
		return "nested"
	case ConversionNestedCollection:
		return "nested_collection"
	default:
		return common.UnknownStr
	}
}

// Origin indicates where an assignment came from.
type Origin int

const (
	// OriginOverride - from an explicit path override.
	OriginOverride Origin = iota
	// OriginAuto - from automatic matching.
	OriginAuto
)

// String returns a human-readable origin name.
func (o Origin) String() string {
	switch o {
	case OriginOverride:
		return "override"
	case OriginAuto:
		return "auto"
	default:
		return common.UnknownStr
	}
}

// Phase tells when an assignment is executed.
type Phase int

const (
	// PhaseInitializer assignments are part of constructing the target.
	PhaseInitializer Phase = iota
	// PhasePostConstruction assignments run on the constructed target.
	PhasePostConstruction
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInitializer:
		return "initializer"
	case PhasePostConstruction:
		return "post_construction"
	default:
		return common.UnknownStr
	}
}

// PathExpression is the access chain that reads a source value.
type PathExpression struct {
	Path mapping.FieldPath
	Hops []*analyze.FieldDescriptor
	// Nullable is true if any hop is nullable.
	Nullable bool
}

// String returns the dotted source path.
func (e PathExpression) String() string {
	return e.Path.String()
}

// Leaf returns the last hop.
func (e PathExpression) Leaf() *analyze.FieldDescriptor {
	if len(e.Hops) == 0 {
		return nil
	}

	return e.Hops[len(e.Hops)-1]
}

// ResolvedAssignment populates one target member.
type ResolvedAssignment struct {
	// TargetField is the assigned member; for member paths, the last one.
	TargetField *analyze.FieldDescriptor
	// TargetPath is the target member path; one segment unless it is a member path.
	TargetPath mapping.FieldPath
	// Source reads the value.
	Source PathExpression
	// NullHandling applies when Source is nullable and the target is not.
	NullHandling NullHandling
	// Default is the literal substituted for a null source.
	Default string
	// FailurePath names the null member when NullHandling is NullHandlingThrow.
	FailurePath string
	// Conversion describes how the value is converted.
	Conversion Conversion
	// Unit maps nested values; set for nested conversions.
	Unit *MappingUnit
	// Origin tells whether the assignment was configured or matched.
	Origin Origin
	// Phase tells when the assignment runs.
	Phase Phase
}

// MappingPlan is the resolved mapping of one type pair.
type MappingPlan struct {
	SourceType *analyze.TypeDescriptor
	TargetType *analyze.TypeDescriptor
	Mode       mapping.MappingMode
	// Initializer assignments in target declaration order.
	Initializer []ResolvedAssignment
	// PostConstruction assignments in target declaration order.
	PostConstruction []ResolvedAssignment
	// Valid is false when a mandatory member has no assignment.
	Valid bool
}

// Assignments returns the initializer assignments followed by the
// post-construction ones.
func (p *MappingPlan) Assignments() []ResolvedAssignment {
	out := make([]ResolvedAssignment, 0, len(p.Initializer)+len(p.PostConstruction))
	out = append(out, p.Initializer...)

	return append(out, p.PostConstruction...)
}

// Lookup returns the assignment for the dotted target path, or nil.
func (p *MappingPlan) Lookup(target string) *ResolvedAssignment {
	for _, list := range [][]ResolvedAssignment{p.Initializer, p.PostConstruction} {
		for i := range list {
			if list[i].TargetPath.String() == target {
				return &list[i]
			}
		}
	}

	return nil
}

// MappingUnit is the handle of one type pair within a session. The handle
// is registered before its plan is built, so Plan may still be nil while a
// self-referencing pair is being resolved.
type MappingUnit struct {
	// Key is the structural identity of the pair.
	Key string
	// Name is "source->target".
	Name       string
	SourceType *analyze.TypeDescriptor
	TargetType *analyze.TypeDescriptor
	Plan       *MappingPlan
}

// Result is the outcome of one top-level resolution request.
type Result struct {
	// Mapping is the requested pair, as written in the configuration.
	Mapping string
	// Root is the unit of the requested pair; nil if its types are unknown.
	Root *MappingUnit
	// Units lists every unit of the session in registration order, root first.
	Units []*MappingUnit
	// Diagnostics in discovery order.
	Diagnostics *diagnostic.Collector
}

// Valid returns true if every unit has a valid plan.
func (r *Result) Valid() bool {
	if r.Root == nil {
		return false
	}

	for _, u := range r.Units {
		if u.Plan == nil || !u.Plan.Valid {
			return false
		}
	}

	return true
}
