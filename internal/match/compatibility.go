package match

import (
	"fmt"

	"member-mapper/internal/analyze"
	"member-mapper/internal/common"
)

// TypeCompatibility classifies how a source type reaches a target type.
type TypeCompatibility int

const (
	// TypeIncompatible means no assignment can be produced.
	TypeIncompatible TypeCompatibility = iota
	// TypeNested means both sides are structs mapped by a nested unit.
	TypeNested
	// TypeNestedCollection means both sides are slices of structs mapped element-wise.
	TypeNestedCollection
	// TypeConvertible means distinct basic types; the emitter inserts a cast.
	TypeConvertible
	// TypeIdentical means the declared types are the same.
	TypeIdentical
)

const (
	VerdictIdentical        = "identical"
	VerdictConvertible      = "convertible"
	VerdictNested           = "nested"
	VerdictNestedCollection = "nested_collection"
	VerdictIncompatible     = "incompatible"
)

// String returns a human-readable name for the compatibility level.
func (c TypeCompatibility) String() string {
	switch c {
	case TypeIdentical:
		return VerdictIdentical
	case TypeConvertible:
		return VerdictConvertible
	case TypeNested:
		return VerdictNested
	case TypeNestedCollection:
		return VerdictNestedCollection
	case TypeIncompatible:
		return VerdictIncompatible
	default:
		return common.UnknownStr
	}
}

// TypeCompatibilityResult contains detailed information about type compatibility.
type TypeCompatibilityResult struct {
	Compatibility TypeCompatibility
	Reason        string // Human-readable explanation
	SourceType    string
	TargetType    string
}

// ScoreTypeCompatibility determines how a source type reaches a target type.
// Nullability is handled separately by the caller.
func ScoreTypeCompatibility(source, target analyze.TypeRef) TypeCompatibilityResult {
	res := TypeCompatibilityResult{
		SourceType: source.String(),
		TargetType: target.String(),
	}

	switch {
	case source.Kind == target.Kind && source.String() == target.String():
		res.Compatibility = TypeIdentical
		res.Reason = "types are identical"

	case source.Kind == analyze.TypeKindStruct && target.Kind == analyze.TypeKindStruct:
		res.Compatibility = TypeNested
		res.Reason = "structured types are mapped member by member"

	case source.Kind == analyze.TypeKindSlice && target.Kind == analyze.TypeKindSlice:
		res = scoreSliceCompatibility(source, target, res)

	case source.Kind == analyze.TypeKindBasic && target.Kind == analyze.TypeKindBasic:
		res.Compatibility = TypeConvertible
		res.Reason = fmt.Sprintf("%s converts to %s", source, target)

	default:
		res.Compatibility = TypeIncompatible
		res.Reason = fmt.Sprintf("%s %s cannot be assigned to %s %s", source.Kind, source, target.Kind, target)
	}

	return res
}

func scoreSliceCompatibility(source, target analyze.TypeRef, res TypeCompatibilityResult) TypeCompatibilityResult {
	if source.Elem == nil || target.Elem == nil {
		res.Compatibility = TypeIncompatible
		res.Reason = "slice element type unknown"

		return res
	}

	if source.Elem.IsStruct() && target.Elem.IsStruct() {
		res.Compatibility = TypeNestedCollection
		res.Reason = "elements are mapped member by member"

		return res
	}

	res.Compatibility = TypeIncompatible
	res.Reason = fmt.Sprintf("element %s cannot be assigned to element %s", source.Elem, target.Elem)

	return res
}
