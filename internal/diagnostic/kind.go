package diagnostic

import "member-mapper/internal/common"

// Kind is the stable tag of a diagnostic.
type Kind int

const (
	KindUnknown Kind = iota
	// KindSourceMemberNotFound: a target field has no source, or an override
	// names a source path that does not exist.
	KindSourceMemberNotFound
	// KindSourceMemberNotMapped: a source field was never used.
	KindSourceMemberNotMapped
	// KindCannotMapToConstructionOnlyMemberPath: a construction-only target is
	// reachable only after construction.
	KindCannotMapToConstructionOnlyMemberPath
	// KindDuplicateConfiguration: a target field is named by several overrides.
	KindDuplicateConfiguration
	// KindIgnoredTargetMemberExplicitlyMapped: a target field is both ignored
	// and overridden.
	KindIgnoredTargetMemberExplicitlyMapped
	// KindTargetMemberNotMapped: a mandatory target field received nothing.
	KindTargetMemberNotMapped
	KindConfiguredTargetMemberNotFound
	KindIgnoredTargetMemberNotFound
	KindIgnoredSourceMemberNotFound
	KindCannotMapToReadOnlyMember
	KindIncompatibleMemberTypes
	KindInvalidConfiguration
)

var kindNames = map[Kind]string{
	KindSourceMemberNotFound:                  "SourceMemberNotFound",
	KindSourceMemberNotMapped:                 "SourceMemberNotMapped",
	KindCannotMapToConstructionOnlyMemberPath: "CannotMapToConstructionOnlyMemberPath",
	KindDuplicateConfiguration:                "DuplicateConfiguration",
	KindIgnoredTargetMemberExplicitlyMapped:   "IgnoredTargetMemberExplicitlyMapped",
	KindTargetMemberNotMapped:                 "TargetMemberNotMapped",
	KindConfiguredTargetMemberNotFound:        "ConfiguredTargetMemberNotFound",
	KindIgnoredTargetMemberNotFound:           "IgnoredTargetMemberNotFound",
	KindIgnoredSourceMemberNotFound:           "IgnoredSourceMemberNotFound",
	KindCannotMapToReadOnlyMember:             "CannotMapToReadOnlyMember",
	KindIncompatibleMemberTypes:               "IncompatibleMemberTypes",
	KindInvalidConfiguration:                  "InvalidConfiguration",
}

// String returns the stable tag of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return common.UnknownStr
}

// ParseKind returns the kind with the given tag.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}

	return KindUnknown, false
}

// DefaultSeverity returns the severity a kind is reported with.
func (k Kind) DefaultSeverity() Severity {
	switch k {
	case KindSourceMemberNotMapped:
		return SeverityInfo
	case KindCannotMapToConstructionOnlyMemberPath,
		KindTargetMemberNotMapped,
		KindInvalidConfiguration:
		return SeverityError
	default:
		return SeverityWarning
	}
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	// SeverityUnset selects the kind's default severity.
	SeverityUnset Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// ParseSeverity parses a severity name.
func ParseSeverity(s string) (Severity, bool) {
	switch s {
	case "info":
		return SeverityInfo, true
	case "warning":
		return SeverityWarning, true
	case "error":
		return SeverityError, true
	default:
		return SeverityUnset, false
	}
}
