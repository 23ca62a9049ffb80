package diagnostic

import (
	"fmt"
	"strings"
)

// Diagnostic represents a single detected condition. It is never mutated after
// it has been added to a Collector.
type Diagnostic struct {
	// Kind is the stable tag of the condition.
	Kind Kind
	// Severity defaults to Kind.DefaultSeverity().
	Severity Severity
	// TypePair identifies the type mapping, e.g. "A->B".
	TypePair string
	// SubjectType is the type owning SubjectField.
	SubjectType string
	// SubjectField is the offending field or dotted path.
	SubjectField string
	// Message is the human-readable description.
	Message string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.TypePair != "" {
		prefix = append(prefix, "["+d.TypePair+"]")
	}

	if d.SubjectField != "" {
		if d.SubjectType != "" {
			prefix = append(prefix, d.SubjectType+"."+d.SubjectField)
		} else {
			prefix = append(prefix, d.SubjectField)
		}
	}

	msg := fmt.Sprintf("[%s] %s", d.Kind, d.Message)
	if len(d.Suggestions) > 0 {
		msg += " (did you mean: " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// Collector accumulates diagnostics in discovery order.
// The zero value is ready to use. A Collector is not safe for concurrent use.
type Collector struct {
	items []Diagnostic
}

// Add appends a diagnostic. An unset Severity is replaced by the kind's
// default severity; an explicit one is kept.
func (c *Collector) Add(d Diagnostic) {
	if d.Severity == SeverityUnset {
		d.Severity = d.Kind.DefaultSeverity()
	}

	c.items = append(c.items, d)
}

// Report appends a diagnostic of the given kind with its default severity.
func (c *Collector) Report(kind Kind, typePair, subjectType, subjectField, message string, suggestions ...string) {
	c.Add(Diagnostic{
		Kind:         kind,
		Severity:     kind.DefaultSeverity(),
		TypePair:     typePair,
		SubjectType:  subjectType,
		SubjectField: subjectField,
		Message:      message,
		Suggestions:  suggestions,
	})
}

// All returns a copy of the diagnostics in discovery order.
func (c *Collector) All() []Diagnostic {
	out := make([]Diagnostic, len(c.items))
	copy(out, c.items)

	return out
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int {
	return len(c.items)
}

// ByKind returns the diagnostics of the given kind in discovery order.
func (c *Collector) ByKind(kind Kind) []Diagnostic {
	var out []Diagnostic
	for _, d := range c.items {
		if d.Kind == kind {
			out = append(out, d)
		}
	}

	return out
}

// AtLeast returns the diagnostics whose severity is at least min.
func (c *Collector) AtLeast(minSeverity Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range c.items {
		if d.Severity >= minSeverity {
			out = append(out, d)
		}
	}

	return out
}

// Errors returns the error diagnostics.
func (c *Collector) Errors() []Diagnostic {
	return c.AtLeast(SeverityError)
}

// HasBlocking returns true if any diagnostic has error severity.
func (c *Collector) HasBlocking() bool {
	return len(c.Errors()) > 0
}
