package plan

import (
	"member-mapper/internal/analyze"
	"member-mapper/internal/mapping"
)

// nullHandling decides what happens when the source expression is null and
// the target member cannot hold null. It returns the handling, the default
// literal for lenient handling and the failure path for strict handling.
func nullHandling(source PathExpression, target *analyze.FieldDescriptor, opts mapping.Options) (NullHandling, string, string) {
	if !source.Nullable || target.Nullable {
		return NullHandlingNone, "", ""
	}

	if opts.Lenient() {
		return NullHandlingDefault, target.Type.ZeroLiteral(), ""
	}

	return NullHandlingThrow, "", "source." + source.Path.String()
}
