// Package analyze provides the field model consumed by the mapping engine
// and an adapter that extracts it from Go packages.
//
// The model is purely structural: a TypeDescriptor is a named, ordered list
// of FieldDescriptors, each carrying a declared type, nullability and an
// accessor kind (readonly, settable, init, required). Declaration order is
// preserved because it decides the order of generated initializers.
//
// The Go adapter uses golang.org/x/tools/go/packages with go/types:
//   - pointer fields are nullable
//   - the `mapper` struct tag selects the accessor: `mapper:"init"`,
//     `mapper:"required"` or `mapper:"readonly"`
//   - unexported fields and fields tagged `mapper:"-"` are skipped
//   - any other tag value fails LoadPackages
//
// Key types:
//   - TypeRef: declared type of a field (basic/struct/slice/external)
//   - FieldDescriptor: name, type, nullability and accessor
//   - TypeDescriptor: named ordered field list with a structural Key
//   - TypeGraph: name to descriptor lookup
package analyze
