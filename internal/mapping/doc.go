// Package mapping provides the YAML mapping file model, its parsing and
// validation, and the helpers that turn it into an analyze.TypeGraph.
//
// A mapping file declares the structural type model, global options, and one
// entry per type pair:
//
//	version: "1"
//	options:
//	  null_policy: strict      # strict | lenient
//	  auto_flatten: true
//	  max_flatten_depth: 4
//	types:
//	  - name: A
//	    fields:
//	      - {name: Nested, type: "*C"}
//	      - {name: Name, type: string, accessor: init}
//	  - name: B
//	    fields:
//	      - {name: NestedValue, type: string, accessor: required}
//	mappings:
//	  - source: A
//	    target: B
//	    mode: new              # new | existing
//	    121:
//	      Nested.Value: NestedValue
//	    overrides:
//	      - {source: Name, target: Name}
//	    ignore: [Id]
//	    ignore_sources: Legacy
//
// # Field types
//
// A field type is a predeclared basic type ("string", "int64"), the name of
// a declared type, a slice "[]T", or any other name, which is treated as
// opaque. A leading "*" marks the field nullable.
//
// # Paths
//
// Override paths are dotted member paths ("Nested.Value"). A target path with
// more than one segment assigns a member of an already constructed value.
//
// The "121" shorthand maps source paths to target paths and is folded into
// the override list when the file is parsed, in source path order.
package mapping
