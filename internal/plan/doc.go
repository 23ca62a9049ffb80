// Package plan resolves member mappings into mapping plans.
//
// Resolution pipeline, per requested type pair:
//  1. Resolve the source and target type names against the type graph.
//  2. For each target member in declaration order, pick its source:
//     duplicate overrides, then ignores, then a single override, then the
//     automatic matcher (exact name, then flattening).
//  3. Partition the assignments: construction-only and mandatory members go
//     to the initializer, settable members and member paths run after
//     construction.
//  4. Decide null handling and conversions; structured members dispatch a
//     nested mapping unit, reusing the unit of a pair already being built.
//  5. Report unused source members and unassigned mandatory members.
//
// Problems never stop resolution; they are collected as diagnostics.
//
// ExportYAML renders results for reporting. ExportSuggestions turns them back
// into a mapping file with every assignment pinned as an override.
package plan
