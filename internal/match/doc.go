// Package match finds the source member that feeds a target member.
//
// Key functions:
//   - Matcher.Candidates: exact name match, then automatic flattening of the
//     target name into a nested source path ("NestedValue" -> Nested.Value)
//   - Matcher.ResolvePath: resolves an explicit dotted path
//   - ScoreTypeCompatibility: classifies how a source type reaches a target type
//   - Suggest: close member names for diagnostics
package match
