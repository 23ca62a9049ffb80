// Package diagnostic collects the problems found while resolving member
// mappings.
//
// Resolution never aborts. Every condition is recorded as a Diagnostic with a
// stable Kind, the offending type and field, and a message. The Collector keeps
// diagnostics in discovery order and never deduplicates them; the consuming
// layer decides which kinds fail a build.
package diagnostic
