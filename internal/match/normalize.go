package match

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeIdent normalizes an identifier for fuzzy matching.
// The normalization pipeline:
// 1. Tokenize CamelCase.
// 2. Case-fold to lower.
// 3. Strip separators (_, -, spaces).
func NormalizeIdent(s string) string {
	tokens := tokenizeCamelCase(s)

	joined := strings.ToLower(strings.Join(tokens, ""))

	return stripSeparators(joined)
}

// NormalizeIdentWithSuffixStrip normalizes and strips one common suffix:
// id, ids, at, utc, timestamp.
func NormalizeIdentWithSuffixStrip(s string) string {
	normalized := NormalizeIdent(s)

	// Longer suffixes first to avoid partial matches.
	suffixes := []string{"timestamp", "ids", "utc", "id", "at"}
	for _, suffix := range suffixes {
		if strings.HasSuffix(normalized, suffix) && len(normalized) > len(suffix) {
			return strings.TrimSuffix(normalized, suffix)
		}
	}

	return normalized
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customerName" -> ["customer", "Name"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "NestedValue" -> ["Nested", "Value"]
func tokenizeCamelCase(s string) []string {
	var tokens []string

	start := -1
	for i, r := range s {
		switch {
		case isSeparator(r):
			if start >= 0 {
				tokens = append(tokens, s[start:i])
				start = -1
			}
		case start < 0:
			start = i
		case isTokenStart(s, i):
			tokens = append(tokens, s[start:i])
			start = i
		}
	}

	if start >= 0 {
		tokens = append(tokens, s[start:])
	}

	return tokens
}

// SplitPoints returns the offsets at which a flattened name may be split:
// every token boundary plus every position inside a run of capitals, so
// "IOURL" can split into "IO" and "URL".
func SplitPoints(s string) []int {
	var out []int

	for i, r := range s {
		if i == 0 {
			continue
		}

		prev := prevRune(s, i)

		switch {
		case isTokenStart(s, i):
		case isSeparator(r) && !isSeparator(prev):
		case unicode.IsUpper(r) && unicode.IsUpper(prev):
		default:
			continue
		}

		out = append(out, i)
	}

	return out
}

// isTokenStart reports whether a new token starts at byte offset i (i > 0).
func isTokenStart(s string, i int) bool {
	prev, _ := utf8.DecodeLastRuneInString(s[:i])
	r, size := utf8.DecodeRuneInString(s[i:])

	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "orderID" splits before 'I'.
	if !unicode.IsUpper(prev) {
		return true
	}

	// End of acronym: "XMLParser" splits before 'P'.
	next, _ := utf8.DecodeRuneInString(s[i+size:])

	return unicode.IsLower(next)
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// stripSeparators removes common separators from a string.
func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if isSeparator(r) {
			return -1
		}

		return r
	}, s)
}

func prevRune(s string, i int) rune {
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return r
}
