package match

import (
	"sort"

	"member-mapper/internal/analyze"
)

// Suggestion thresholds.
const (
	// DefaultMinScore is the minimum similarity for a name to be suggested.
	DefaultMinScore = 0.6
	// DefaultSuggestionLimit caps the number of suggestions per diagnostic.
	DefaultSuggestionLimit = 3
)

// Levenshtein computes the edit distance between two strings, counted in runes.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	// Keep the shorter string in ra so only two short rows are needed.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// LevenshteinNormalized computes a similarity score between 0 and 1.
// The score is: 1 - (distance / max(len(a), len(b))).
func LevenshteinNormalized(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(maxLen)
}

// NameScore compares two identifiers after normalization, with and without
// common suffixes, and returns the better score.
func NameScore(a, b string) float64 {
	plain := LevenshteinNormalized(NormalizeIdent(a), NormalizeIdent(b))
	stripped := LevenshteinNormalized(NormalizeIdentWithSuffixStrip(a), NormalizeIdentWithSuffixStrip(b))

	return max(plain, stripped)
}

// Suggestion is a scored candidate name.
type Suggestion struct {
	Name  string
	Score float64
}

// SuggestionList sorts by score descending, then by name.
type SuggestionList []Suggestion

// Len implements sort.Interface.
func (s SuggestionList) Len() int { return len(s) }

// Swap implements sort.Interface.
func (s SuggestionList) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Less implements sort.Interface.
func (s SuggestionList) Less(i, j int) bool {
	if s[i].Score != s[j].Score {
		return s[i].Score > s[j].Score
	}

	return s[i].Name < s[j].Name
}

// Names returns the suggested names in order.
func (s SuggestionList) Names() []string {
	if len(s) == 0 {
		return nil
	}

	out := make([]string, len(s))
	for i := range s {
		out[i] = s[i].Name
	}

	return out
}

// Rank scores every candidate against name and keeps those above minScore,
// best first, at most limit entries. Exact matches are skipped.
func Rank(name string, candidates []string, minScore float64, limit int) SuggestionList {
	var out SuggestionList

	for _, c := range candidates {
		if c == name {
			continue
		}

		if score := NameScore(name, c); score >= minScore {
			out = append(out, Suggestion{Name: c, Score: score})
		}
	}

	sort.Sort(out)

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}

// Suggest returns close field names of typ for a missing member name.
func Suggest(name string, typ *analyze.TypeDescriptor) []string {
	if typ == nil {
		return nil
	}

	names := make([]string, len(typ.Fields))
	for i := range typ.Fields {
		names[i] = typ.Fields[i].Name
	}

	return Rank(name, names, DefaultMinScore, DefaultSuggestionLimit).Names()
}
