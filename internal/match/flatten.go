package match

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"member-mapper/internal/analyze"
)

// Options control automatic matching.
type Options struct {
	// AutoFlatten enables splitting target names into nested source paths.
	AutoFlatten bool
	// MaxDepth bounds the number of hops of a flattened path.
	MaxDepth int
}

// Path is an access chain through the source type.
type Path struct {
	Segments []string
	Hops     []*analyze.FieldDescriptor
}

// String returns the dotted form of the path.
func (p Path) String() string {
	return strings.Join(p.Segments, ".")
}

// Len returns the number of hops.
func (p Path) Len() int {
	return len(p.Segments)
}

// Root returns the first hop, or nil for an empty path.
func (p Path) Root() *analyze.FieldDescriptor {
	if len(p.Hops) == 0 {
		return nil
	}

	return p.Hops[0]
}

// Leaf returns the last hop, or nil for an empty path.
func (p Path) Leaf() *analyze.FieldDescriptor {
	if len(p.Hops) == 0 {
		return nil
	}

	return p.Hops[len(p.Hops)-1]
}

// Nullable returns true if any hop is nullable.
func (p Path) Nullable() bool {
	for _, h := range p.Hops {
		if h.Nullable {
			return true
		}
	}

	return false
}

func (p Path) with(name string, hop *analyze.FieldDescriptor) Path {
	segments := make([]string, len(p.Segments), len(p.Segments)+1)
	copy(segments, p.Segments)

	hops := make([]*analyze.FieldDescriptor, len(p.Hops), len(p.Hops)+1)
	copy(hops, p.Hops)

	return Path{Segments: append(segments, name), Hops: append(hops, hop)}
}

// Result is the outcome of automatic matching for one target member.
type Result struct {
	// Best is the chosen path, nil when nothing or more than one path matched.
	Best *Path
	// Ambiguous lists the tied paths when the top candidates could not be ordered.
	Ambiguous []Path
}

// Found returns true if a single best path was chosen.
func (r Result) Found() bool {
	return r.Best != nil
}

// AmbiguousNames returns the dotted tied paths.
func (r Result) AmbiguousNames() []string {
	if len(r.Ambiguous) == 0 {
		return nil
	}

	out := make([]string, len(r.Ambiguous))
	for i := range r.Ambiguous {
		out[i] = r.Ambiguous[i].String()
	}

	return out
}

// Matcher finds source paths for target members.
// It is stateless and safe for concurrent use.
type Matcher struct {
	graph *analyze.TypeGraph
	opts  Options
}

// NewMatcher creates a matcher over the given type graph.
func NewMatcher(graph *analyze.TypeGraph, opts Options) *Matcher {
	return &Matcher{graph: graph, opts: opts}
}

// Candidates returns the source path for the target member name.
// An exact field name always wins; otherwise, with flattening enabled, the
// name is split at CamelCase boundaries into nested source members.
func (m *Matcher) Candidates(source *analyze.TypeDescriptor, name string) Result {
	if source == nil {
		return Result{}
	}

	if f := source.Field(name); f != nil {
		p := Path{}.with(name, f)
		return Result{Best: &p}
	}

	if !m.opts.AutoFlatten {
		return Result{}
	}

	var found []Path

	visiting := map[string]bool{source.Name: true}
	m.flatten(source, name, Path{}, visiting, &found)

	return rank(found)
}

// flatten collects every path through struct-typed members whose joined
// names spell name. Types already on the current path, the source type
// included, are not re-entered.
func (m *Matcher) flatten(current *analyze.TypeDescriptor, name string, prefix Path, visiting map[string]bool, out *[]Path) {
	// At least one struct hop and a leaf must still fit.
	if prefix.Len()+2 > m.opts.MaxDepth {
		return
	}

	for _, at := range SplitPoints(name) {
		head := strings.TrimRight(name[:at], "_- ")
		rest := strings.TrimLeft(name[at:], "_- ")

		if head == "" || rest == "" {
			continue
		}

		f := current.Field(head)
		if f == nil || !f.Type.IsStruct() {
			continue
		}

		nested := m.graph.Struct(f.Type)
		if nested == nil || visiting[nested.Name] {
			continue
		}

		next := prefix.with(head, f)

		if leaf := nested.Field(rest); leaf != nil {
			*out = append(*out, next.with(rest, leaf))
		}

		visiting[nested.Name] = true
		m.flatten(nested, rest, next, visiting, out)
		delete(visiting, nested.Name)
	}
}

// rank applies the longest-prefix rule at every level: segment lengths are
// compared hop by hop and the longer segment wins at the first hop that
// differs, then fewer hops win. Paths with equal segment lengths throughout
// are ambiguous.
func rank(paths []Path) Result {
	if len(paths) == 0 {
		return Result{}
	}

	sort.SliceStable(paths, func(i, j int) bool {
		if c := compareSegments(paths[i], paths[j]); c != 0 {
			return c > 0
		}

		return paths[i].String() < paths[j].String()
	})

	best := paths[0]
	tied := []Path{best}

	for _, p := range paths[1:] {
		if compareSegments(p, best) == 0 {
			tied = append(tied, p)
		}
	}

	if len(tied) > 1 {
		return Result{Ambiguous: tied}
	}

	return Result{Best: &best}
}

// compareSegments returns a positive number when a ranks before b, negative
// when b ranks before a and zero on a tie.
func compareSegments(a, b Path) int {
	for i := 0; i < a.Len() && i < b.Len(); i++ {
		if la, lb := len(a.Segments[i]), len(b.Segments[i]); la != lb {
			return la - lb
		}
	}

	return b.Len() - a.Len()
}

// ResolvePath resolves an explicit member path against the source type.
// Every segment but the last must name a struct-typed member.
func (m *Matcher) ResolvePath(source *analyze.TypeDescriptor, segments []string) (Path, error) {
	if source == nil {
		return Path{}, errors.New("source type is unknown")
	}

	if len(segments) == 0 {
		return Path{}, errors.New("empty path")
	}

	var p Path

	current := source
	for i, seg := range segments {
		f := current.Field(seg)
		if f == nil {
			return Path{}, &MissingMemberError{Type: current.Name, Member: seg, Index: i}
		}

		p = p.with(seg, f)

		if i == len(segments)-1 {
			break
		}

		next := m.graph.Struct(f.Type)
		if next == nil {
			return Path{}, errors.Newf("member %s of type %s is not a structured type", p, current.Name)
		}

		current = next
	}

	return p, nil
}

// MissingMemberError reports the first path segment that does not exist.
type MissingMemberError struct {
	Type   string
	Member string
	Index  int
}

func (e *MissingMemberError) Error() string {
	return "member " + e.Member + " not found on type " + e.Type
}
