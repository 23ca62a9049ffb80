package plan

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"member-mapper/internal/analyze"
	"member-mapper/internal/diagnostic"
	"member-mapper/internal/mapping"
	"member-mapper/internal/match"
)

// ResolutionConfig holds configuration for the resolution process.
type ResolutionConfig struct {
	// Options override the options of the mapping file; unset values keep
	// the file's values, then the defaults.
	Options mapping.Options
	// Logger receives debug traces. Nil means no logging.
	Logger *zap.Logger
	// Parallelism bounds ResolveAll; zero or less means unbounded.
	Parallelism int
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() ResolutionConfig {
	return ResolutionConfig{}
}

// Resolver resolves type mappings against a type graph. It holds no
// per-request state and is safe for concurrent use.
type Resolver struct {
	graph   *analyze.TypeGraph
	file    *mapping.MappingFile
	opts    mapping.Options
	matcher *match.Matcher
	logger  *zap.Logger
	limit   int
}

// NewResolver creates a new Resolver. file may be nil when mappings are
// passed directly; it is consulted for options and nested pair configuration.
func NewResolver(graph *analyze.TypeGraph, file *mapping.MappingFile, config ResolutionConfig) *Resolver {
	opts := mapping.Options{}
	if file != nil {
		opts = file.Options
	}

	opts = opts.Override(config.Options).WithDefaults()

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Resolver{
		graph: graph,
		file:  file,
		opts:  opts,
		matcher: match.NewMatcher(graph, match.Options{
			AutoFlatten: opts.Flatten(),
			MaxDepth:    opts.MaxFlattenDepth,
		}),
		logger: logger,
		limit:  config.Parallelism,
	}
}

// Options returns the effective options.
func (r *Resolver) Options() mapping.Options {
	return r.opts
}

// Resolve resolves one top-level type mapping in its own session.
func (r *Resolver) Resolve(tm *mapping.TypeMapping) *Result {
	s := r.newSession()
	result := &Result{Mapping: tm.Name(), Diagnostics: s.diags}

	s.logger.Debug("resolving type mapping", zap.String("mapping", tm.Name()))

	source := s.resolveType(tm, "source", tm.Source)
	target := s.resolveType(tm, "target", tm.Target)

	if source != nil && target != nil {
		result.Root = s.dispatch(source, target, tm)
	}

	result.Units = s.units.all()

	s.logger.Debug("resolved type mapping",
		zap.String("mapping", tm.Name()),
		zap.Int("units", len(result.Units)),
		zap.Int("diagnostics", s.diags.Len()),
	)

	return result
}

// ResolveAll resolves independent top-level mappings in parallel, one session
// each. Results are returned in request order. The context only prevents
// sessions that have not started yet from running.
func (r *Resolver) ResolveAll(ctx context.Context, mappings []mapping.TypeMapping) ([]*Result, error) {
	results := make([]*Result, len(mappings))

	g, ctx := errgroup.WithContext(ctx)
	if r.limit > 0 {
		g.SetLimit(r.limit)
	}

	for i := range mappings {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = r.Resolve(&mappings[i])

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// ResolveFile resolves every mapping declared in the resolver's file.
func (r *Resolver) ResolveFile(ctx context.Context) ([]*Result, error) {
	if r.file == nil {
		return nil, nil
	}

	return r.ResolveAll(ctx, r.file.Mappings)
}

// session is the state of one top-level request.
type session struct {
	graph   *analyze.TypeGraph
	file    *mapping.MappingFile
	opts    mapping.Options
	matcher *match.Matcher
	logger  *zap.Logger
	units   *registry
	diags   *diagnostic.Collector
}

func (r *Resolver) newSession() *session {
	return &session{
		graph:   r.graph,
		file:    r.file,
		opts:    r.opts,
		matcher: r.matcher,
		logger:  r.logger,
		units:   newRegistry(),
		diags:   &diagnostic.Collector{},
	}
}

func (s *session) resolveType(tm *mapping.TypeMapping, role, name string) *analyze.TypeDescriptor {
	t := mapping.ResolveTypeName(name, s.graph)
	if t == nil {
		s.diags.Report(diagnostic.KindInvalidConfiguration, tm.Name(), "", role,
			"The "+role+" type "+name+" was not found or is ambiguous",
			mapping.TypeNameCandidates(name, s.graph)...)
	}

	return t
}
