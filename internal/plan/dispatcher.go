package plan

import (
	"sync"

	"go.uber.org/zap"

	"member-mapper/internal/analyze"
	"member-mapper/internal/mapping"
)

// registry holds the mapping units of one session, keyed by the structural
// identity of the type pair.
type registry struct {
	mu    sync.Mutex
	units map[string]*MappingUnit
	order []*MappingUnit
}

func newRegistry() *registry {
	return &registry{units: make(map[string]*MappingUnit)}
}

// pairKey returns the registry key of a type pair.
func pairKey(source, target *analyze.TypeDescriptor) string {
	return source.Key() + "->" + target.Key()
}

// register returns the unit of the pair, creating it if this is the first
// request. created is true only for the caller that must build the plan.
func (r *registry) register(source, target *analyze.TypeDescriptor) (unit *MappingUnit, created bool) {
	key := pairKey(source, target)

	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.units[key]; ok {
		return u, false
	}

	u := &MappingUnit{
		Key:        key,
		Name:       source.Name + "->" + target.Name,
		SourceType: source,
		TargetType: target,
	}
	r.units[key] = u
	r.order = append(r.order, u)

	return u, true
}

// all returns the units in registration order.
func (r *registry) all() []*MappingUnit {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*MappingUnit, len(r.order))
	copy(out, r.order)

	return out
}

// dispatch returns the unit mapping source to target. The first request for
// a pair registers a forward handle and then builds its plan; any request
// made while it is being built, including self references, gets the same
// handle. tm is nil for nested pairs.
func (s *session) dispatch(source, target *analyze.TypeDescriptor, tm *mapping.TypeMapping) *MappingUnit {
	unit, created := s.units.register(source, target)
	if !created {
		s.logger.Debug("reusing mapping unit", zap.String("unit", unit.Name))
		return unit
	}

	s.logger.Debug("registered mapping unit", zap.String("unit", unit.Name))

	if tm == nil {
		tm = s.nestedMapping(source, target)
	}

	unit.Plan = s.build(unit, tm)

	return unit
}

// nestedMapping returns the configuration of a nested pair: the one declared
// in the mapping file if any, otherwise an empty one. Nested targets are
// always constructed by the mapping.
func (s *session) nestedMapping(source, target *analyze.TypeDescriptor) *mapping.TypeMapping {
	declared := s.file.FindMapping(source.Name, target.Name, s.graph)
	if declared == nil {
		return &mapping.TypeMapping{Source: source.Name, Target: target.Name, Mode: mapping.ModeNew}
	}

	tm := *declared
	tm.Mode = mapping.ModeNew

	return &tm
}
