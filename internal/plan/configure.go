package plan

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"member-mapper/internal/analyze"
	"member-mapper/internal/common"
	"member-mapper/internal/diagnostic"
	"member-mapper/internal/mapping"
	"member-mapper/internal/match"
)

// unitBuild is the state of building the plan of one mapping unit.
type unitBuild struct {
	*session

	tm     *mapping.TypeMapping
	source *analyze.TypeDescriptor
	target *analyze.TypeDescriptor
	pair   string
	plan   *MappingPlan

	// direct holds single-segment overrides by target member.
	direct map[string][]mapping.PathOverride
	// members holds member-path overrides by target root member.
	members map[string][]memberOverride
	// used records source root members read by an assignment.
	used map[string]bool
}

type memberOverride struct {
	override mapping.PathOverride
	path     mapping.FieldPath
}

// selection is the chosen source of one target member.
type selection struct {
	field  *analyze.FieldDescriptor
	target mapping.FieldPath
	source match.Path
	origin Origin
}

func (b *unitBuild) report(kind diagnostic.Kind, subjectType, subjectField, msg string, suggestions ...string) {
	b.diags.Report(kind, b.pair, subjectType, subjectField, msg, suggestions...)
}

// indexOverrides groups the overrides by target member. Overrides naming
// unknown target members are reported and dropped.
func (b *unitBuild) indexOverrides() {
	for _, o := range b.tm.Overrides {
		path, err := mapping.ParsePath(o.Target)
		if err != nil {
			b.report(diagnostic.KindInvalidConfiguration, b.target.Name, o.Target,
				fmt.Sprintf("Invalid target path in override %s: %v", o, err))

			continue
		}

		root := path.Root()
		if b.target.Field(root) == nil {
			b.report(diagnostic.KindConfiguredTargetMemberNotFound, b.target.Name, o.Target,
				fmt.Sprintf("Specified member %s on mapping target type %s was not found", o.Target, b.target.Name),
				match.Suggest(root, b.target)...)

			continue
		}

		if path.IsMember() {
			b.members[root] = append(b.members[root], memberOverride{override: o, path: path})
		} else {
			b.direct[root] = append(b.direct[root], o)
		}
	}
}

// checkIgnores reports ignore directives naming unknown members.
func (b *unitBuild) checkIgnores() {
	for _, name := range b.tm.Ignore {
		if b.target.Field(name) == nil {
			b.report(diagnostic.KindIgnoredTargetMemberNotFound, b.target.Name, name,
				fmt.Sprintf("Ignored target member %s was not found on type %s", name, b.target.Name),
				match.Suggest(name, b.target)...)
		}
	}

	for _, name := range b.tm.IgnoreSources {
		if b.source.Field(name) == nil {
			b.report(diagnostic.KindIgnoredSourceMemberNotFound, b.source.Name, name,
				fmt.Sprintf("Ignored source member %s was not found on type %s", name, b.source.Name),
				match.Suggest(name, b.source)...)
		}
	}
}

// selectSource applies the configuration rules to one target member, in
// priority order: duplicate overrides, ignore, single override, automatic
// matching. Members owned by member-path overrides are never matched
// automatically.
func (b *unitBuild) selectSource(field *analyze.FieldDescriptor) (selection, bool) {
	overrides := b.direct[field.Name]

	switch {
	case common.IsMultiple(overrides):
		b.reportDuplicate(field.Name, overrides)
		return selection{}, false

	case b.tm.IsIgnored(field.Name):
		if common.IsSingle(overrides) {
			b.reportIgnoredButMapped(field.Name, overrides[0])
		}

		return selection{}, false

	case !field.CanWrite():
		if common.IsSingle(overrides) {
			b.report(diagnostic.KindCannotMapToReadOnlyMember, b.target.Name, field.Name,
				fmt.Sprintf("Cannot map from member %s to read only member path %s.%s",
					overrides[0].Source, b.target.Name, field.Name))
		}

		return selection{}, false

	case common.IsSingle(overrides):
		return b.resolveOverride(field, mapping.NewFieldPath(field.Name), overrides[0])

	case len(b.members[field.Name]) > 0:
		return selection{}, false

	default:
		return b.autoMatch(field)
	}
}

func (b *unitBuild) reportDuplicate(target string, overrides []mapping.PathOverride) {
	sources := make([]string, len(overrides))
	for i, o := range overrides {
		sources[i] = o.Source
	}

	b.report(diagnostic.KindDuplicateConfiguration, b.target.Name, target,
		fmt.Sprintf("Multiple mappings are configured for the same target member %s.%s (from %s)",
			b.target.Name, target, strings.Join(sources, ", ")))
}

func (b *unitBuild) reportIgnoredButMapped(target string, o mapping.PathOverride) {
	b.report(diagnostic.KindIgnoredTargetMemberExplicitlyMapped, b.target.Name, target,
		fmt.Sprintf("The member %s on the mapping target type %s is ignored, but is explicitly mapped from %s",
			target, b.target.Name, o.Source))
}

// resolveOverride resolves the source path of an override verbatim.
func (b *unitBuild) resolveOverride(field *analyze.FieldDescriptor, target mapping.FieldPath, o mapping.PathOverride) (selection, bool) {
	path, err := mapping.ParsePath(o.Source)
	if err != nil {
		b.report(diagnostic.KindInvalidConfiguration, b.source.Name, o.Source,
			fmt.Sprintf("Invalid source path in override %s: %v", o, err))

		return selection{}, false
	}

	resolved, err := b.matcher.ResolvePath(b.source, path.Segments)
	if err != nil {
		var suggestions []string

		var missing *match.MissingMemberError
		if errors.As(err, &missing) {
			suggestions = match.Suggest(missing.Member, b.graph.GetType(missing.Type))
		}

		b.report(diagnostic.KindSourceMemberNotFound, b.source.Name, o.Source,
			fmt.Sprintf("Specified member %s on source type %s was not found: %v", o.Source, b.source.Name, err),
			suggestions...)

		return selection{}, false
	}

	return selection{field: field, target: target, source: resolved, origin: OriginOverride}, true
}

// autoMatch asks the matcher for the member's source.
func (b *unitBuild) autoMatch(field *analyze.FieldDescriptor) (selection, bool) {
	res := b.matcher.Candidates(b.source, field.Name)
	if res.Found() {
		return selection{
			field:  field,
			target: mapping.NewFieldPath(field.Name),
			source: *res.Best,
			origin: OriginAuto,
		}, true
	}

	msg := fmt.Sprintf("The member %s on the mapping target type %s was not found on the mapping source type %s",
		field.Name, b.target.Name, b.source.Name)

	suggestions := match.Suggest(field.Name, b.source)
	if tied := res.AmbiguousNames(); len(tied) > 0 {
		msg += "; the flattened source paths " + strings.Join(tied, ", ") + " match equally well"
		suggestions = tied
	}

	b.report(diagnostic.KindSourceMemberNotFound, b.target.Name, field.Name, msg, suggestions...)

	return selection{}, false
}

// reportUnmappedSources reports every source member no assignment reads,
// once per member, in declaration order.
func (b *unitBuild) reportUnmappedSources() {
	for _, f := range b.source.Fields {
		if b.used[f.Name] || b.tm.IgnoreSources.Contains(f.Name) {
			continue
		}

		b.report(diagnostic.KindSourceMemberNotMapped, b.source.Name, f.Name,
			fmt.Sprintf("The member %s on the mapping source type %s is not mapped to any member on the mapping target type %s",
				f.Name, b.source.Name, b.target.Name))
	}
}
