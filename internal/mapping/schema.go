package mapping

import (
	"slices"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"member-mapper/internal/analyze"
	"member-mapper/internal/common"
)

// CurrentVersion is the only supported mapping schema version.
const CurrentVersion = "1"

// Default option values.
const (
	DefaultMaxFlattenDepth = 4
	DefaultAutoFlatten     = true
)

// MappingFile represents the root of a YAML mapping definition file.
type MappingFile struct {
	// Version of the mapping schema.
	Version string `yaml:"version,omitempty"`

	// Options apply to every mapping in the file.
	Options Options `yaml:"options,omitempty"`

	// Types declares the structural type model.
	Types []TypeDef `yaml:"types,omitempty"`

	// Mappings is a list of type pair mappings.
	Mappings []TypeMapping `yaml:"mappings"`
}

// FindMapping returns the declared mapping for the given type pair, or nil.
// Names are compared after resolution against the graph.
func (mf *MappingFile) FindMapping(source, target string, graph *analyze.TypeGraph) *TypeMapping {
	if mf == nil {
		return nil
	}

	for i := range mf.Mappings {
		tm := &mf.Mappings[i]

		src := ResolveTypeName(tm.Source, graph)
		dst := ResolveTypeName(tm.Target, graph)

		if src != nil && dst != nil && src.Name == source && dst.Name == target {
			return tm
		}
	}

	return nil
}

// TypeDef declares a structured type.
type TypeDef struct {
	Name   string     `yaml:"name"`
	Fields []FieldDef `yaml:"fields,omitempty"`
}

// FieldDef declares a field of a TypeDef.
type FieldDef struct {
	Name string `yaml:"name"`
	// Type is the declared type, e.g. "string", "*C", "[]Item".
	Type     string `yaml:"type"`
	Nullable bool   `yaml:"nullable,omitempty"`
	// Accessor is one of settable (default), readonly, init, required.
	Accessor string `yaml:"accessor,omitempty"`
}

// NullPolicy selects what happens when a nullable source feeds a non-null target.
type NullPolicy string

const (
	// NullPolicyStrict fails at the point of access.
	NullPolicyStrict NullPolicy = "strict"
	// NullPolicyLenient substitutes the target type's zero value.
	NullPolicyLenient NullPolicy = "lenient"
)

// IsValid returns true if the policy is a recognized value. Empty means strict.
func (p NullPolicy) IsValid() bool {
	return p == "" || p == NullPolicyStrict || p == NullPolicyLenient
}

// MappingMode tells whether the target is constructed by the mapping.
type MappingMode string

const (
	// ModeNew constructs the target, so an initializer context exists.
	ModeNew MappingMode = "new"
	// ModeExisting maps into an already constructed target.
	ModeExisting MappingMode = "existing"
)

// IsValid returns true if the mode is a recognized value. Empty means new.
func (m MappingMode) IsValid() bool {
	return m == "" || m == ModeNew || m == ModeExisting
}

// OrDefault returns ModeNew for the empty mode.
func (m MappingMode) OrDefault() MappingMode {
	if m == "" {
		return ModeNew
	}

	return m
}

// Options are the process-wide resolution switches.
type Options struct {
	NullPolicy NullPolicy `yaml:"null_policy,omitempty"`
	// AutoFlatten is nil when unset; see Flatten.
	AutoFlatten     *bool `yaml:"auto_flatten,omitempty"`
	MaxFlattenDepth int   `yaml:"max_flatten_depth,omitempty"`
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{}.WithDefaults()
}

// WithDefaults returns a copy with unset values replaced by defaults.
func (o Options) WithDefaults() Options {
	if o.NullPolicy == "" {
		o.NullPolicy = NullPolicyStrict
	}

	if o.AutoFlatten == nil {
		flatten := DefaultAutoFlatten
		o.AutoFlatten = &flatten
	}

	if o.MaxFlattenDepth <= 0 {
		o.MaxFlattenDepth = DefaultMaxFlattenDepth
	}

	return o
}

// Override returns a copy where every value set in other replaces ours.
func (o Options) Override(other Options) Options {
	if other.NullPolicy != "" {
		o.NullPolicy = other.NullPolicy
	}

	if other.AutoFlatten != nil {
		flatten := *other.AutoFlatten
		o.AutoFlatten = &flatten
	}

	if other.MaxFlattenDepth > 0 {
		o.MaxFlattenDepth = other.MaxFlattenDepth
	}

	return o
}

// Flatten reports whether automatic flattening is enabled.
func (o Options) Flatten() bool {
	if o.AutoFlatten == nil {
		return DefaultAutoFlatten
	}

	return *o.AutoFlatten
}

// Lenient reports whether null mismatches substitute a default.
func (o Options) Lenient() bool {
	return o.NullPolicy == NullPolicyLenient
}

// PathOverride explicitly maps a source path to a target path.
type PathOverride struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
}

// String returns "source -> target".
func (o PathOverride) String() string {
	return o.Source + " -> " + o.Target
}

// TypeMapping defines how to map one source type to one target type.
type TypeMapping struct {
	// Source type name (e.g., "store.Order" or full path).
	Source string `yaml:"source"`

	// Target type name (e.g., "warehouse.Order" or full path).
	Target string `yaml:"target"`

	// Mode is new (default) or existing.
	Mode MappingMode `yaml:"mode,omitempty"`

	// OneToOne maps source paths to target paths.
	// It is folded into Overrides by NormalizeTypeMapping.
	OneToOne map[string]string `yaml:"121,omitempty"`

	// Overrides are explicit path overrides in declaration order.
	Overrides []PathOverride `yaml:"overrides,omitempty"`

	// Ignore lists target fields that must not be mapped.
	Ignore StringOrArray `yaml:"ignore,omitempty"`

	// IgnoreSources lists source fields that are intentionally unused.
	IgnoreSources StringOrArray `yaml:"ignore_sources,omitempty"`
}

// Name returns "source->target".
func (tm *TypeMapping) Name() string {
	return tm.Source + "->" + tm.Target
}

// IsIgnored returns true if the target field is ignored.
func (tm *TypeMapping) IsIgnored(target string) bool {
	return tm.Ignore.Contains(target)
}

// StringOrArray is a type that can be unmarshaled from either a string or an array of strings.
type StringOrArray []string

// UnmarshalYAML accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return errors.Newf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if common.IsSingle(s) {
		return s[0], nil
	}

	return []string(s), nil
}

// Contains returns true if the array contains the given string.
func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}
