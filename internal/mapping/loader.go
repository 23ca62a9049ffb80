package mapping

import (
	"os"
	"sort"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML mapping file from the given path.
func LoadFile(path string) (*MappingFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read mapping file %s", path)
	}

	return Parse(data)
}

// Parse parses YAML data into a MappingFile.
func Parse(data []byte) (*MappingFile, error) {
	var mf MappingFile

	err := yaml.Unmarshal(data, &mf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse mapping YAML")
	}

	applyDefaults(&mf)
	NormalizeMappingFile(&mf)

	return &mf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *MappingFile) {
	if mf.Version == "" {
		mf.Version = CurrentVersion
	}

	for i := range mf.Mappings {
		tm := &mf.Mappings[i]
		tm.Mode = tm.Mode.OrDefault()
	}
}

// Marshal serializes a MappingFile to YAML.
func Marshal(mf *MappingFile) ([]byte, error) {
	return yaml.Marshal(mf)
}

// WriteFile writes a MappingFile to the given path.
func WriteFile(mf *MappingFile, path string) error {
	data, err := Marshal(mf)
	if err != nil {
		return errors.Wrap(err, "failed to marshal mapping")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write mapping file %s", path)
	}

	return nil
}

// NormalizeTypeMapping folds the 121 shorthand into Overrides. Shorthand
// entries come first, ordered by source path, so the result is deterministic.
func NormalizeTypeMapping(tm *TypeMapping) {
	if len(tm.OneToOne) == 0 {
		return
	}

	sources := make([]string, 0, len(tm.OneToOne))
	for source := range tm.OneToOne {
		sources = append(sources, source)
	}

	sort.Strings(sources)

	expanded := make([]PathOverride, 0, len(sources)+len(tm.Overrides))
	for _, source := range sources {
		expanded = append(expanded, PathOverride{Source: source, Target: tm.OneToOne[source]})
	}

	tm.Overrides = append(expanded, tm.Overrides...)
	tm.OneToOne = nil
}

// NormalizeMappingFile normalizes all type mappings in a file.
func NormalizeMappingFile(mf *MappingFile) {
	for i := range mf.Mappings {
		NormalizeTypeMapping(&mf.Mappings[i])
	}
}
