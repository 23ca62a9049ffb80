package plan

import (
	"gopkg.in/yaml.v3"

	"member-mapper/internal/diagnostic"
	"member-mapper/internal/mapping"
)

// ResultDocument is the serialized form of a Result.
type ResultDocument struct {
	Mapping     string               `yaml:"mapping"`
	Valid       bool                 `yaml:"valid"`
	Units       []UnitDocument       `yaml:"units,omitempty"`
	Diagnostics []DiagnosticDocument `yaml:"diagnostics,omitempty"`
}

// UnitDocument is the serialized form of a MappingUnit.
type UnitDocument struct {
	Name             string               `yaml:"name"`
	Source           string               `yaml:"source"`
	Target           string               `yaml:"target"`
	Mode             mapping.MappingMode  `yaml:"mode"`
	Valid            bool                 `yaml:"valid"`
	Initializer      []AssignmentDocument `yaml:"initializer,omitempty"`
	PostConstruction []AssignmentDocument `yaml:"post_construction,omitempty"`
}

// AssignmentDocument is the serialized form of a ResolvedAssignment.
type AssignmentDocument struct {
	Target       string `yaml:"target"`
	Source       string `yaml:"source"`
	Origin       string `yaml:"origin"`
	Conversion   string `yaml:"conversion"`
	Unit         string `yaml:"unit,omitempty"`
	NullHandling string `yaml:"null_handling,omitempty"`
	Default      string `yaml:"default,omitempty"`
	FailurePath  string `yaml:"failure_path,omitempty"`
}

// DiagnosticDocument is the serialized form of a Diagnostic.
type DiagnosticDocument struct {
	Kind        string   `yaml:"kind"`
	Severity    string   `yaml:"severity"`
	TypePair    string   `yaml:"type_pair,omitempty"`
	Subject     string   `yaml:"subject,omitempty"`
	Message     string   `yaml:"message"`
	Suggestions []string `yaml:"suggestions,omitempty"`
}

// Document converts the result for serialization.
func (r *Result) Document() ResultDocument {
	doc := ResultDocument{Mapping: r.Mapping, Valid: r.Valid()}

	for _, u := range r.Units {
		doc.Units = append(doc.Units, unitDocument(u))
	}

	for _, d := range r.Diagnostics.All() {
		doc.Diagnostics = append(doc.Diagnostics, diagnosticDocument(d))
	}

	return doc
}

func unitDocument(u *MappingUnit) UnitDocument {
	doc := UnitDocument{
		Name:   u.Name,
		Source: u.SourceType.Name,
		Target: u.TargetType.Name,
	}

	if u.Plan == nil {
		return doc
	}

	doc.Mode = u.Plan.Mode
	doc.Valid = u.Plan.Valid

	for _, a := range u.Plan.Initializer {
		doc.Initializer = append(doc.Initializer, assignmentDocument(a))
	}

	for _, a := range u.Plan.PostConstruction {
		doc.PostConstruction = append(doc.PostConstruction, assignmentDocument(a))
	}

	return doc
}

func assignmentDocument(a ResolvedAssignment) AssignmentDocument {
	doc := AssignmentDocument{
		Target:      a.TargetPath.String(),
		Source:      a.Source.String(),
		Origin:      a.Origin.String(),
		Conversion:  a.Conversion.String(),
		Default:     a.Default,
		FailurePath: a.FailurePath,
	}

	if a.Unit != nil {
		doc.Unit = a.Unit.Name
	}

	if a.NullHandling != NullHandlingNone {
		doc.NullHandling = a.NullHandling.String()
	}

	return doc
}

func diagnosticDocument(d diagnostic.Diagnostic) DiagnosticDocument {
	subject := d.SubjectType
	if d.SubjectField != "" {
		subject += "." + d.SubjectField
	}

	return DiagnosticDocument{
		Kind:        d.Kind.String(),
		Severity:    d.Severity.String(),
		TypePair:    d.TypePair,
		Subject:     subject,
		Message:     d.Message,
		Suggestions: d.Suggestions,
	}
}

// ExportYAML serializes the results as a YAML sequence of plan documents.
func ExportYAML(results []*Result) ([]byte, error) {
	docs := make([]ResultDocument, 0, len(results))
	for _, r := range results {
		docs = append(docs, r.Document())
	}

	return yaml.Marshal(docs)
}

// ExportSuggestions generates a mapping file that pins every resolved
// assignment as an explicit override, so automatic matches can be reviewed
// and edited. Writable target members left without a source are ignored and
// unread source members are listed in ignore_sources. Each unit is exported
// once; root units keep their mode.
func ExportSuggestions(results []*Result) *mapping.MappingFile {
	mf := &mapping.MappingFile{Version: mapping.CurrentVersion}
	seen := make(map[string]bool)

	for _, r := range results {
		for _, u := range r.Units {
			if u.Plan == nil || seen[u.Key] {
				continue
			}

			seen[u.Key] = true

			tm := exportUnitSuggestions(u)
			if u != r.Root {
				tm.Mode = ""
			}

			mf.Mappings = append(mf.Mappings, tm)
		}
	}

	return mf
}

// exportUnitSuggestions exports a single unit as a TypeMapping.
func exportUnitSuggestions(u *MappingUnit) mapping.TypeMapping {
	p := u.Plan
	tm := mapping.TypeMapping{
		Source: u.SourceType.Name,
		Target: u.TargetType.Name,
		Mode:   p.Mode,
	}

	assigned := make(map[string]bool)
	read := make(map[string]bool)

	for _, a := range p.Assignments() {
		tm.Overrides = append(tm.Overrides, mapping.PathOverride{
			Source: a.Source.String(),
			Target: a.TargetPath.String(),
		})

		assigned[a.TargetPath.Root()] = true
		read[a.Source.Path.Root()] = true
	}

	for _, f := range u.TargetType.Fields {
		if f.CanWrite() && !assigned[f.Name] {
			tm.Ignore = append(tm.Ignore, f.Name)
		}
	}

	for _, f := range u.SourceType.Fields {
		if !read[f.Name] {
			tm.IgnoreSources = append(tm.IgnoreSources, f.Name)
		}
	}

	return tm
}
