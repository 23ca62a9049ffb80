package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"member-mapper/internal/diagnostic"
	"member-mapper/internal/plan"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	validColor   = color.New(color.FgGreen, color.Bold)
	invalidColor = color.New(color.FgRed, color.Bold)
	sectionColor = color.New(color.Faint)

	severityColors = map[diagnostic.Severity]*color.Color{
		diagnostic.SeverityInfo:    color.New(color.FgCyan),
		diagnostic.SeverityWarning: color.New(color.FgYellow, color.Bold),
		diagnostic.SeverityError:   color.New(color.FgRed, color.Bold),
	}
)

// writeReport prints the plans and diagnostics of every result.
func writeReport(w io.Writer, results []*plan.Result) {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}

		status := validColor.Sprint("ok")
		if !r.Valid() {
			status = invalidColor.Sprint("invalid")
		}

		fmt.Fprintf(w, "%s  %s\n", titleColor.Sprint(r.Mapping), status)

		for _, u := range r.Units {
			writeUnit(w, u, u == r.Root)
		}

		writeDiagnostics(w, r.Diagnostics.All())
	}
}

func writeUnit(w io.Writer, u *plan.MappingUnit, root bool) {
	if !root {
		fmt.Fprintf(w, "  %s %s\n", sectionColor.Sprint("nested"), u.Name)
	}

	if u.Plan == nil {
		return
	}

	writeSection(w, "initializer", u.Plan.Initializer)
	writeSection(w, "post-construction", u.Plan.PostConstruction)
}

func writeSection(w io.Writer, title string, list []plan.ResolvedAssignment) {
	if len(list) == 0 {
		return
	}

	fmt.Fprintf(w, "    %s\n", sectionColor.Sprint(title+":"))

	for _, a := range list {
		fmt.Fprintf(w, "      %s <- %s (%s)\n", a.TargetPath, a.Source, describe(a))
	}
}

// describe renders the origin, conversion and null handling of an assignment.
func describe(a plan.ResolvedAssignment) string {
	parts := []string{a.Origin.String(), a.Conversion.String()}

	if a.Unit != nil {
		parts = append(parts, "via "+a.Unit.Name)
	}

	switch a.NullHandling {
	case plan.NullHandlingThrow:
		parts = append(parts, "throw if "+a.FailurePath+" is null")
	case plan.NullHandlingDefault:
		parts = append(parts, "default "+a.Default)
	}

	return strings.Join(parts, ", ")
}

func writeDiagnostics(w io.Writer, diags []diagnostic.Diagnostic) {
	for _, d := range diags {
		c, ok := severityColors[d.Severity]
		if !ok {
			c = severityColors[diagnostic.SeverityInfo]
		}

		fmt.Fprintf(w, "  %s %s\n", c.Sprintf("%-7s", d.Severity), d)
	}
}
