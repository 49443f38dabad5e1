// Package report renders a DependencyAnalysis as JSON or as the
// multi-section human-readable text layout. It is a pure formatting
// pass; no decision logic lives here.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"cratescope/internal/types"
)

const FormatJSON = "json"

// Render writes the analysis to w. Format "json" emits indented JSON;
// any other value emits the text report.
func Render(w io.Writer, analysis types.DependencyAnalysis, format string) error {
	if format == FormatJSON {
		return renderJSON(w, analysis)
	}
	return renderText(w, analysis)
}

func renderJSON(w io.Writer, analysis types.DependencyAnalysis) error {
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode analysis").
			WithCause(err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func renderText(w io.Writer, analysis types.DependencyAnalysis) error {
	fmt.Fprintln(w, "\nDependency Analysis Results:")
	fmt.Fprintln(w, "==========================")
	fmt.Fprintf(w, "Total Dependencies: %d\n", analysis.TotalDependencies)

	fmt.Fprintln(w, "\nDirect Dependencies:")
	for _, dep := range analysis.DirectDependencies {
		fmt.Fprintf(w, "- %s (%s)\n", dep.Name, dep.Version)
	}

	if len(analysis.SecurityIssues) == 0 {
		return nil
	}
	fmt.Fprintln(w, "\nSecurity Issues Found:")
	fmt.Fprintln(w, "=====================")
	for _, name := range sortedPackageNames(analysis.SecurityIssues) {
		issues := analysis.SecurityIssues[name]
		fmt.Fprintf(w, "\n%s has %d issues:\n", name, len(issues))
		for _, issue := range issues {
			fmt.Fprintf(w, "  - [%s] %s\n", issue.Severity, issue.Description)
			if issue.FixVersion != nil {
				fmt.Fprintf(w, "    Fix available in version %s\n", *issue.FixVersion)
			}
		}
	}
	return nil
}

func sortedPackageNames(issues map[string][]types.SecurityIssue) []string {
	names := make([]string, 0, len(issues))
	for name := range issues {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
