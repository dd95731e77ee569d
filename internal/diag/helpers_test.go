package diag

import (
	"fmt"
	"slices"
	"strings"
)

type reporterFunc func(file string, f Finding)

func (fn reporterFunc) Report(file string, f Finding) {
	fn(file, f)
}

// shortLines печатает по строке на диагностику: "error E001 a.sh:4 msg".
func shortLines(diags []Diagnostic) string {
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("%s %s %s:%d %s", strings.ToLower(d.Severity.String()), d.Code.ID(), d.File, d.Line, d.Message)
	}
	return strings.Join(lines, "\n")
}

func sortedIDs(set IDSet) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
