package checks

import (
	"strings"

	"bashate/internal/diag"
)

var localSubshellMarkers = []string{"=$(", "=`", `="$(`, "=\"`"}

// DeprecatedArithmetic is E041.
func DeprecatedArithmetic(line string) (Violation, bool) {
	if strings.Contains(line, "$[") {
		return violation(diag.DeprecatedArithmetic), true
	}
	return Violation{}, false
}

// LocalSubshell is E042: "local x=$(cmd)" always succeeds, whatever cmd did.
func LocalSubshell(line string) (Violation, bool) {
	if !strings.HasPrefix(lstrip(line), "local ") {
		return Violation{}, false
	}
	for _, m := range localSubshellMarkers {
		if strings.Contains(line, m) {
			return violation(diag.LocalHidesErrors), true
		}
	}
	return Violation{}, false
}

// BareArithmetic is E043.
func BareArithmetic(line string) (Violation, bool) {
	if strings.HasPrefix(lstrip(line), "((") {
		return violation(diag.BareArithmetic), true
	}
	return Violation{}, false
}

func lstrip(s string) string {
	return strings.TrimLeft(s, " \t\r\n\v\f")
}
