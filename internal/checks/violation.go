package checks

import "bashate/internal/diag"

// Violation is a rule hit before it is tied to a file and line.
type Violation struct {
	Code diag.Code
	Args []any
}

func violation(code diag.Code, args ...any) Violation {
	return Violation{Code: code, Args: args}
}

// Message renders the catalog template with Args.
func (v Violation) Message() string {
	return v.Code.Format(v.Args...)
}

// Finding attaches v to a line.
func (v Violation) Finding(line uint32, text string) diag.Finding {
	return diag.Finding{
		Code:    v.Code,
		Message: v.Message(),
		Line:    line,
		Text:    text,
	}
}

// LineCheck is a rule evaluated on a single physical line.
type LineCheck func(line string) (Violation, bool)

// PerLine returns the per-line battery in reporting order:
// E001, E006, E010, E011, E020, E041, E042, E043, E044.
func PerLine(maxLineLength int) []LineCheck {
	return []LineCheck{
		TrailingWhitespace,
		LongLine(maxLineLength),
		DoOnSameLine,
		ThenOnSameLine,
		FunctionDecl,
		DeprecatedArithmetic,
		LocalSubshell,
		BareArithmetic,
		NonPOSIXComparison,
	}
}

// Run evaluates checks against line in order.
func Run(checks []LineCheck, line string) []Violation {
	var out []Violation
	for _, c := range checks {
		if v, ok := c(line); ok {
			out = append(out, v)
		}
	}
	return out
}
