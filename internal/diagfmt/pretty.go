package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"bashate/internal/diag"
)

// palette раскрашивает идентификатор правила по серьёзности.
type palette struct {
	err  *color.Color
	warn *color.Color
	dim  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:  color.New(color.FgRed, color.Bold),
		warn: color.New(color.FgYellow, color.Bold),
		dim:  color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity, s string) string {
	if sev == diag.SevWarning {
		return p.warn.Sprint(s)
	}
	return p.err.Sprint(s)
}

// PEP8 writes "file:line:1: E001 message".
type PEP8 struct {
	w       io.Writer
	palette palette
}

func (e *PEP8) Emit(d diag.Diagnostic) error {
	_, err := fmt.Fprintf(e.w, "%s:%d:1: %s %s\n", d.File, d.Line, e.palette.severity(d.Severity, d.Code.ID()), d.Message)
	return err
}

// Long writes the legacy two-line layout:
//
//	[E] E001: Trailing Whitespace: 'echo foo '
//	 - script.sh : L4
type Long struct {
	w       io.Writer
	palette palette
}

func (e *Long) Emit(d diag.Diagnostic) error {
	tag := e.palette.severity(d.Severity, fmt.Sprintf("[%s] %s", d.Severity.Letter(), d.Code.ID()))
	_, err := fmt.Fprintf(e.w, "%s: %s: '%s'\n%s\n", tag, d.Message, d.Text,
		e.palette.dim.Sprintf(" - %s : L%d", d.File, d.Line))
	return err
}
