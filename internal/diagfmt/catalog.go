package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"bashate/internal/diag"
)

const catalogTitle = "Available bashate checks"

// RenderCatalog prints every rule with its default severity and long
// description:
//
//	 [E] E001 : Trailing Whitespace
//	 [E] E002 : Tab indents
//	            Spaces are preferred to tabs in source files.
func RenderCatalog(w io.Writer, opts Options) error {
	title := catalogTitle
	if opts.Color {
		title = lipgloss.NewRenderer(w).NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Render(title)
	}
	underline := strings.Repeat("-", runewidth.StringWidth(catalogTitle))

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s\n%s\n\n", title, underline)

	p := newPalette(opts.Color)
	for _, code := range diag.Codes() {
		rule, _ := code.Rule()
		prefix := fmt.Sprintf(" [%s] %s : ", rule.Default.Letter(), code.ID())
		indent := strings.Repeat(" ", runewidth.StringWidth(prefix))

		tag := p.severity(rule.Default, fmt.Sprintf("[%s]", rule.Default.Letter()))
		fmt.Fprintf(&sb, " %s %s : %s\n", tag, code.ID(), rule.Message)
		if rule.Description != "" {
			for _, line := range strings.Split(rule.Description, "\n") {
				sb.WriteString(strings.TrimRight(indent+line, " "))
				sb.WriteString("\n")
			}
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Summary prints the run totals.
func Summary(w io.Writer, errors, warnings int) error {
	_, err := fmt.Fprintf(w, "%d bashate warning(s) found\n%d bashate error(s) found\n", warnings, errors)
	return err
}
