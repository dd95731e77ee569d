package checks

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"bashate/internal/diag"
)

// DefaultMaxLineLength is the E006 limit when none is configured.
const DefaultMaxLineLength = 79

var (
	trailingWSRe = regexp.MustCompile(`[ \t]+$`)
	indentRe     = regexp.MustCompile(`^[ \t]+`)
	argOffsetRe  = regexp.MustCompile(`^(?P<indent>[ \t]+)?(?P<cmd>\S+)(?P<ws>\s+)(?P<arg>\S+)`)
)

// TrailingWhitespace is E001.
func TrailingWhitespace(line string) (Violation, bool) {
	if trailingWSRe.MatchString(line) {
		return violation(diag.TrailingWhitespace), true
	}
	return Violation{}, false
}

// LongLine returns the E006 check for the given limit; a limit below 1 means
// DefaultMaxLineLength. Length is counted in runes.
func LongLine(limit int) LineCheck {
	if limit < 1 {
		limit = DefaultMaxLineLength
	}
	return func(line string) (Violation, bool) {
		if utf8.RuneCountInString(strings.TrimRight(line, "\r\n")) > limit {
			return violation(diag.LineTooLong), true
		}
		return Violation{}, false
	}
}

// Located is a Violation on the i-th line of a logical line.
type Located struct {
	Index int
	Violation
}

// Indentation runs E002 and E003 over the constituent lines of one logical
// line. The first line, and every line when the first has no argument, must
// be indented by a multiple of four. Later lines may instead line up with the
// first argument of the first line:
//
//	foobar_cmd bar baz \
//	           moo boo
//
// A tab counts as one column; E002 and E003 are independent.
func Indentation(lines []string) []Located {
	if len(lines) == 0 {
		return nil
	}
	argOffset, hasArg := argumentOffset(lines[0])

	var out []Located
	for i, line := range lines {
		indent := indentRe.FindString(line)
		if indent == "" {
			continue
		}
		if strings.Contains(indent, "\t") {
			out = append(out, Located{Index: i, Violation: violation(diag.TabIndent)})
		}

		offset := len(indent)
		bad := offset%4 != 0
		if i > 0 && hasArg && offset == argOffset {
			bad = false
		}
		if bad {
			out = append(out, Located{Index: i, Violation: violation(diag.IndentNotMultipleOf4)})
		}
	}
	return out
}

// argumentOffset returns the column of the first argument of the command on
// line, counted in characters.
func argumentOffset(line string) (int, bool) {
	m := argOffsetRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	indent := m[argOffsetRe.SubexpIndex("indent")]
	cmd := m[argOffsetRe.SubexpIndex("cmd")]
	ws := m[argOffsetRe.SubexpIndex("ws")]
	return len(indent) + utf8.RuneCountInString(cmd) + utf8.RuneCountInString(ws), true
}
