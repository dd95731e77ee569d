package checks

import (
	"regexp"
	"strings"
)

var (
	continuationRe = regexp.MustCompile(`\\\s*$`)
	// <<EOF, <<'EOF' и <<"EOF"; кавычки входят в синтаксис, токен без них
	heredocStartRe = regexp.MustCompile(`[^<]<<\s*(['"]?)(\w+)(['"]?)`)
)

// IsContinuation reports whether line ends with a backslash followed only by
// optional whitespace.
func IsContinuation(line string) bool {
	return continuationRe.MatchString(line)
}

// HeredocToken returns the here-document delimiter opened on line, if any.
// "<<<" here-strings and a "<<" at the very start of the line do not count.
func HeredocToken(line string) (string, bool) {
	m := heredocStartRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[2], true
}

// EndsHeredoc reports whether line is the terminator for token: the token at
// column 0 followed only by whitespace.
func EndsHeredoc(line, token string) bool {
	if token == "" || !strings.HasPrefix(line, token) {
		return false
	}
	return strings.TrimLeft(line[len(token):], " \t\r\n\v\f") == ""
}

// IsComment reports whether the line holds nothing but a comment.
func IsComment(line string) bool {
	return strings.HasPrefix(lstrip(line), "#")
}

// StripInlineComment drops everything from the first " #" and trims the
// remaining trailing whitespace. Lines without " #" come back unchanged.
func StripInlineComment(line string) string {
	before, _, found := strings.Cut(line, " #")
	if !found {
		return line
	}
	return strings.TrimRight(before, " \t\r\n\v\f")
}
