package checks

import (
	"regexp"
	"strings"

	"bashate/internal/diag"
)

var (
	loopRe        = regexp.MustCompile(`^\s*(for|while|until)\s`)
	awkForRe      = regexp.MustCompile(`for \([^\(]`)
	doSameLineRe  = regexp.MustCompile(`;\s*do$`)
	ifRe          = regexp.MustCompile(`^\s*(el)?if \[`)
	thenSameLine  = regexp.MustCompile(`;\s*then$`)
	funcKeywordRe = regexp.MustCompile(`^function [\w-]* \{$`)
	funcBareRe    = regexp.MustCompile(`^\s*?\(\)\s*?\{`)
)

// DoOnSameLine is E010. The message names the loop keyword.
func DoOnSameLine(line string) (Violation, bool) {
	if IsContinuation(line) {
		return Violation{}, false
	}
	m := loopRe.FindStringSubmatch(line)
	if m == nil {
		return Violation{}, false
	}
	keyword := m[1]
	// "for ((" это bash, а "for (" скорее всего встроенный awk
	if keyword == "for" && awkForRe.MatchString(line) {
		return Violation{}, false
	}
	if doSameLineRe.MatchString(line) {
		return Violation{}, false
	}
	return violation(diag.DoNotOnSameLine, keyword), true
}

// ThenOnSameLine is E011.
func ThenOnSameLine(line string) (Violation, bool) {
	if IsContinuation(line) || !ifRe.MatchString(line) {
		return Violation{}, false
	}
	if thenSameLine.MatchString(line) {
		return Violation{}, false
	}
	return violation(diag.ThenNotOnSameLine), true
}

// FunctionDecl is E020. Accepted forms are "function name {" and
// "name() {"; "function name() {" and a nameless "() {" are not.
func FunctionDecl(line string) (Violation, bool) {
	if IsContinuation(line) {
		return Violation{}, false
	}
	var failed bool
	if strings.HasPrefix(line, "function") {
		failed = !funcKeywordRe.MatchString(line)
	} else {
		failed = funcBareRe.MatchString(line)
	}
	if failed {
		return violation(diag.FunctionDeclStyle), true
	}
	return Violation{}, false
}
