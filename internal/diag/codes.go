package diag

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Code identifies a rule. Its printable form is ID(), e.g. E001.
type Code uint16

const (
	// Неизвестное правило
	UnknownCode Code = 0

	// Пробелы и отступы
	TrailingWhitespace   Code = 1
	TabIndent            Code = 2
	IndentNotMultipleOf4 Code = 3
	MissingFinalNewline  Code = 4
	MissingShebang       Code = 5
	LineTooLong          Code = 6

	// Расположение ключевых слов
	DoNotOnSameLine     Code = 10
	ThenNotOnSameLine   Code = 11
	UnterminatedHeredoc Code = 12
	FunctionDeclStyle   Code = 20

	// Синтаксис и подозрительные конструкции
	SyntaxError          Code = 40
	DeprecatedArithmetic Code = 41
	LocalHidesErrors     Code = 42
	BareArithmetic       Code = 43
	NonPOSIXComparison   Code = 44
)

// Rule is the catalog entry for a Code.
type Rule struct {
	Code        Code
	Message     string // short text, may carry one format verb
	Description string // long text, empty when there is nothing to add
	Default     Severity
}

var rules = map[Code]Rule{
	TrailingWhitespace: {
		Message: "Trailing Whitespace",
		Default: SevError,
	},
	TabIndent: {
		Message:     "Tab indents",
		Description: "Spaces are preferred to tabs in source files.",
		Default:     SevError,
	},
	IndentNotMultipleOf4: {
		Message:     "Indent not multiple of 4",
		Description: "Four spaces should be used to offset logical blocks.",
		Default:     SevError,
	},
	MissingFinalNewline: {
		Message:     "File did not end with a newline",
		Description: "It is conventional to have a single newline ending files.",
		Default:     SevError,
	},
	MissingShebang: {
		Message: "File does not begin with #! or have .sh suffix",
		Description: lines(
			"This can be useful for tools that use either the interpreter",
			"directive or the file-exension to select highlighting mode,",
			"syntax mode or determine MIME-type, such as file, gerrit and",
			"editors.",
		),
		Default: SevWarning,
	},
	LineTooLong: {
		Message: "Line too long",
		Description: lines(
			"This check mimics the widely accepted convention from PEP8 and",
			"many other places that lines longer than 79 columns can not",
			"only cause problems when reading/writing code, but also often",
			"indicates a bad smell, e.g. too many levels of indentation due",
			"to overly complex functions which require refactoring into",
			"smaller chunks.",
		),
		Default: SevWarning,
	},
	DoNotOnSameLine: {
		Message: `The "do" should be on same line as %s`,
		Description: lines(
			`Ensure consistency of "do" directive being on the same line as`,
			"it's command.  For example:",
			"",
			"   for i in $(seq 1 100);",
			"   do",
			`      echo "hi"`,
			"   done",
			"",
			"will trigger this error",
		),
		Default: SevError,
	},
	ThenNotOnSameLine: {
		Message:     "Then keyword is not on same line as if or elif keyword",
		Description: "Similar to E010, this ensures consistency of if/elif statements",
		Default:     SevError,
	},
	UnterminatedHeredoc: {
		Message: "here-document at line %d delimited by end-of-file",
		Description: lines(
			"This check ensures the closure of heredocs (<<EOF directives).",
			"Bash will warn when a heredoc is delimited by end-of-file, but",
			"it is easily missed and can cause unexpected issues when a",
			"file is sourced.",
		),
		Default: SevError,
	},
	FunctionDeclStyle: {
		Message: "Function declaration not in format ^function name {$",
		Description: lines(
			"There are several equivalent ways to define functions in Bash.",
			"This check is for consistency.",
		),
		Default: SevError,
	},
	SyntaxError: {
		Message: "Syntax error",
		Description: lines(
			"`bash -n` determined that there was a syntax error preventing",
			"the script from parsing correctly and running.",
		),
		Default: SevError,
	},
	DeprecatedArithmetic: {
		Message: "Arithmetic expansion using $[ is deprecated for $((",
		Description: lines(
			"$[ is deprecated and not explained in the Bash manual.  $((",
			"should be used for arithmetic.",
		),
		Default: SevError,
	},
	LocalHidesErrors: {
		Message: "local declaration hides errors",
		Description: lines(
			`The return value of "local" is always 0; errors in subshells`,
			`used for declaration are thus hidden and will not trigger "set -e".`,
		),
		Default: SevWarning,
	},
	BareArithmetic: {
		Message: "Arithmetic compound has inconsistent return semantics",
		Description: lines(
			`The return value of ((expr)) is 1 if "expr" evalues to zero,`,
			`otherwise 0.  Combined with "set -e", this can be quite`,
			"confusing when something like ((counter++)) evaluates to zero,",
			"making the arithmetic evaluation return 1 and triggering the",
			"an error failure.  It is therefore best to use assignment with",
			"the $(( operator.",
		),
		Default: SevWarning,
	},
	NonPOSIXComparison: {
		Message: "Use [[ for non-POSIX comparisions",
		Description: lines(
			"[ is the POSIX test operator, while [[ is the bash keyword",
			"comparision operator.  Comparisons such as =~, < and > require",
			"the use of [[.",
		),
		Default: SevError,
	},
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n")
}

// defaultErrors/defaultWarnings разбивают каталог по умолчательной серьёзности один раз.
var defaultErrors, defaultWarnings = partitionDefaults()

func partitionDefaults() (errs, warns map[string]struct{}) {
	errs = make(map[string]struct{})
	warns = make(map[string]struct{})
	for code, r := range rules {
		switch r.Default {
		case SevWarning:
			warns[code.ID()] = struct{}{}
		case SevError:
			errs[code.ID()] = struct{}{}
		}
	}
	return errs, warns
}

// ID returns the stable rule identifier, e.g. "E003".
func (c Code) ID() string {
	return fmt.Sprintf("E%03d", int(c))
}

func (c Code) String() string {
	return c.ID()
}

// Rule returns the catalog entry for c.
func (c Code) Rule() (Rule, bool) {
	r, ok := rules[c]
	if !ok {
		return Rule{}, false
	}
	r.Code = c
	return r, true
}

// Title returns the short message template.
func (c Code) Title() string {
	r, ok := c.Rule()
	if !ok {
		return "Unknown rule"
	}
	return r.Message
}

// Format renders the short message with args substituted.
func (c Code) Format(args ...any) string {
	if len(args) == 0 {
		return c.Title()
	}
	return fmt.Sprintf(c.Title(), args...)
}

// ParseCode converts an identifier such as "E010" into a known Code.
func ParseCode(id string) (Code, bool) {
	id = strings.TrimSpace(id)
	if len(id) < 2 || id[0] != 'E' {
		return UnknownCode, false
	}
	n, err := strconv.ParseUint(id[1:], 10, 16)
	if err != nil {
		return UnknownCode, false
	}
	code := Code(n)
	if _, ok := rules[code]; !ok || code.ID() != id {
		return UnknownCode, false
	}
	return code, true
}

// Lookup returns the rule registered under id.
func Lookup(id string) (Rule, bool) {
	code, ok := ParseCode(id)
	if !ok {
		return Rule{}, false
	}
	return code.Rule()
}

// Codes lists every catalog code in ascending order.
func Codes() []Code {
	out := make([]Code, 0, len(rules))
	for code := range rules {
		out = append(out, code)
	}
	slices.Sort(out)
	return out
}

// IsDefaultError reports whether the catalog classifies id as an error.
func IsDefaultError(id string) bool {
	_, ok := defaultErrors[id]
	return ok
}

// IsDefaultWarning reports whether the catalog classifies id as a warning.
func IsDefaultWarning(id string) bool {
	_, ok := defaultWarnings[id]
	return ok
}
