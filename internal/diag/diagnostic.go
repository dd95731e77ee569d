package diag

// Finding is a rule violation before it has been classified.
type Finding struct {
	Code    Code
	Message string
	Line    uint32 // 1-based
	Text    string // offending line, may be empty
}

// NewFinding builds a Finding whose message is the rule template filled with args.
func NewFinding(code Code, line uint32, text string, args ...any) Finding {
	return Finding{
		Code:    code,
		Message: code.Format(args...),
		Line:    line,
		Text:    text,
	}
}

// Diagnostic is a classified Finding attached to its file.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	File     string
	Line     uint32
	Text     string
}
