package diagfmt

import (
	"encoding/json"
	"io"

	"bashate/internal/diag"
)

// DiagnosticJSON is one line of the json format.
type DiagnosticJSON struct {
	File     string `json:"file"`
	Line     uint32 `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Text     string `json:"text"`
}

// JSON writes newline-delimited JSON, one object per diagnostic.
type JSON struct {
	enc *json.Encoder
}

func NewJSON(w io.Writer) *JSON {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSON{enc: enc}
}

func (e *JSON) Emit(d diag.Diagnostic) error {
	return e.enc.Encode(DiagnosticJSON{
		File:     d.File,
		Line:     d.Line,
		Column:   1,
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Message:  d.Message,
		Text:     d.Text,
	})
}
