package driver

import (
	"context"
	"fmt"

	"bashate/internal/checks"
	"bashate/internal/diag"
	"bashate/internal/source"
	"bashate/internal/trace"
)

type scanState uint8

const (
	stateNormal scanState = iota
	stateHeredoc
	stateContinuation
)

// scanner folds the physical lines of one file into logical lines and runs
// every check over them. One scanner serves exactly one file.
type scanner struct {
	file    *source.File
	report  diag.Reporter
	perLine []checks.LineCheck

	state    scanState
	token    string // ожидаемый терминатор heredoc
	openLine uint32 // строка, где heredoc открыт
	logical  []source.Line

	// syntaxRan: проверка синтаксиса отработала, свой E012 не нужен
	syntaxRan bool
	// externalHeredoc: E012 уже пришёл от проверки синтаксиса
	externalHeredoc bool

	tracer trace.Tracer
	parent uint64
}

// ScanFile checks one loaded file and reports every finding to r, in
// source order. syntaxFindings come from the external syntax check and are
// reported right after E005. When syntaxRan is set the shell is trusted with
// unterminated here-documents and the scanner's own E012 is not reported.
func ScanFile(ctx context.Context, file *source.File, maxLineLength int, syntaxRan bool, syntaxFindings []diag.Finding, r diag.Reporter) {
	s := &scanner{
		file:      file,
		report:    r,
		perLine:   checks.PerLine(maxLineLength),
		syntaxRan: syntaxRan,
		tracer:    trace.FromContext(ctx),
		parent:    trace.ParentFrom(ctx),
	}
	s.run(syntaxFindings)
}

func (s *scanner) run(syntaxFindings []diag.Finding) {
	lines := s.file.Lines()

	if len(lines) > 0 {
		if v, ok := checks.Shebang(s.file.Path, lines[0].Text); ok {
			s.emit(v.Finding(lines[0].Number, lines[0].Text))
		}
	}
	for _, f := range syntaxFindings {
		if f.Code == diag.UnterminatedHeredoc {
			s.externalHeredoc = true
		}
		if f.Text == "" {
			f.Text = s.file.GetLine(f.Line)
		}
		s.emit(f)
	}

	for _, ln := range lines {
		s.line(ln)
	}
	s.finish(lines)
}

func (s *scanner) line(ln source.Line) {
	if s.state != stateHeredoc {
		// комментарии внутри heredoc могут быть частью встроенного скрипта
		if checks.IsComment(ln.Text) {
			return
		}
		ln.Text = checks.StripInlineComment(ln.Text)
	}

	switch s.state {
	case stateHeredoc:
		if checks.EndsHeredoc(ln.Text, s.token) {
			s.state = stateNormal
			s.token = ""
		}
	case stateContinuation:
		s.logical = append(s.logical, ln)
		if !checks.IsContinuation(ln.Text) {
			s.state = stateNormal
			s.flush()
		}
	default:
		if token, ok := checks.HeredocToken(ln.Text); ok {
			s.state = stateHeredoc
			s.token = token
			s.openLine = ln.Number
			return
		}
		s.logical = append(s.logical[:0], ln)
		if checks.IsContinuation(ln.Text) {
			s.state = stateContinuation
			return
		}
		s.flush()
	}
}

// flush runs the checks over the buffered logical line.
func (s *scanner) flush() {
	if len(s.logical) == 0 {
		return
	}
	texts := make([]string, len(s.logical))
	for i, ln := range s.logical {
		texts[i] = ln.Text
	}

	for _, loc := range checks.Indentation(texts) {
		ln := s.logical[loc.Index]
		s.emit(loc.Finding(ln.Number, ln.Text))
	}
	for _, ln := range s.logical {
		for _, v := range checks.Run(s.perLine, ln.Text) {
			s.emit(v.Finding(ln.Number, ln.Text))
		}
	}

	first, last := s.logical[0].Number, s.logical[len(s.logical)-1].Number
	trace.Point(s.tracer, trace.ScopeLine, "line", fmt.Sprintf("%s:%d-%d", s.file.Path, first, last), s.parent)
	s.logical = s.logical[:0]
}

func (s *scanner) finish(lines []source.Line) {
	switch s.state {
	case stateHeredoc:
		if !s.syntaxRan && !s.externalHeredoc {
			f := diag.NewFinding(diag.UnterminatedHeredoc, s.openLine, s.file.GetLine(s.openLine), s.openLine)
			s.emit(f)
		}
	case stateContinuation:
		s.flush()
	}
	s.state = stateNormal

	if len(lines) == 0 {
		return
	}
	last := lines[len(lines)-1]
	if v, ok := checks.FinalNewline(last.HasNewline); ok {
		s.emit(v.Finding(last.Number, last.Text))
	}
}

func (s *scanner) emit(f diag.Finding) {
	s.report.Report(s.file.Path, f)
}
