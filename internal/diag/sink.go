package diag

// Emitter renders a classified diagnostic to the reporting stream.
type Emitter interface {
	Emit(d Diagnostic) error
}

// Sink applies the severity policy to incoming findings, keeps the run
// counters and hands every surviving diagnostic to the emitter as soon as it
// arrives. A Sink belongs to exactly one run.
type Sink struct {
	overrides Overrides
	emitter   Emitter
	errors    int
	warnings  int
	err       error
}

// NewSink creates a Sink. A nil emitter only counts.
func NewSink(o Overrides, e Emitter) *Sink {
	return &Sink{overrides: o, emitter: e}
}

// Report classifies f and, unless it is ignored, counts and emits it.
func (s *Sink) Report(file string, f Finding) {
	sev := s.overrides.Classify(f.Code)
	switch sev {
	case SevIgnored:
		return
	case SevWarning:
		s.warnings++
	default:
		s.errors++
	}
	if s.emitter == nil || s.err != nil {
		return
	}
	d := Diagnostic{
		Severity: sev,
		Code:     f.Code,
		Message:  f.Message,
		File:     file,
		Line:     f.Line,
		Text:     f.Text,
	}
	if err := s.emitter.Emit(d); err != nil {
		s.err = err
	}
}

// Errors returns the number of diagnostics reported as errors.
func (s *Sink) Errors() int {
	return s.errors
}

// Warnings returns the number of diagnostics reported as warnings.
func (s *Sink) Warnings() int {
	return s.warnings
}

// Err returns the first emitter failure, if any.
func (s *Sink) Err() error {
	return s.err
}

// Collector is an Emitter that keeps diagnostics in memory.
type Collector struct {
	Items []Diagnostic
}

func (c *Collector) Emit(d Diagnostic) error {
	c.Items = append(c.Items, d)
	return nil
}
