package diag

// Reporter: минимальный контракт получения находок от сканера.
// Реализации: Sink (классифицирует и печатает), Bag (копит по файлу), MultiReporter (fan-out).
type Reporter interface {
	Report(file string, f Finding)
}

// MultiReporter forwards every finding to each reporter in order.
type MultiReporter []Reporter

func (m MultiReporter) Report(file string, f Finding) {
	for _, r := range m {
		if r != nil {
			r.Report(file, f)
		}
	}
}
