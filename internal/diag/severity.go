package diag

// Severity defines how a reported rule violation is treated.
type Severity uint8

const (
	// SevIgnored drops the violation entirely.
	SevIgnored Severity = iota
	// SevWarning is reported but does not fail the run.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevIgnored:
		return "IGNORED"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Letter is the one-letter tag used by the catalog and the long output format.
func (s Severity) Letter() string {
	switch s {
	case SevWarning:
		return "W"
	case SevError:
		return "E"
	}
	return "-"
}
