package diag

import "strings"

// IDSet is a set of rule identifiers as supplied by the user. Unknown
// identifiers are kept; they simply never match a reported rule.
type IDSet map[string]struct{}

// ParseIDList splits a list such as "E001,E002|E011" into a set. Both ','
// and '|' separate entries and may be mixed.
func ParseIDList(s string) IDSet {
	set := make(IDSet)
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '|'
	})
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		set[f] = struct{}{}
	}
	return set
}

// Has matches whole identifiers only: "E01" does not match "E010".
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Overrides holds the caller supplied severity lists for one run.
type Overrides struct {
	Ignore IDSet
	Warn   IDSet
	Error  IDSet
}

// Classify decides how a violation of code is reported. Precedence:
// ignore, then forced error, then catalog warning, then forced warning,
// otherwise error.
func Classify(code Code, o Overrides) Severity {
	id := code.ID()
	if o.Ignore.Has(id) {
		return SevIgnored
	}
	if o.Error.Has(id) {
		return SevError
	}
	if IsDefaultWarning(id) {
		return SevWarning
	}
	if o.Warn.Has(id) {
		return SevWarning
	}
	return SevError
}

// Classify is a shortcut for Classify(code, o).
func (o Overrides) Classify(code Code) Severity {
	return Classify(code, o)
}
