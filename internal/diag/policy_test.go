package diag

import (
	"slices"
	"testing"
)

func TestParseIDList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"single", "E001", []string{"E001"}},
		{"comma", "E001,E011", []string{"E001", "E011"}},
		{"pipe", "E001|E011", []string{"E001", "E011"}},
		{"mixed", "E001|E002,E003|E011", []string{"E001", "E002", "E003", "E011"}},
		{"blanks", " E001 , ,|E006 ", []string{"E001", "E006"}},
		{"duplicates", "E001,E001", []string{"E001"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sortedIDs(ParseIDList(tt.in))
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseIDList(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIDSetMatchesWholeIdentifiers(t *testing.T) {
	set := ParseIDList("E01")
	if set.Has("E010") || set.Has("E011") {
		t.Fatal("E01 must not match E010/E011")
	}
	if !set.Has("E01") {
		t.Fatal("E01 must match itself")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		code Code
		o    Overrides
		want Severity
	}{
		{"default error", TrailingWhitespace, Overrides{}, SevError},
		{"default warning", LineTooLong, Overrides{}, SevWarning},
		{"ignore error", TrailingWhitespace, Overrides{Ignore: ParseIDList("E001")}, SevIgnored},
		{"ignore warning", LineTooLong, Overrides{Ignore: ParseIDList("E006")}, SevIgnored},
		{"ignore beats error", TrailingWhitespace, Overrides{Ignore: ParseIDList("E001"), Error: ParseIDList("E001")}, SevIgnored},
		{"error escalates warning", LocalHidesErrors, Overrides{Error: ParseIDList("E042")}, SevError},
		{"error beats warn", TrailingWhitespace, Overrides{Warn: ParseIDList("E001"), Error: ParseIDList("E001")}, SevError},
		{"warn softens error", ThenNotOnSameLine, Overrides{Warn: ParseIDList("E011,E041")}, SevWarning},
		{"warn on default warning", BareArithmetic, Overrides{Warn: ParseIDList("E043")}, SevWarning},
		{"unknown ids inert", TrailingWhitespace, Overrides{Ignore: ParseIDList("E999,E00"), Warn: ParseIDList("bogus")}, SevError},
		{"prefix does not match", DoNotOnSameLine, Overrides{Ignore: ParseIDList("E01")}, SevError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.o.Classify(tt.code); got != tt.want {
				t.Errorf("Classify(%s) = %s, want %s", tt.code.ID(), got, tt.want)
			}
		})
	}
}
