package diag

import (
	"strings"
	"testing"
)

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{TrailingWhitespace, "E001"},
		{LineTooLong, "E006"},
		{DoNotOnSameLine, "E010"},
		{FunctionDeclStyle, "E020"},
		{NonPOSIXComparison, "E044"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("%d.ID() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestCatalogDefaults(t *testing.T) {
	warnings := map[string]bool{"E005": true, "E006": true, "E042": true, "E043": true}
	codes := Codes()
	if len(codes) != 15 {
		t.Fatalf("expected 15 rules in the catalog, got %d", len(codes))
	}
	for _, code := range codes {
		id := code.ID()
		isErr, isWarn := IsDefaultError(id), IsDefaultWarning(id)
		if isErr == isWarn {
			t.Errorf("%s must be exactly one of error/warning (error=%v warning=%v)", id, isErr, isWarn)
		}
		if isWarn != warnings[id] {
			t.Errorf("%s: default warning = %v, want %v", id, isWarn, warnings[id])
		}
	}
}

func TestCodesSorted(t *testing.T) {
	codes := Codes()
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("codes not sorted: %v", codes)
		}
	}
}

func TestLookup(t *testing.T) {
	r, ok := Lookup("E011")
	if !ok {
		t.Fatal("E011 not found")
	}
	if r.Code != ThenNotOnSameLine || r.Default != SevError {
		t.Errorf("unexpected rule: %+v", r)
	}
	if !strings.Contains(r.Description, "if/elif") {
		t.Errorf("unexpected description %q", r.Description)
	}

	for _, id := range []string{"", "E", "E01", "E0001", "E999", "W001", "e001", "E00x"} {
		if _, ok := Lookup(id); ok {
			t.Errorf("Lookup(%q) should fail", id)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := DoNotOnSameLine.Format("while"); got != `The "do" should be on same line as while` {
		t.Errorf("unexpected E010 message %q", got)
	}
	if got := UnterminatedHeredoc.Format(3); got != "here-document at line 3 delimited by end-of-file" {
		t.Errorf("unexpected E012 message %q", got)
	}
	if got := TrailingWhitespace.Format(); got != "Trailing Whitespace" {
		t.Errorf("unexpected E001 message %q", got)
	}
	if got := Code(99).Title(); got != "Unknown rule" {
		t.Errorf("unexpected title for unknown code %q", got)
	}
}

func TestDescriptionsHaveNoSurroundingBlankLines(t *testing.T) {
	for _, code := range Codes() {
		r, _ := code.Rule()
		if r.Description != strings.TrimSpace(r.Description) {
			t.Errorf("%s description has surrounding whitespace", code.ID())
		}
	}
}
