package checks

import "testing"

func TestIsContinuation(t *testing.T) {
	cases := map[string]bool{
		`echo a \`:    true,
		`echo a \   `: true,
		`echo a \x`:   false,
		`echo a`:      false,
		`\`:           true,
	}
	for line, want := range cases {
		if got := IsContinuation(line); got != want {
			t.Errorf("IsContinuation(%q) = %v, want %v", line, got, want)
		}
	}
}

func TestHeredocToken(t *testing.T) {
	tests := []struct {
		line  string
		token string
		ok    bool
	}{
		{"cat <<EOF", "EOF", true},
		{"cat << EOF > out", "EOF", true},
		{"cat <<'END'", "END", true},
		{`cat <<"END_1"`, "END_1", true},
		{"cat <<<EOF", "", false},
		{"<<EOF", "", false},
		{"echo no heredoc", "", false},
		{"x=$((a<<2))", "2", true},
	}
	for _, tt := range tests {
		token, ok := HeredocToken(tt.line)
		if ok != tt.ok || token != tt.token {
			t.Errorf("HeredocToken(%q) = %q, %v; want %q, %v", tt.line, token, ok, tt.token, tt.ok)
		}
	}
}

func TestEndsHeredoc(t *testing.T) {
	tests := []struct {
		line, token string
		want        bool
	}{
		{"EOF", "EOF", true},
		{"EOF  \t", "EOF", true},
		{" EOF", "EOF", false},
		{"EOFX", "EOF", false},
		{"", "EOF", false},
		{"EOF", "", false},
	}
	for _, tt := range tests {
		if got := EndsHeredoc(tt.line, tt.token); got != tt.want {
			t.Errorf("EndsHeredoc(%q, %q) = %v, want %v", tt.line, tt.token, got, tt.want)
		}
	}
}

func TestIsComment(t *testing.T) {
	if !IsComment("# hi") || !IsComment("    # indented") {
		t.Error("expected comment lines")
	}
	if IsComment("echo # trailing") || IsComment("") {
		t.Error("expected non-comment lines")
	}
}

func TestStripInlineComment(t *testing.T) {
	tests := map[string]string{
		"echo foo # comment":    "echo foo",
		"echo foo#bar":          "echo foo#bar",
		"echo x  \t # y # z":    "echo x",
		"echo ${#arr[@]}":       "echo ${#arr[@]}",
		"echo trailing   ":      "echo trailing   ",
		"echo 'a # in quotes'":  "echo 'a",
		"    local x=1 # note  ": "    local x=1",
	}
	for in, want := range tests {
		if got := StripInlineComment(in); got != want {
			t.Errorf("StripInlineComment(%q) = %q, want %q", in, got, want)
		}
	}
}
