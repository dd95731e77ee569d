package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// chdirWithScript creates a.sh with one trailing-whitespace line in a fresh
// directory and makes it the working directory.
func chdirWithScript(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.sh"), []byte("#!/bin/bash\nfoo \n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Chdir(dir)
	return dir
}

func TestCheckReportsErrors(t *testing.T) {
	chdirWithScript(t)

	out, err := execute(t, "--no-syntax-check", "--color", "off", "a.sh")
	if !errors.Is(err, errDiagnostics) {
		t.Fatalf("expected errDiagnostics, got %v", err)
	}
	want := "a.sh:2:1: E001 Trailing Whitespace\n" +
		"0 bashate warning(s) found\n" +
		"1 bashate error(s) found\n"
	if out != want {
		t.Fatalf("output mismatch:\n got: %q\nwant: %q", out, want)
	}
}

func TestSeverityFlags(t *testing.T) {
	chdirWithScript(t)

	cases := []struct {
		name    string
		args    []string
		summary string
		failed  bool
	}{
		{"ignore", []string{"-i", "E001"}, "0 bashate warning(s) found\n0 bashate error(s) found\n", false},
		{"ignore mixed separators", []string{"-i", "E002|E001,E003"}, "0 bashate warning(s) found\n0 bashate error(s) found\n", false},
		{"warn", []string{"-w", "E001"}, "1 bashate warning(s) found\n0 bashate error(s) found\n", false},
		{"unknown id is inert", []string{"-i", "E01"}, "0 bashate warning(s) found\n1 bashate error(s) found\n", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"--no-syntax-check", "--color", "off"}, tc.args...)
			args = append(args, "a.sh")
			out, err := execute(t, args...)
			if tc.failed != errors.Is(err, errDiagnostics) {
				t.Fatalf("unexpected result %v", err)
			}
			if !tc.failed && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.HasSuffix(out, tc.summary) {
				t.Fatalf("summary mismatch:\n%s", out)
			}
		})
	}
}

func TestQuietSuppressesSummary(t *testing.T) {
	chdirWithScript(t)

	out, err := execute(t, "--no-syntax-check", "--color", "off", "--quiet", "a.sh")
	if !errors.Is(err, errDiagnostics) {
		t.Fatalf("expected errDiagnostics, got %v", err)
	}
	if strings.Contains(out, "found") {
		t.Fatalf("summary printed with --quiet:\n%s", out)
	}
}

func TestVerboseBanner(t *testing.T) {
	chdirWithScript(t)

	out, _ := execute(t, "--no-syntax-check", "--color", "off", "-v", "a.sh")
	if !strings.HasPrefix(out, "Running bashate on a.sh\na.sh:2:1: E001") {
		t.Fatalf("banner must precede the file's diagnostics:\n%s", out)
	}
}

func TestJSONFormat(t *testing.T) {
	chdirWithScript(t)

	out, _ := execute(t, "--no-syntax-check", "--format", "json", "--quiet", "a.sh")
	var got struct {
		File     string `json:"file"`
		Line     int    `json:"line"`
		Severity string `json:"severity"`
		Code     string `json:"code"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &got); err != nil {
		t.Fatalf("output is not one JSON object: %v\n%s", err, out)
	}
	if got.File != "a.sh" || got.Line != 2 || got.Code != "E001" {
		t.Fatalf("unexpected diagnostic: %+v", got)
	}
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	dir := chdirWithScript(t)
	cfg := "ignore = [\"E001\"]\n"
	if err := os.WriteFile(filepath.Join(dir, ".bashate.toml"), []byte(cfg), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := execute(t, "--no-syntax-check", "--color", "off", "a.sh"); err != nil {
		t.Fatalf("config ignore list not applied: %v", err)
	}
	// an explicit empty flag still wins over the file
	if _, err := execute(t, "--no-syntax-check", "--color", "off", "--ignore=", "a.sh"); !errors.Is(err, errDiagnostics) {
		t.Fatalf("flag did not override config, got %v", err)
	}
}

func TestExplicitConfigErrors(t *testing.T) {
	dir := chdirWithScript(t)
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("bogus: 1\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := execute(t, "--no-syntax-check", "--config", path, "a.sh")
	if err == nil || errors.Is(err, errDiagnostics) {
		t.Fatalf("expected a config error, got %v", err)
	}
}

func TestMissingFileIsFatal(t *testing.T) {
	chdirWithScript(t)

	_, err := execute(t, "--no-syntax-check", "a.sh", "missing.sh")
	if err == nil || errors.Is(err, errDiagnostics) {
		t.Fatalf("expected an I/O error, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing.sh") {
		t.Fatalf("error does not name the file: %v", err)
	}
}

func TestNoFilesPrintsUsage(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t)
	if !errors.Is(err, errUsage) {
		t.Fatalf("expected errUsage, got %v", err)
	}
	if !strings.Contains(out, "Usage:") {
		t.Fatalf("usage not printed:\n%s", out)
	}
}

func TestShowCatalog(t *testing.T) {
	for _, args := range [][]string{
		{"--color", "off", "-s"},
		{"--color", "off", "--show", "ignored.sh"},
		{"--color", "off", "show"},
		{"--color", "off", "rules"},
	} {
		out, err := execute(t, args...)
		if err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		for _, want := range []string{" [E] E001 : Trailing Whitespace", " [W] E006 : Line too long", "E044"} {
			if !strings.Contains(out, want) {
				t.Fatalf("%v: catalog lacks %q:\n%s", args, want, out)
			}
		}
	}
}

func TestInvalidColor(t *testing.T) {
	if _, err := execute(t, "--color", "sometimes", "show"); err == nil {
		t.Fatal("expected an error for an unknown --color value")
	}
}

func TestVersionJSON(t *testing.T) {
	out, err := execute(t, "version", "--format", "json")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if payload.Tool != "bashate" || payload.Version == "" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.GitCommit != "" {
		t.Fatalf("commit included without --hash: %+v", payload)
	}
}

func TestTraceToFile(t *testing.T) {
	dir := chdirWithScript(t)
	tracePath := filepath.Join(dir, "run.ndjson")

	if _, err := execute(t, "--no-syntax-check", "--quiet", "--trace", tracePath, "a.sh"); !errors.Is(err, errDiagnostics) {
		t.Fatalf("unexpected result: %v", err)
	}
	data, err := os.ReadFile(tracePath)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	if !strings.Contains(string(data), `"name":"run"`) || !strings.Contains(string(data), `"name":"file"`) {
		t.Fatalf("trace lacks run/file spans:\n%s", data)
	}
}

func TestClearCache(t *testing.T) {
	cacheHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)
	chdirWithScript(t)
	results := filepath.Join(cacheHome, "bashate", "results")

	if _, err := execute(t, "--no-syntax-check", "--quiet", "--cache", "a.sh"); !errors.Is(err, errDiagnostics) {
		t.Fatalf("unexpected result: %v", err)
	}
	entries, err := os.ReadDir(results)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one cached result, got %v (err %v)", entries, err)
	}

	out, err := execute(t, "--clear-cache", "-v")
	if err != nil {
		t.Fatalf("--clear-cache without files must succeed: %v", err)
	}
	if !strings.Contains(out, "Cleared cache "+filepath.Join(cacheHome, "bashate")) {
		t.Fatalf("missing confirmation:\n%s", out)
	}
	if _, err := os.Stat(results); !os.IsNotExist(err) {
		t.Fatalf("results must be gone, stat err = %v", err)
	}
}
