// Package syntax runs an external shell in no-exec mode and turns the
// problems it reports into findings.
package syntax

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"bashate/internal/diag"
)

// DefaultShell is used when Bash.Shell is empty.
const DefaultShell = "bash"

// Checker reports syntax problems for a whole file.
type Checker interface {
	Check(ctx context.Context, path string) ([]diag.Finding, error)
}

// Bash runs `<Shell> -n FILE` with LC_ALL=C.
type Bash struct {
	Shell string
}

var (
	// foo.sh: line 4: warning: here-document at line 1 delimited by end-of-file (wanted `EOF')
	// foo.sh: line 9: syntax error: unexpected end of file
	// foo.sh: line 7: syntax error near unexpected token `}'
	reportRe    = regexp.MustCompile(`^(.*): line ([0-9]+): (.*)$`)
	heredocAtRe = regexp.MustCompile(`^.*line ([0-9]+).*$`)
)

func (b Bash) shell() string {
	if b.Shell == "" {
		return DefaultShell
	}
	return b.Shell
}

// Check returns the findings for path. An error means the shell could not be
// started at all; a non-zero exit status is expected and is not an error.
func (b Bash) Check(ctx context.Context, path string) ([]diag.Finding, error) {
	// #nosec G204 -- the shell is chosen by the user running the tool
	cmd := exec.CommandContext(ctx, b.shell(), "-n", path)
	// сообщения разбираются по тексту, поэтому локаль фиксирована
	cmd.Env = append(os.Environ(), "LC_ALL=C")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("run %s -n: %w", b.shell(), err)
		}
	}
	return ParseOutput(&stderr), nil
}

// Fingerprint identifies the shell binary so cached results are dropped when
// it changes. It is empty when the shell cannot be found.
func (b Bash) Fingerprint() string {
	path, err := exec.LookPath(b.shell())
	if err != nil {
		return ""
	}
	info, err := os.Stat(path)
	if err != nil {
		return path
	}
	return fmt.Sprintf("%s:%d:%d", path, info.Size(), info.ModTime().UnixNano())
}

// ParseOutput converts shell diagnostics into findings. Lines that do not
// look like "<file>: line N: <message>" are ignored.
func ParseOutput(r io.Reader) []diag.Finding {
	var out []diag.Finding
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		m := reportRe.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		line, ok := parseLineNumber(m[2])
		if !ok {
			continue
		}
		msg := m[3]

		if strings.Contains(msg, "syntax error") {
			out = append(out, diag.Finding{
				Code:    diag.SyntaxError,
				Message: fmt.Sprintf("%s: %s", diag.SyntaxError.Title(), msg),
				Line:    line,
			})
		}
		if strings.Contains(msg, "warning:") && strings.Contains(msg, "delimited by end-of-file") {
			start := heredocAtRe.FindStringSubmatch(msg)
			if start == nil {
				continue
			}
			opened, ok := parseLineNumber(start[1])
			if !ok {
				continue
			}
			out = append(out, diag.NewFinding(diag.UnterminatedHeredoc, opened, "", opened))
		}
	}
	return out
}

func parseLineNumber(s string) (uint32, bool) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}
