package checks

import (
	"path/filepath"
	"strings"

	"bashate/internal/diag"
)

// Shebang is E005, evaluated on the first line of a file only. Files named
// *.sh and dot files are exempt.
func Shebang(filename, firstLine string) (Violation, bool) {
	if strings.HasPrefix(firstLine, "#!") ||
		strings.HasSuffix(filename, ".sh") ||
		strings.HasPrefix(filepath.Base(filename), ".") {
		return Violation{}, false
	}
	return violation(diag.MissingShebang), true
}

// FinalNewline is E004 for the last physical line of a file.
func FinalNewline(hasNewline bool) (Violation, bool) {
	if hasNewline {
		return Violation{}, false
	}
	return violation(diag.MissingFinalNewline), true
}
