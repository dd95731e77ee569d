package driver

import (
	"crypto/sha256"
	"strconv"
)

// keyParams is everything besides the file itself that changes the findings.
type keyParams struct {
	toolVersion   string
	maxLineLength int
	syntaxCheck   bool
	shell         string // отпечаток бинаря оболочки
}

// resultKey: H(schema, version, path, content, params). Поля разделены нулём.
func resultKey(path string, content [32]byte, p keyParams) [32]byte {
	h := sha256.New()
	for _, part := range []string{
		strconv.FormatUint(uint64(diskCacheSchemaVersion), 10),
		p.toolVersion,
		path,
		strconv.Itoa(p.maxLineLength),
		strconv.FormatBool(p.syntaxCheck),
		p.shell,
	} {
		_, _ = h.Write([]byte(part))
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write(content[:])

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
