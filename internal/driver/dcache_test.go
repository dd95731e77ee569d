package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"bashate/internal/diag"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("bashate")
	if err != nil {
		t.Fatal(err)
	}

	findings := []diag.Finding{
		diag.NewFinding(diag.TrailingWhitespace, 3, "echo x "),
		diag.NewFinding(diag.DoNotOnSameLine, 9, "while true", "while"),
	}
	hash := [32]byte{1, 2, 3}
	key := resultKey("a.sh", hash, keyParams{toolVersion: "test", maxLineLength: 79})

	var miss DiskPayload
	if hit, err := cache.Get(key, &miss); hit || err != nil {
		t.Fatalf("expected clean miss, got hit=%v err=%v", hit, err)
	}

	if err := cache.Put(key, findingsToPayload("a.sh", hash, findings)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cache.Dir(), "results")); err != nil {
		t.Fatalf("results dir: %v", err)
	}

	var payload DiskPayload
	hit, err := cache.Get(key, &payload)
	if err != nil || !hit {
		t.Fatalf("expected hit, got hit=%v err=%v", hit, err)
	}
	if payload.Path != "a.sh" || payload.ContentHash != hash {
		t.Errorf("unexpected payload header %+v", payload)
	}
	if diff := cmp.Diff(findings, payloadToFindings(&payload)); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}

	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	var after DiskPayload
	if hit, _ := cache.Get(key, &after); hit {
		t.Fatal("expected miss after DropAll")
	}
}

func TestResultKeyInputs(t *testing.T) {
	base := keyParams{toolVersion: "1", maxLineLength: 79, syntaxCheck: true, shell: "bash"}
	hash := [32]byte{9}
	k := resultKey("x.sh", hash, base)

	variants := []struct {
		name string
		path string
		hash [32]byte
		p    keyParams
	}{
		{"path", "y.sh", hash, base},
		{"content", "x.sh", [32]byte{8}, base},
		{"version", "x.sh", hash, keyParams{toolVersion: "2", maxLineLength: 79, syntaxCheck: true, shell: "bash"}},
		{"max length", "x.sh", hash, keyParams{toolVersion: "1", maxLineLength: 80, syntaxCheck: true, shell: "bash"}},
		{"syntax off", "x.sh", hash, keyParams{toolVersion: "1", maxLineLength: 79, shell: "bash"}},
		{"shell", "x.sh", hash, keyParams{toolVersion: "1", maxLineLength: 79, syntaxCheck: true, shell: "zsh"}},
	}
	for _, v := range variants {
		if resultKey(v.path, v.hash, v.p) == k {
			t.Errorf("%s must change the key", v.name)
		}
	}
	if resultKey("x.sh", hash, base) != k {
		t.Error("key must be deterministic")
	}
}

func TestNilDiskCache(t *testing.T) {
	var c *DiskCache
	if err := c.Put([32]byte{}, &DiskPayload{}); err != nil {
		t.Fatal(err)
	}
	if hit, err := c.Get([32]byte{}, &DiskPayload{}); hit || err != nil {
		t.Fatalf("nil cache must miss, got %v %v", hit, err)
	}
}
