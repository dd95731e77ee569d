// Package config finds and decodes the optional per-project settings file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileNames are searched in this order in every directory.
var FileNames = []string{".bashate.toml", ".bashate.yaml", ".bashate.yml"}

// Config mirrors the command line. Unset scalars stay nil so flags given on
// the command line can be told apart from defaults.
type Config struct {
	Ignore        StringList `toml:"ignore" yaml:"ignore"`
	Warn          StringList `toml:"warn" yaml:"warn"`
	Error         StringList `toml:"error" yaml:"error"`
	MaxLineLength *int       `toml:"max_line_length" yaml:"max_line_length"`
	Format        *string    `toml:"format" yaml:"format"`
	Shell         *string    `toml:"shell" yaml:"shell"`
	SyntaxCheck   *bool      `toml:"syntax_check" yaml:"syntax_check"`
	Jobs          *int       `toml:"jobs" yaml:"jobs"`

	// Path is the file the values came from, empty for defaults.
	Path string `toml:"-" yaml:"-"`
}

// StringList accepts either "E001,E002" or ["E001", "E002"].
type StringList []string

// Join returns the list in the comma separated form the flags use.
func (l StringList) Join() string {
	return strings.Join(l, ",")
}

func (l *StringList) set(v any) error {
	switch v := v.(type) {
	case string:
		*l = StringList{v}
	case []any:
		out := make(StringList, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("expected string, got %T", item)
			}
			out = append(out, s)
		}
		*l = out
	default:
		return fmt.Errorf("expected string or list of strings, got %T", v)
	}
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (l *StringList) UnmarshalTOML(v any) error {
	return l.set(v)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*l = StringList{node.Value}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	return fmt.Errorf("line %d: expected string or list of strings", node.Line)
}

// Find walks up from startDir and returns the first settings file.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds the settings file above startDir and loads it. No file
// means an empty Config.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return Config{}, err
	}
	return Load(path)
}

// Load decodes path; the format follows the extension.
func Load(path string) (Config, error) {
	var (
		cfg Config
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		cfg, err = loadTOML(path)
	case ".yaml", ".yml":
		cfg, err = loadYAML(path)
	default:
		return Config{}, fmt.Errorf("%s: unsupported config format (want .toml, .yaml or .yml)", path)
	}
	if err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

func loadTOML(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return Config{}, fmt.Errorf("%s: unknown key(s): %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

func loadYAML(path string) (Config, error) {
	// #nosec G304 -- path comes from discovery or the --config flag
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.MaxLineLength != nil && *c.MaxLineLength < 1 {
		return fmt.Errorf("max_line_length must be positive, got %d", *c.MaxLineLength)
	}
	if c.Jobs != nil && *c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", *c.Jobs)
	}
	return nil
}
