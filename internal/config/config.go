package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "IMGCATALOG_"

var (
	// ErrNotFound is returned by Load when the config file does not exist.
	ErrNotFound = errors.New("config file not found")
	// ErrInvalid wraps every missing or malformed setting.
	ErrInvalid = errors.New("invalid config")
)

// Load reads configuration from the given YAML (or JSON) file, then overlays
// environment variable overrides (IMGCATALOG_*). Every required key must be
// present after both sources are merged.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// YAML is a superset of JSON, so the same parser serves both formats.
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	// IMGCATALOG_HTML_LAYOUT_COLUMN -> html.layout.column, etc.
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	for _, key := range requiredKeys {
		if !k.Exists(key) {
			return nil, fmt.Errorf("%w: missing required setting %q", ErrInvalid, key)
		}
	}

	// Start from empty slices so file values replace the defaults rather than merge.
	cfg.Image.Extensions = nil
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	cfg.Image.Extensions = NormalizeExtensions(cfg.Image.Extensions)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envValue maps an environment variable to its flattened config key. Unknown
// variables are dropped. List settings take a comma-separated value.
func envValue(name, value string) (string, interface{}) {
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	key = knownKeys[strings.ReplaceAll(key, "_", ".")]
	if listKeys[key] {
		return key, splitAndTrim(value)
	}
	return key, value
}

// Save writes the configuration to the given path. Paths ending in .json
// are written as JSON; everything else as YAML.
func (c *Config) Save(path string) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(c, "", "  ")
	} else {
		data, err = yamlv3.Marshal(c)
	}
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Image.Folder == "" {
		return fmt.Errorf("%w: image.folder is required", ErrInvalid)
	}

	if len(c.Image.Extensions) == 0 {
		return fmt.Errorf("%w: image.extensions must list at least one suffix", ErrInvalid)
	}
	for _, ext := range c.Image.Extensions {
		if strings.TrimPrefix(ext, ".") == "" {
			return fmt.Errorf("%w: empty entry in image.extensions", ErrInvalid)
		}
	}

	for _, pattern := range c.Image.Exclude {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return fmt.Errorf("%w: bad image.exclude pattern %q", ErrInvalid, pattern)
		}
	}

	if strings.TrimSpace(c.HTML.Title) == "" {
		return fmt.Errorf("%w: html.title is required", ErrInvalid)
	}

	if c.HTML.FileName != "" && strings.ContainsAny(c.HTML.FileName, `/\`) {
		return fmt.Errorf("%w: html.fileName %q must not contain a path separator", ErrInvalid, c.HTML.FileName)
	}

	if c.HTML.Layout.Column < 1 {
		return fmt.Errorf("%w: html.layout.column must be at least 1, got %d", ErrInvalid, c.HTML.Layout.Column)
	}

	for i, a := range c.HTML.Actions {
		if a.Label == "" {
			return fmt.Errorf("%w: html.actions[%d] needs a label", ErrInvalid, i)
		}
	}

	return nil
}

// OutputFileName returns the catalog's file name: html.fileName when set,
// otherwise the title with an .html suffix.
func (c *Config) OutputFileName() string {
	if c.HTML.FileName != "" {
		return c.HTML.FileName
	}
	name := strings.NewReplacer("/", "_", `\`, "_").Replace(strings.TrimSpace(c.HTML.Title))
	if !strings.EqualFold(filepath.Ext(name), ".html") {
		name += ".html"
	}
	return name
}

// NormalizeExtensions lower-cases each suffix and adds the leading dot when
// it is missing. Duplicates are dropped; order is preserved.
func NormalizeExtensions(exts []string) []string {
	seen := make(map[string]bool, len(exts))
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if seen[ext] {
			continue
		}
		seen[ext] = true
		out = append(out, ext)
	}
	return out
}
