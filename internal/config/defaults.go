package config

import "strings"

// DefaultPath is the config file used when --config is not given.
const DefaultPath = ".imgcatalog.yml"

// DefaultExtensions are the image suffixes accepted by a freshly initialized config.
var DefaultExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

// requiredKeys must be present in the loaded configuration. Booleans are
// included so that a theme or bar position is always an explicit choice.
var requiredKeys = []string{
	"image.extensions",
	"image.folder",
	"html.title",
	"html.layout.column",
	"html.layout.isBarBottom",
	"html.layout.isDarkMode",
}

// knownKeys maps lower-cased flattened keys to their canonical spelling so
// that environment overrides land on the same key as the file value.
var knownKeys = func() map[string]string {
	keys := append([]string{
		"image.exclude",
		"html.fileName",
		"html.notes",
	}, requiredKeys...)
	m := make(map[string]string, len(keys))
	for _, k := range keys {
		m[strings.ToLower(k)] = k
	}
	return m
}()

// listKeys hold string lists; their environment overrides are comma-separated.
var listKeys = map[string]bool{
	"image.extensions": true,
	"image.exclude":    true,
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Image: ImageConfig{
			Extensions: append([]string(nil), DefaultExtensions...),
			Folder:     "images",
		},
		HTML: HTMLConfig{
			Title: "catalog",
			Layout: LayoutConfig{
				Column: 4,
			},
		},
	}
}
