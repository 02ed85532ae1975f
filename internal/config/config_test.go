package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.HTML.Layout.Column != 4 {
		t.Errorf("expected default column 4, got %d", cfg.HTML.Layout.Column)
	}
	if cfg.Image.Folder != "images" {
		t.Errorf("expected default folder %q, got %q", "images", cfg.Image.Folder)
	}
	if len(cfg.Image.Extensions) != len(DefaultExtensions) {
		t.Errorf("expected %d default extensions, got %d", len(DefaultExtensions), len(cfg.Image.Extensions))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.imgcatalog.yml")

	original := DefaultConfig()
	original.Image.Folder = "assets/stands"
	original.Image.Extensions = []string{".png"}
	original.Image.Exclude = []string{"**/drafts/**"}
	original.HTML.Title = "STAND"
	original.HTML.Layout = LayoutConfig{Column: 5, IsBarBottom: true, IsDarkMode: true}
	original.HTML.Actions = []Action{{Label: "reset", Text: "/stand reset"}}

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Image.Folder != original.Image.Folder {
		t.Errorf("folder: got %q, want %q", loaded.Image.Folder, original.Image.Folder)
	}
	if len(loaded.Image.Extensions) != 1 || loaded.Image.Extensions[0] != ".png" {
		t.Errorf("extensions: got %v, want [.png]", loaded.Image.Extensions)
	}
	if len(loaded.Image.Exclude) != 1 || loaded.Image.Exclude[0] != "**/drafts/**" {
		t.Errorf("exclude: got %v", loaded.Image.Exclude)
	}
	if loaded.HTML.Title != "STAND" {
		t.Errorf("title: got %q, want %q", loaded.HTML.Title, "STAND")
	}
	if loaded.HTML.Layout != original.HTML.Layout {
		t.Errorf("layout: got %+v, want %+v", loaded.HTML.Layout, original.HTML.Layout)
	}
	if len(loaded.HTML.Actions) != 1 || loaded.HTML.Actions[0] != original.HTML.Actions[0] {
		t.Errorf("actions: got %+v", loaded.HTML.Actions)
	}
}

func TestSaveAndLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	original := DefaultConfig()
	original.HTML.Title = "json catalog"
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.HTML.Title != "json catalog" {
		t.Errorf("title: got %q", loaded.HTML.Title)
	}
}

func TestLoadGeneratorSettingsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generator_settings.json")
	writeFile(t, path, `{
  "image": {"extensions": [".PNG", "jpg"], "folder": "./images"},
  "html": {
    "title": "STAND",
    "fileName": "stand.html",
    "layout": {"column": 4, "isBarBottom": false, "isDarkMode": true}
  }
}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := []string{".png", ".jpg"}
	if len(cfg.Image.Extensions) != len(want) {
		t.Fatalf("extensions: got %v, want %v", cfg.Image.Extensions, want)
	}
	for i := range want {
		if cfg.Image.Extensions[i] != want[i] {
			t.Errorf("extensions[%d]: got %q, want %q", i, cfg.Image.Extensions[i], want[i])
		}
	}
	if cfg.OutputFileName() != "stand.html" {
		t.Errorf("output file name: got %q", cfg.OutputFileName())
	}
	if !cfg.HTML.Layout.IsDarkMode {
		t.Error("expected dark mode")
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.yml")

	_, err := Load(path)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadMissingRequiredKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yml")
	writeFile(t, path, `image:
  extensions: [".png"]
  folder: images
html:
  title: partial
  layout:
    column: 3
    isBarBottom: false
`)

	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for missing isDarkMode, got %v", err)
	}
}

func TestLoadInvalidColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.yml")
	cfg := DefaultConfig()
	cfg.HTML.Layout.Column = 0
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for column 0, got %v", err)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("IMGCATALOG_HTML_LAYOUT_COLUMN", "5")
	t.Setenv("IMGCATALOG_HTML_LAYOUT_ISDARKMODE", "true")
	t.Setenv("IMGCATALOG_IMAGE_FOLDER", "override")
	t.Setenv("IMGCATALOG_UNRELATED_SETTING", "ignored")
	t.Setenv("IMGCATALOG_IMAGE_EXTENSIONS", ".PNG, .bmp")
	t.Setenv("IMGCATALOG_IMAGE_EXCLUDE", "**/drafts/**,tmp/*")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.HTML.Layout.Column != 5 {
		t.Errorf("column override failed: got %d, want 5", loaded.HTML.Layout.Column)
	}
	if !loaded.HTML.Layout.IsDarkMode {
		t.Error("isDarkMode override failed")
	}
	if loaded.Image.Folder != "override" {
		t.Errorf("folder override failed: got %q", loaded.Image.Folder)
	}
	if want := []string{".png", ".bmp"}; !reflect.DeepEqual(loaded.Image.Extensions, want) {
		t.Errorf("extensions override failed: got %v, want %v", loaded.Image.Extensions, want)
	}
	if want := []string{"**/drafts/**", "tmp/*"}; !reflect.DeepEqual(loaded.Image.Exclude, want) {
		t.Errorf("exclude override failed: got %v, want %v", loaded.Image.Exclude, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"no folder", func(c *Config) { c.Image.Folder = "" }, false},
		{"no extensions", func(c *Config) { c.Image.Extensions = nil }, false},
		{"bare dot extension", func(c *Config) { c.Image.Extensions = []string{"."} }, false},
		{"blank title", func(c *Config) { c.HTML.Title = "  " }, false},
		{"negative column", func(c *Config) { c.HTML.Layout.Column = -1 }, false},
		{"single column", func(c *Config) { c.HTML.Layout.Column = 1 }, true},
		{"file name with slash", func(c *Config) { c.HTML.FileName = "out/cat.html" }, false},
		{"bad exclude", func(c *Config) { c.Image.Exclude = []string{"[abc"} }, false},
		{"good exclude", func(c *Config) { c.Image.Exclude = []string{"**/tmp/**"} }, true},
		{"unlabelled action", func(c *Config) { c.HTML.Actions = []Action{{Text: "/x"}} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.ok {
				if err == nil {
					t.Error("expected validation error")
				} else if !errors.Is(err, ErrInvalid) {
					t.Errorf("expected ErrInvalid, got %v", err)
				}
			}
		})
	}
}

func TestOutputFileName(t *testing.T) {
	tests := []struct {
		title, fileName, want string
	}{
		{"STAND", "", "STAND.html"},
		{"index.html", "", "index.html"},
		{"a/b", "", "a_b.html"},
		{"ignored", "custom.htm", "custom.htm"},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.HTML.Title = tt.title
		cfg.HTML.FileName = tt.fileName
		if got := cfg.OutputFileName(); got != tt.want {
			t.Errorf("OutputFileName(%q, %q) = %q, want %q", tt.title, tt.fileName, got, tt.want)
		}
	}
}

func TestNormalizeExtensions(t *testing.T) {
	got := NormalizeExtensions([]string{"PNG", ".Jpg", " .png ", "gif"})
	want := []string{".png", ".jpg", ".gif"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := splitAndTrim(" .png, .jpg ,,")
	if len(got) != 2 || got[0] != ".png" || got[1] != ".jpg" {
		t.Errorf("splitAndTrim = %v", got)
	}
}
