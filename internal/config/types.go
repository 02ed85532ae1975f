package config

// Config is the top-level imgcatalog configuration, corresponding to .imgcatalog.yml.
type Config struct {
	Image ImageConfig `yaml:"image" json:"image" koanf:"image"`
	HTML  HTMLConfig  `yaml:"html" json:"html" koanf:"html"`
}

// ImageConfig controls which files the scanner picks up.
type ImageConfig struct {
	Extensions []string `yaml:"extensions" json:"extensions" koanf:"extensions"`
	Folder     string   `yaml:"folder" json:"folder" koanf:"folder"`
	Exclude    []string `yaml:"exclude,omitempty" json:"exclude,omitempty" koanf:"exclude"`
}

// HTMLConfig controls the generated catalog document.
type HTMLConfig struct {
	Title    string       `yaml:"title" json:"title" koanf:"title"`
	FileName string       `yaml:"fileName,omitempty" json:"fileName,omitempty" koanf:"fileName"`
	Layout   LayoutConfig `yaml:"layout" json:"layout" koanf:"layout"`
	Actions  []Action     `yaml:"actions,omitempty" json:"actions,omitempty" koanf:"actions"`
	Notes    string       `yaml:"notes,omitempty" json:"notes,omitempty" koanf:"notes"`
}

// LayoutConfig holds the visual parameters baked into the catalog's stylesheet.
type LayoutConfig struct {
	Column      int  `yaml:"column" json:"column" koanf:"column"`
	IsBarBottom bool `yaml:"isBarBottom" json:"isBarBottom" koanf:"isBarBottom"`
	IsDarkMode  bool `yaml:"isDarkMode" json:"isDarkMode" koanf:"isDarkMode"`
}

// Action is a fixed button in the tab bar that copies Text to the clipboard.
type Action struct {
	Label string `yaml:"label" json:"label" koanf:"label"`
	Text  string `yaml:"text" json:"text" koanf:"text"`
}
