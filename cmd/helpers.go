package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/ziadkadry99/imgcatalog/internal/catalog"
	"github.com/ziadkadry99/imgcatalog/internal/config"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if errors.Is(err, config.ErrNotFound) {
		return nil, fmt.Errorf("loading config: %w\nRun `imgcatalog init` to create a config file", err)
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// catalogOptions maps the html section of the config onto renderer options.
// The notes file, when configured, is read and converted here.
func catalogOptions(cfg *config.Config) (catalog.Options, error) {
	opts := catalog.Options{
		Title:     cfg.HTML.Title,
		Columns:   cfg.HTML.Layout.Column,
		BarBottom: cfg.HTML.Layout.IsBarBottom,
		DarkMode:  cfg.HTML.Layout.IsDarkMode,
	}
	for _, a := range cfg.HTML.Actions {
		opts.Actions = append(opts.Actions, catalog.Action{Label: a.Label, Text: a.Text})
	}

	if cfg.HTML.Notes != "" {
		data, err := os.ReadFile(cfg.HTML.Notes)
		if err != nil {
			return opts, fmt.Errorf("reading notes: %w", err)
		}
		notes, err := catalog.RenderNotes(data, opts.DarkMode)
		if err != nil {
			return opts, err
		}
		opts.Notes = notes
	}
	return opts, nil
}

// logf prints diagnostics to stderr when --verbose is set.
func logf(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
