package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to imgcatalog! Let's configure your catalog.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Image folder.
	folderPrompt := promptui.Prompt{
		Label:   "Image folder to scan",
		Default: defaults.Image.Folder,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("folder is required")
			}
			return nil
		},
	}
	folder, err := folderPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("image folder: %w", err)
	}
	if info, statErr := os.Stat(folder); statErr != nil || !info.IsDir() {
		fmt.Printf("Note: %s does not exist yet; create it before running imgcatalog generate.\n\n", folder)
	}

	// 2. Extensions.
	extPrompt := promptui.Prompt{
		Label:   "Image extensions (comma-separated)",
		Default: strings.Join(defaults.Image.Extensions, ","),
	}
	extStr, err := extPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("extensions: %w", err)
	}

	// 3. Title.
	titlePrompt := promptui.Prompt{
		Label:   "Catalog title (also the output file name)",
		Default: defaults.HTML.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}

	// 4. Columns.
	columnPrompt := promptui.Prompt{
		Label:   "Images per row",
		Default: strconv.Itoa(defaults.HTML.Layout.Column),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 {
				return fmt.Errorf("enter a whole number of at least 1")
			}
			return nil
		},
	}
	columnStr, err := columnPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}
	column, _ := strconv.Atoi(columnStr)

	// 5. Tab bar position.
	barPrompt := promptui.Select{
		Label: "Tab bar position",
		Items: []string{"top", "bottom"},
	}
	barIdx, _, err := barPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("tab bar position: %w", err)
	}

	// 6. Theme.
	themePrompt := promptui.Select{
		Label: "Color theme",
		Items: []string{"light", "dark"},
	}
	themeIdx, _, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}

	cfg := &Config{
		Image: ImageConfig{
			Extensions: NormalizeExtensions(splitAndTrim(extStr)),
			Folder:     folder,
		},
		HTML: HTMLConfig{
			Title: title,
			Layout: LayoutConfig{
				Column:      column,
				IsBarBottom: barIdx == 1,
				IsDarkMode:  themeIdx == 1,
			},
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace,
// dropping empty tokens.
func splitAndTrim(s string) []string {
	var result []string
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			result = append(result, token)
		}
	}
	return result
}
