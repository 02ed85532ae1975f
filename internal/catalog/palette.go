package catalog

import "html/template"

// palette is one of the two fixed color schemes.
type palette struct {
	Background   template.CSS
	Bar          template.CSS
	Text         template.CSS
	Border       template.CSS
	BorderHover  template.CSS
	Button       template.CSS
	ButtonActive template.CSS
	Action       template.CSS
}

var lightPalette = palette{
	Background:   "#ffffff",
	Bar:          "#ffffff",
	Text:         "#212529",
	Border:       "#dddddd",
	BorderHover:  "#666666",
	Button:       "#007bff",
	ButtonActive: "#0056b3",
	Action:       "#fa5021",
}

var darkPalette = palette{
	Background:   "#1e1e1e",
	Bar:          "#252526",
	Text:         "#e0e0e0",
	Border:       "#444444",
	BorderHover:  "#aaaaaa",
	Button:       "#0e639c",
	ButtonActive: "#1177bb",
	Action:       "#c7461c",
}

func paletteFor(dark bool) palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}
