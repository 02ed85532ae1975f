package catalog

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"strconv"
)

// Options carries the presentation settings of a catalog.
type Options struct {
	Title     string
	Columns   int  // Image blocks per row; values below 1 are treated as 1.
	BarBottom bool // Pin the tab bar to the bottom of the viewport instead of the top.
	DarkMode  bool
	Actions   []Action
	Notes     template.HTML // Pre-rendered HTML shown above the panels; see RenderNotes.
}

// Action is a fixed tab-bar button that copies Text to the clipboard.
type Action struct {
	Label string
	Text  string
}

var pageTmpl = template.Must(template.New("catalog").Parse(pageTemplate))

// pageData holds the data passed to pageTemplate.
type pageData struct {
	Title         string
	Palette       palette
	BarPosition   template.CSS
	ContentMargin template.CSS
	BlockWidth    template.CSS
	Tabs          []tabData
	Actions       []Action
	Notes         template.HTML
}

type tabData struct {
	Index  int
	Label  string
	Active bool
	Images []ImageEntry
}

// Render produces the complete catalog document for g. The output depends
// only on its arguments: one tab button and one panel per folder in g's
// order, the first one active.
func Render(g *Grouping, opts Options) (string, error) {
	data := pageData{
		Title:         opts.Title,
		Palette:       paletteFor(opts.DarkMode),
		BarPosition:   "top: 0",
		ContentMargin: "margin-top: 80px",
		BlockWidth:    template.CSS(BlockWidth(opts.Columns)),
		Actions:       opts.Actions,
		Notes:         opts.Notes,
	}
	if opts.BarBottom {
		data.BarPosition = "bottom: 0"
		data.ContentMargin = "margin-bottom: 80px"
	}

	for i, folder := range g.Folders() {
		data.Tabs = append(data.Tabs, tabData{
			Index:  i,
			Label:  folder,
			Active: i == 0,
			Images: g.Images(folder),
		})
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing catalog template: %w", err)
	}
	return buf.String(), nil
}

// BlockWidth returns the CSS width share of one image block for the given
// column count: 100/columns percent less a one-point gutter, truncated to
// two decimals (4 -> "24%", 5 -> "19%").
func BlockWidth(columns int) string {
	if columns < 1 {
		columns = 1
	}
	w := math.Floor((100/float64(columns)-1)*100) / 100
	if w < 0 {
		w = 0
	}
	return strconv.FormatFloat(w, 'f', -1, 64) + "%"
}
