package catalog

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// RootKey labels images found directly inside the scan root. Relativizing a
// path to itself yields "" or "." depending on the API, so the root gets an
// explicit name instead. A top-level folder that is itself named "root"
// shares this label, so its images land in the same tab as the root's own.
const RootKey = "root"

// ImageEntry is a single discovered image.
type ImageEntry struct {
	Name string // File name without its extension; copied to the clipboard on click.
	Path string // Slash-separated path used as the <img> src; URL-escaped after Rebase.
}

// Grouping maps folder labels to the images found directly inside them.
// Folders keep the order in which they were first added. The zero value is
// ready to use, and a nil *Grouping reads as empty.
type Grouping struct {
	folders *orderedmap.OrderedMap[string, []ImageEntry]
}

// NewGrouping returns an empty Grouping.
func NewGrouping() *Grouping {
	return &Grouping{folders: orderedmap.New[string, []ImageEntry]()}
}

// Add appends entry to folder, registering the folder on first use.
func (g *Grouping) Add(folder string, entry ImageEntry) {
	if g.folders == nil {
		g.folders = orderedmap.New[string, []ImageEntry]()
	}
	entries, _ := g.folders.Get(folder)
	g.folders.Set(folder, append(entries, entry))
}

// Folders returns the folder labels in discovery order.
func (g *Grouping) Folders() []string {
	if g == nil || g.folders == nil {
		return nil
	}
	out := make([]string, 0, g.folders.Len())
	for pair := g.folders.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Images returns the entries recorded under folder, in discovery order.
func (g *Grouping) Images(folder string) []ImageEntry {
	if g == nil || g.folders == nil {
		return nil
	}
	entries, _ := g.folders.Get(folder)
	return append([]ImageEntry(nil), entries...)
}

// Len returns the number of folders.
func (g *Grouping) Len() int {
	if g == nil || g.folders == nil {
		return 0
	}
	return g.folders.Len()
}

// Count returns the total number of images across all folders.
func (g *Grouping) Count() int {
	if g == nil || g.folders == nil {
		return 0
	}
	n := 0
	for pair := g.folders.Oldest(); pair != nil; pair = pair.Next() {
		n += len(pair.Value)
	}
	return n
}

// Rebase returns a copy of g whose entry paths resolve from outputDir, so
// the catalog written there can reference the images with relative links.
// The rebased paths are URL-escaped; names are left as they are.
func Rebase(g *Grouping, outputDir string) (*Grouping, error) {
	base, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, fmt.Errorf("resolving output dir: %w", err)
	}

	out := NewGrouping()
	for _, folder := range g.Folders() {
		for _, entry := range g.Images(folder) {
			abs, err := filepath.Abs(filepath.FromSlash(entry.Path))
			if err != nil {
				return nil, fmt.Errorf("resolving %s: %w", entry.Path, err)
			}
			rel, err := filepath.Rel(base, abs)
			if err != nil {
				return nil, fmt.Errorf("relativizing %s: %w", entry.Path, err)
			}
			out.Add(folder, ImageEntry{Name: entry.Name, Path: escapePath(filepath.ToSlash(rel))})
		}
	}
	return out, nil
}

// escapePath escapes each segment of a slash-separated relative path. Colons
// are escaped too so that a first segment like "c:d.png" is not read as a
// URL scheme.
func escapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, seg := range segments {
		segments[i] = strings.ReplaceAll(url.PathEscape(seg), ":", "%3A")
	}
	return strings.Join(segments, "/")
}
