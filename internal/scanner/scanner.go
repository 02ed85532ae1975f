package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/ziadkadry99/imgcatalog/internal/catalog"
)

// MaxDepth bounds recursion. Symbolic links are followed without cycle
// detection, so a looping link ends here (or at the OS symlink limit)
// instead of exhausting the stack.
const MaxDepth = 32

// ErrMaxDepth is returned when the tree is nested deeper than MaxDepth.
var ErrMaxDepth = errors.New("scanner: maximum directory depth exceeded")

// Options controls which files a Scanner records.
type Options struct {
	Extensions []string // Accepted suffixes, matched case-insensitively.
	Exclude    []string // Doublestar patterns for files or directories to skip.

	// OnDir, when set, is called after each directory listing is read with
	// the directory's folder label and the number of directories read so far.
	OnDir func(folder string, scanned int)
}

// Scanner groups image files by the directory that directly contains them.
type Scanner struct {
	exts    map[string]bool
	exclude []string
	onDir   func(string, int)
	scanned int
}

// New creates a Scanner from opts.
func New(opts Options) *Scanner {
	exclude := make([]string, len(opts.Exclude))
	for i, p := range opts.Exclude {
		exclude[i] = filepath.ToSlash(p)
	}
	return &Scanner{
		exts:    extensionSet(opts.Extensions),
		exclude: exclude,
		onDir:   opts.OnDir,
	}
}

// Scan walks root and returns its images grouped by folder. Entry paths are
// root joined with the file's relative path. Any unreadable directory aborts
// the whole scan.
func (s *Scanner) Scan(root string) (*catalog.Grouping, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scanner: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scanner: %s is not a directory", root)
	}
	return s.scan(os.DirFS(root), filepath.ToSlash(filepath.Clean(root)))
}

// ScanFS walks fsys from its root. Entry paths are relative to fsys.
func (s *Scanner) ScanFS(fsys fs.FS) (*catalog.Grouping, error) {
	return s.scan(fsys, "")
}

func (s *Scanner) scan(fsys fs.FS, prefix string) (*catalog.Grouping, error) {
	s.scanned = 0
	g := catalog.NewGrouping()
	if err := s.walk(fsys, ".", 0, prefix, g); err != nil {
		return nil, err
	}
	return g, nil
}

// walk records the images directly inside dir, then descends into its
// subdirectories as they come up in name order.
func (s *Scanner) walk(fsys fs.FS, dir string, depth int, prefix string, g *catalog.Grouping) error {
	if depth > MaxDepth {
		return fmt.Errorf("%w at %s", ErrMaxDepth, displayPath(prefix, dir))
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("scanner: read dir %s: %w", displayPath(prefix, dir), err)
	}

	folder := folderKey(dir)
	s.scanned++
	if s.onDir != nil {
		s.onDir(folder, s.scanned)
	}

	for _, entry := range entries {
		name := entry.Name()
		rel := path.Join(dir, name)

		if len(s.exclude) > 0 && matchesAny(rel, s.exclude) {
			continue
		}

		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			target, err := fs.Stat(fsys, rel)
			if err != nil {
				return fmt.Errorf("scanner: resolve link %s: %w", displayPath(prefix, rel), err)
			}
			isDir = target.IsDir()
		}

		if isDir {
			if err := s.walk(fsys, rel, depth+1, prefix, g); err != nil {
				return err
			}
			continue
		}

		stem, ext := splitName(name)
		if !s.exts[ext] {
			continue
		}
		g.Add(folder, catalog.ImageEntry{
			Name: stem,
			Path: displayPath(prefix, rel),
		})
	}
	return nil
}

// folderKey converts a slash-separated directory path relative to the scan
// root into its grouping label.
func folderKey(dir string) string {
	if dir == "." || dir == "" {
		return catalog.RootKey
	}
	return dir
}

func displayPath(prefix, rel string) string {
	if prefix == "" {
		return rel
	}
	return path.Join(prefix, rel)
}
