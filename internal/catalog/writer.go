package catalog

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes document to path. The content goes to a temporary file in
// the same directory first and is renamed into place, so a failed write never
// leaves a truncated catalog behind. The directory must already exist.
func WriteFile(path, document string) (err error) {
	dir := filepath.Dir(path)
	if info, statErr := os.Stat(dir); statErr != nil {
		return fmt.Errorf("writing catalog: output dir: %w", statErr)
	} else if !info.IsDir() {
		return fmt.Errorf("writing catalog: %s is not a directory", dir)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if _, err = f.WriteString(document); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	if err = f.Chmod(0o644); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	return nil
}
