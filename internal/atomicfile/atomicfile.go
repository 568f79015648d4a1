// Package atomicfile writes a file's new contents to a temporary sibling
// and renames it into place, so a crash or concurrent reader never
// observes a partially-written document. No library in the retrieved pack
// covers this; it is a small, self-contained stdlib concern with no
// domain-specific behavior a third-party dependency would add value to.
package atomicfile

import (
	"os"
	"path/filepath"
)

// Write atomically replaces path's contents with data, preserving perm
// for newly created files.
func Write(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".md-splice-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
