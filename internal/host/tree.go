// ABOUTME: FileSystemTree port over the real filesystem
// ABOUTME: Recursive directory walk tolerant of unreadable subtrees, forced delete
package host

import (
	"io/fs"
	"os"
	"path/filepath"
)

// OSTree walks and deletes real directory trees.
type OSTree struct{}

// WalkDirs visits every directory below root, root itself excluded.
// Subtrees that cannot be read are skipped, never aborting the walk; only
// an unreadable root is reported. fn may return fs.SkipDir to prune
// descent into the directory it was called for.
func (OSTree) WalkDirs(root string, fn func(path, name string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// Unreadable subtree: skip it and keep walking siblings.
			return nil
		}
		if !d.IsDir() || path == root {
			return nil
		}
		return fn(path, d.Name())
	})
}

// DeleteTree recursively and forcibly deletes the directory at path.
func (OSTree) DeleteTree(path string) error {
	return os.RemoveAll(path)
}
