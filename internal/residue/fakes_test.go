// ABOUTME: In-memory fake collaborators shared by the residue package tests
// ABOUTME: Each fake mimics the failure modes its real counterpart can exhibit
package residue

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

type fakePackages struct {
	records   []PackageRecord
	listErr   error
	failIDs   map[string]bool
	uninstall []string
}

func (f *fakePackages) ListInstalled() ([]PackageRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.records, nil
}

func (f *fakePackages) Uninstall(id string) error {
	if f.failIDs[id] {
		return fmt.Errorf("package %s is in use", id)
	}
	f.uninstall = append(f.uninstall, id)
	kept := f.records[:0]
	for _, rec := range f.records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	f.records = kept
	return nil
}

// fakeHive is the shared uninstall-store state; fakeStore is one view over
// it. Deletion goes through the hive, so a key listed by one view can be
// deleted through another, matching the real registry's behavior with
// fully qualified key paths.
type fakeHive struct {
	entries  map[string]string // key path -> display name
	failKeys map[string]bool
	deleted  []string
}

type fakeStore struct {
	hive    *fakeHive
	prefix  string // key-path prefix this view lists
	listErr error
}

func (f *fakeStore) Entries() ([]UninstallEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	keys := make([]string, 0, len(f.hive.entries))
	for k := range f.hive.entries {
		if strings.HasPrefix(k, f.prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	out := make([]UninstallEntry, 0, len(keys))
	for _, k := range keys {
		out = append(out, UninstallEntry{KeyPath: k, DisplayName: f.hive.entries[k]})
	}
	return out, nil
}

func (f *fakeStore) Delete(keyPath string) error {
	if f.hive.failKeys[keyPath] {
		return errors.New("access denied")
	}
	// Tolerant of already-deleted keys, like the real store.
	delete(f.hive.entries, keyPath)
	f.hive.deleted = append(f.hive.deleted, keyPath)
	return nil
}

func newFakeViews(native, wow map[string]string) (*fakeHive, *fakeStore, *fakeStore) {
	hive := &fakeHive{entries: map[string]string{}, failKeys: map[string]bool{}}
	for k, v := range native {
		hive.entries[k] = v
	}
	for k, v := range wow {
		hive.entries[k] = v
	}
	nativeStore := &fakeStore{hive: hive, prefix: `SOFTWARE\Microsoft`}
	wowStore := &fakeStore{hive: hive, prefix: `SOFTWARE\WOW6432Node`}
	return hive, nativeStore, wowStore
}

// fakeTree holds directories as slash-joined paths relative to the walk
// root, in the depth-first order a real walk would visit them.
type fakeTree struct {
	dirs      []string
	walkErr   error
	failPaths map[string]bool
	deleted   []string
	lastRoot  string
}

func (f *fakeTree) WalkDirs(root string, fn func(path, name string) error) error {
	f.lastRoot = root
	if f.walkErr != nil {
		return f.walkErr
	}
	skipped := ""
	for _, dir := range f.dirs {
		if skipped != "" && strings.HasPrefix(dir, skipped+"/") {
			continue
		}
		name := dir
		if i := strings.LastIndex(dir, "/"); i >= 0 {
			name = dir[i+1:]
		}
		err := fn(root+"/"+dir, name)
		if err == fs.SkipDir {
			skipped = dir
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeTree) DeleteTree(path string) error {
	if f.failPaths[path] {
		return errors.New("directory locked")
	}
	f.deleted = append(f.deleted, path)
	rel := strings.TrimPrefix(path, f.lastRoot+"/")
	kept := f.dirs[:0]
	for _, dir := range f.dirs {
		if dir != rel && !strings.HasPrefix(dir, rel+"/") {
			kept = append(kept, dir)
		}
	}
	f.dirs = kept
	return nil
}

type fakeEnv struct {
	elements []string
	listErr  error
	setErr   error
	writes   int
}

func (f *fakeEnv) List() ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]string(nil), f.elements...), nil
}

func (f *fakeEnv) SetList(elements []string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.elements = append([]string(nil), elements...)
	f.writes++
	return nil
}
