// ABOUTME: In-memory fake collaborators for integration tests
// ABOUTME: Builds a whole fake host so a Purger can run end to end without an OS
package helpers

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/RomanGlegola/Purge-Python-Environment/internal/residue"
)

// Host bundles one fake collaborator per source, sharing state the way
// the real host does (both registry views over one hive).
type Host struct {
	Packages *Packages
	Hive     *Hive
	Native   *StoreView
	Wow64    *StoreView
	Tree     *Tree
	Env      *Env
}

// NewHost returns a host with every collaborator empty and healthy.
func NewHost() *Host {
	hive := &Hive{Entries: map[string]string{}, FailKeys: map[string]bool{}}
	return &Host{
		Packages: &Packages{FailIDs: map[string]bool{}},
		Hive:     hive,
		Native:   &StoreView{Hive: hive, Prefix: `SOFTWARE\Microsoft`},
		Wow64:    &StoreView{Hive: hive, Prefix: `SOFTWARE\WOW6432Node`},
		Tree:     &Tree{FailPaths: map[string]bool{}},
		Env:      &Env{},
	}
}

// Purger wires the fake collaborators into a ready-to-run orchestrator.
func (h *Host) Purger() *residue.Purger {
	return &residue.Purger{
		Packages: h.Packages,
		Native:   h.Native,
		Wow64:    h.Wow64,
		Tree:     h.Tree,
		Env:      h.Env,
	}
}

// Packages is an in-memory package manager.
type Packages struct {
	Records     []residue.PackageRecord
	ListErr     error
	FailIDs     map[string]bool
	Uninstalled []string
}

func (p *Packages) ListInstalled() ([]residue.PackageRecord, error) {
	if p.ListErr != nil {
		return nil, p.ListErr
	}
	return p.Records, nil
}

func (p *Packages) Uninstall(id string) error {
	if p.FailIDs[id] {
		return fmt.Errorf("package %s is in use", id)
	}
	p.Uninstalled = append(p.Uninstalled, id)
	kept := p.Records[:0]
	for _, rec := range p.Records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	p.Records = kept
	return nil
}

// Hive is the shared uninstall-store state behind both views.
type Hive struct {
	Entries  map[string]string // key path -> display name
	FailKeys map[string]bool
	Deleted  []string
}

// StoreView lists the hive keys under one prefix; deletes go through
// the hive, so either view can delete the other's keys.
type StoreView struct {
	Hive    *Hive
	Prefix  string
	ListErr error
}

func (v *StoreView) Entries() ([]residue.UninstallEntry, error) {
	if v.ListErr != nil {
		return nil, v.ListErr
	}
	keys := make([]string, 0, len(v.Hive.Entries))
	for k := range v.Hive.Entries {
		if strings.HasPrefix(k, v.Prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	out := make([]residue.UninstallEntry, 0, len(keys))
	for _, k := range keys {
		out = append(out, residue.UninstallEntry{KeyPath: k, DisplayName: v.Hive.Entries[k]})
	}
	return out, nil
}

func (v *StoreView) Delete(keyPath string) error {
	if v.Hive.FailKeys[keyPath] {
		return errors.New("access denied")
	}
	delete(v.Hive.Entries, keyPath)
	v.Hive.Deleted = append(v.Hive.Deleted, keyPath)
	return nil
}

// Tree holds directories as slash-joined paths relative to the walk
// root, in depth-first visit order.
type Tree struct {
	Dirs      []string
	WalkErr   error
	FailPaths map[string]bool
	Deleted   []string
	lastRoot  string
}

func (t *Tree) WalkDirs(root string, fn func(path, name string) error) error {
	t.lastRoot = root
	if t.WalkErr != nil {
		return t.WalkErr
	}
	skipped := ""
	for _, dir := range t.Dirs {
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

func (t *Tree) DeleteTree(path string) error {
	if t.FailPaths[path] {
		return errors.New("directory locked")
	}
	t.Deleted = append(t.Deleted, path)
	rel := strings.TrimPrefix(path, t.lastRoot+"/")
	kept := t.Dirs[:0]
	for _, dir := range t.Dirs {
		if dir != rel && !strings.HasPrefix(dir, rel+"/") {
			kept = append(kept, dir)
		}
	}
	t.Dirs = kept
	return nil
}

// Env is an in-memory search-path variable.
type Env struct {
	Elements []string
	ListErr  error
	SetErr   error
	Writes   int
}

func (e *Env) List() ([]string, error) {
	if e.ListErr != nil {
		return nil, e.ListErr
	}
	return append([]string(nil), e.Elements...), nil
}

func (e *Env) SetList(elements []string) error {
	if e.SetErr != nil {
		return e.SetErr
	}
	e.Elements = append([]string(nil), elements...)
	e.Writes++
	return nil
}
