// ABOUTME: Collaborator ports the removal pipeline depends on
// ABOUTME: Interfaces are defined here, on the consumer side; internal/host implements them
package residue

import "fmt"

// PackageRecord is one installed-package registration.
type PackageRecord struct {
	ID          string
	DisplayName string
}

// PackageManager enumerates and uninstalls installed packages.
type PackageManager interface {
	ListInstalled() ([]PackageRecord, error)
	Uninstall(id string) error
}

// UninstallEntry is one uninstall-store registration.
type UninstallEntry struct {
	KeyPath     string
	DisplayName string
}

// UninstallStore enumerates and deletes uninstall-registration entries in
// one view of the store. Delete is tolerant of already-deleted entries and
// accepts any fully qualified key path, not only ones this view listed.
type UninstallStore interface {
	Entries() ([]UninstallEntry, error)
	Delete(keyPath string) error
}

// FileTree walks and deletes directory trees. WalkDirs visits every
// directory below root (root itself excluded), skipping subtrees it cannot
// read instead of aborting. Returning fs.SkipDir from fn prunes descent
// into the visited directory.
type FileTree interface {
	WalkDirs(root string, fn func(path, name string) error) error
	DeleteTree(path string) error
}

// PathEnv reads and rewrites the delimiter-joined executable search path.
// The remover reads the list once and writes it once per run.
type PathEnv interface {
	List() ([]string, error)
	SetList(elements []string) error
}

// SourceUnavailableError indicates a collaborator could not be queried at
// all. The affected locator degrades to an empty result set and the run
// continues with the other sources.
type SourceUnavailableError struct {
	Source SourceKind
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("%s source unavailable: %v", e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}
