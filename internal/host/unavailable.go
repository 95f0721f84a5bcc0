// ABOUTME: Non-Windows stand-ins for the package and registry collaborators
// ABOUTME: They fail at query time so the affected sources degrade to empty
//go:build !windows

package host

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/RomanGlegola/Purge-Python-Environment/internal/residue"
)

var errNeedsWindows = errors.New("requires Windows")

type unavailablePackages struct{}

// NewPackageManager returns a collaborator whose queries always fail on
// this platform; the installation source degrades to zero candidates.
func NewPackageManager() residue.PackageManager {
	return unavailablePackages{}
}

func (unavailablePackages) ListInstalled() ([]residue.PackageRecord, error) {
	return nil, fmt.Errorf("installed-package query on %s: %w", runtime.GOOS, errNeedsWindows)
}

func (unavailablePackages) Uninstall(id string) error {
	return fmt.Errorf("uninstall %s on %s: %w", id, runtime.GOOS, errNeedsWindows)
}

type unavailableStore struct {
	view string
}

// NewNativeUninstallStore returns a failing native uninstall view.
func NewNativeUninstallStore() residue.UninstallStore {
	return unavailableStore{view: "native"}
}

// NewWow64UninstallStore returns a failing 32-bit uninstall view.
func NewWow64UninstallStore() residue.UninstallStore {
	return unavailableStore{view: "32-bit"}
}

func (s unavailableStore) Entries() ([]residue.UninstallEntry, error) {
	return nil, fmt.Errorf("%s uninstall store on %s: %w", s.view, runtime.GOOS, errNeedsWindows)
}

func (s unavailableStore) Delete(keyPath string) error {
	return fmt.Errorf("delete %s on %s: %w", keyPath, runtime.GOOS, errNeedsWindows)
}
