// ABOUTME: Assembles the real collaborator implementations for this host
// ABOUTME: Per-OS scan root and the wiring point for all four ports
package host

import (
	"runtime"

	"github.com/RomanGlegola/Purge-Python-Environment/internal/residue"
)

// Collaborators bundles the real implementations of the four ports.
type Collaborators struct {
	Packages residue.PackageManager
	Native   residue.UninstallStore
	Wow64    residue.UninstallStore
	Tree     residue.FileTree
	Env      residue.PathEnv
}

// New assembles collaborators for the current host. Platform-specific
// adapters (packages, registry) come from the build-tagged constructors;
// on hosts without them the source degrades at query time.
func New() *Collaborators {
	return &Collaborators{
		Packages: NewPackageManager(),
		Native:   NewNativeUninstallStore(),
		Wow64:    NewWow64UninstallStore(),
		Tree:     OSTree{},
		Env:      NewOSPathEnv(),
	}
}

// DefaultScanRoot returns the system-volume root to walk for leftover
// directories when no override is configured.
func DefaultScanRoot() string {
	if runtime.GOOS == "windows" {
		return `C:\`
	}
	return "/"
}
