// ABOUTME: InstalledPackageQuery port backed by PowerShell PackageManagement
// ABOUTME: Enumerates Get-Package records and uninstalls them by name
//go:build windows

package host

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/RomanGlegola/Purge-Python-Environment/internal/residue"
)

// PowerShellPackages queries installed-package providers through
// PowerShell's PackageManagement cmdlets.
type PowerShellPackages struct{}

// NewPackageManager returns the Windows package collaborator.
func NewPackageManager() residue.PackageManager {
	return &PowerShellPackages{}
}

type psPackage struct {
	Name    string `json:"Name"`
	Version string `json:"Version"`
}

// ListInstalled enumerates every package registration visible to
// PackageManagement. The display name carries the version so version
// exclusion applies to it; the removal handle is the package name.
func (p *PowerShellPackages) ListInstalled() ([]residue.PackageRecord, error) {
	out, err := runPowerShell(`Get-Package | Select-Object Name,Version | ConvertTo-Json -Compress`)
	if err != nil {
		return nil, fmt.Errorf("enumerate packages: %w", err)
	}

	packages, err := parsePSPackages(out)
	if err != nil {
		return nil, fmt.Errorf("parse package list: %w", err)
	}

	records := make([]residue.PackageRecord, 0, len(packages))
	for _, pkg := range packages {
		if pkg.Name == "" {
			continue
		}
		display := pkg.Name
		if pkg.Version != "" {
			display += " " + pkg.Version
		}
		records = append(records, residue.PackageRecord{ID: pkg.Name, DisplayName: display})
	}
	return records, nil
}

// Uninstall triggers package removal by name. May fail when the package is
// in use or protected by its provider.
func (p *PowerShellPackages) Uninstall(id string) error {
	script := fmt.Sprintf(`Uninstall-Package -Name '%s' -Force | Out-Null`, psQuote(id))
	if _, err := runPowerShell(script); err != nil {
		return fmt.Errorf("uninstall %s: %w", id, err)
	}
	return nil
}

// parsePSPackages handles ConvertTo-Json emitting a bare object for a
// single result and an array otherwise.
func parsePSPackages(out []byte) ([]psPackage, error) {
	trimmed := strings.TrimSpace(string(out))
	if trimmed == "" {
		return nil, nil
	}

	var packages []psPackage
	if err := json.Unmarshal([]byte(trimmed), &packages); err != nil {
		var single psPackage
		if err := json.Unmarshal([]byte(trimmed), &single); err != nil {
			return nil, err
		}
		packages = []psPackage{single}
	}
	return packages, nil
}

func psQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func runPowerShell(script string) ([]byte, error) {
	cmd := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", script)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, err
	}
	return out, nil
}
