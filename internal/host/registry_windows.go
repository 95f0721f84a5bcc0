// ABOUTME: UninstallStore port over the HKLM uninstall hive
// ABOUTME: Two views, native and WOW6432Node, with fully qualified key paths
//go:build windows

package host

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sys/windows/registry"

	"github.com/RomanGlegola/Purge-Python-Environment/internal/residue"
)

const (
	uninstallKeyPath      = `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`
	wow64UninstallKeyPath = `SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`
)

// RegistryUninstallStore is one view of the HKLM uninstall hive. Key paths
// are fully qualified relative to HKLM, so either view can delete an entry
// the other one listed.
type RegistryUninstallStore struct {
	base string
}

// NewNativeUninstallStore returns the native-bitness uninstall view.
func NewNativeUninstallStore() residue.UninstallStore {
	return &RegistryUninstallStore{base: uninstallKeyPath}
}

// NewWow64UninstallStore returns the 32-bit-on-64-bit uninstall view.
func NewWow64UninstallStore() residue.UninstallStore {
	return &RegistryUninstallStore{base: wow64UninstallKeyPath}
}

// Entries lists registrations in this view that carry a DisplayName value.
// A missing hive section is an empty view, not an error.
func (s *RegistryUninstallStore) Entries() ([]residue.UninstallEntry, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, s.base, registry.READ)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", s.base, err)
	}
	defer key.Close()

	names, err := key.ReadSubKeyNames(-1)
	if err != nil {
		return nil, fmt.Errorf("enumerate %s: %w", s.base, err)
	}

	var entries []residue.UninstallEntry
	for _, name := range names {
		keyPath := s.base + `\` + name
		sub, err := registry.OpenKey(registry.LOCAL_MACHINE, keyPath, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		display, _, err := sub.GetStringValue("DisplayName")
		sub.Close()
		if err != nil || strings.TrimSpace(display) == "" {
			continue
		}
		entries = append(entries, residue.UninstallEntry{KeyPath: keyPath, DisplayName: display})
	}
	return entries, nil
}

// Delete removes the key at keyPath, tolerating already-deleted keys.
func (s *RegistryUninstallStore) Delete(keyPath string) error {
	err := registry.DeleteKey(registry.LOCAL_MACHINE, keyPath)
	if errors.Is(err, registry.ErrNotExist) {
		return nil
	}
	return err
}
