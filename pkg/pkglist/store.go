// pkg/pkglist/store.go
package pkglist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrStoreUnavailable indicates the on-disk list cannot be created or read
	ErrStoreUnavailable = errors.New("package list store unavailable")

	// ErrPersistFailed indicates a sync-back write could not be committed
	ErrPersistFailed = errors.New("failed to persist package list")
)

// Store reads and writes the persisted package list. The file is the
// single source of truth for desired state across invocations.
type Store struct {
	Path string
}

// DefaultPath resolves the XDG-compliant list location,
// $XDG_CONFIG_HOME/nixman/packages.yml.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "nixman", "packages.yml")
}

// NewStore creates a store for the given path, falling back to the
// default location when path is empty.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{Path: path}
}

// Ensure idempotently creates the store file with an empty package
// list when it does not exist. It reports whether the file was
// created.
func (s *Store) Ensure() (bool, error) {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return false, fmt.Errorf("%w: creating %s: %v", ErrStoreUnavailable, filepath.Dir(s.Path), err)
	}
	if _, err := os.Stat(s.Path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	data, err := Marshal(List{})
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return true, nil
}

// Load reads and parses the persisted list.
func (s *Store) Load() (List, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return List{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return Unmarshal(data)
}

// Save overwrites the persisted list.
func (s *Store) Save(list List) error {
	data, err := Marshal(list)
	if err != nil {
		return fmt.Errorf("marshaling package list: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", s.Path, err)
	}
	return nil
}

// RecordInstall adds or overwrites the record for name in the
// persisted list. It is the sync-back path after a successful
// install; a failed write never rolls the install back.
func (s *Store) RecordInstall(name, version string) error {
	list, err := s.Load()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	list.Set(Package{Name: name, Version: version})
	if err := s.Save(list); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	return nil
}

// RecordRemove deletes the record for name from the persisted list.
// Removing an absent name still rewrites the file and succeeds.
func (s *Store) RecordRemove(name string) error {
	list, err := s.Load()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	list.Remove(name)
	if err := s.Save(list); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	return nil
}
