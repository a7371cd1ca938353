package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/malakstore/souq/internal/models"
	"github.com/spf13/afero"
)

// ProfileStore persists the current user's profile across process runs as
// a single JSON blob under a fixed key. An absent blob means "guest".
type ProfileStore struct {
	fs   afero.Fs
	path string
}

// NewProfileStore stores the profile at path on the real filesystem.
func NewProfileStore(path string) *ProfileStore {
	return &ProfileStore{fs: afero.NewOsFs(), path: path}
}

// NewProfileStoreFs is the injectable constructor used by tests with an
// in-memory filesystem.
func NewProfileStoreFs(fs afero.Fs, path string) *ProfileStore {
	return &ProfileStore{fs: fs, path: path}
}

// Load reads the stored user. A missing file is not an error: it returns
// (nil, nil), meaning the session starts as a guest.
func (ps *ProfileStore) Load() (*models.User, error) {
	data, err := afero.ReadFile(ps.fs, ps.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &u, nil
}

// Save writes the user blob, creating parent directories as needed.
func (ps *ProfileStore) Save(u *models.User) error {
	if err := ps.fs.MkdirAll(filepath.Dir(ps.path), 0o755); err != nil {
		return fmt.Errorf("failed to create profile dir: %w", err)
	}

	data, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := afero.WriteFile(ps.fs, ps.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

// Clear removes the stored profile; used on logout.
func (ps *ProfileStore) Clear() error {
	if err := ps.fs.Remove(ps.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove profile: %w", err)
	}
	return nil
}
