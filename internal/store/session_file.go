package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// fileSessionStore is the default implementation of [SessionStore]. It keeps
// the blob in a single file so the sidecar survives container restarts as
// long as the file lives on a mounted volume.
type fileSessionStore struct {
	path string
}

// NewFileSessionStore constructs a [SessionStore] persisting to path.
func NewFileSessionStore(path string) SessionStore {
	return &fileSessionStore{path: path}
}

func (f *fileSessionStore) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	blob, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, f.path)
		}
		return nil, fmt.Errorf("error reading session file: %w", err)
	}

	return blob, nil
}

func (f *fileSessionStore) Save(ctx context.Context, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("error creating session directory: %w", err)
		}
	}

	// The blob carries the provider credential: owner-only permissions.
	if err := os.WriteFile(f.path, blob, 0o600); err != nil {
		return fmt.Errorf("error writing session file: %w", err)
	}

	return nil
}
