package credfile

// Package credfile stores the credential record as a JSON file, the
// client-side equivalent of browser local storage. Writes are atomic
// (temp file + rename) and the file is readable only by the owner.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	domainauth "github.com/wanderlanka/planner-cli/internal/domain/auth"
	"github.com/wanderlanka/planner-cli/internal/ports"
)

// Store is a file-backed credential store.
type Store struct {
	path string
}

// New creates a Store writing to the given path.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("credential file path is required")
	}
	return &Store{path: path}, nil
}

func (s *Store) Save(_ context.Context, rec domainauth.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal credential record: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create credential directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".credentials-*")
	if err != nil {
		return fmt.Errorf("create temp credential file: %w", err)
	}
	tmpName := tmp.Name()

	if err := writeAndClose(tmp, data); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace credential file: %w", err)
	}
	return nil
}

func (s *Store) Load(_ context.Context) (domainauth.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domainauth.Record{}, ports.ErrNoCredentials
		}
		return domainauth.Record{}, fmt.Errorf("read credential file: %w", err)
	}

	var rec domainauth.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		// Malformed data is treated as "no session", not an error.
		return domainauth.Record{}, ports.ErrNoCredentials
	}
	if !rec.Valid() {
		return domainauth.Record{}, ports.ErrNoCredentials
	}
	return rec, nil
}

func (s *Store) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credential file: %w", err)
	}
	return nil
}

func writeAndClose(f *os.File, data []byte) error {
	if err := f.Chmod(0o600); err != nil {
		_ = f.Close()
		return fmt.Errorf("chmod credential file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write credential file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close credential file: %w", err)
	}
	return nil
}
