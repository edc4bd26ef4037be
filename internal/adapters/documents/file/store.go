package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/neon-boards/internal/adapters/documents"
	"github.com/bnema/neon-boards/internal/domain"
	"github.com/bnema/neon-boards/internal/ports"
)

const (
	storeDirMode     = 0o700
	documentFileMode = 0o600
	tempFilePattern  = ".document-*.json.tmp"
)

// Store keeps each document at root/collection/account/document.json.
type Store struct {
	root string
	mu   sync.RWMutex
}

var _ ports.DocumentStore = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

func (s *Store) Query(ctx context.Context, q ports.DocumentQuery) (domain.BoardCollection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.pathFor(q)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read document %s/%s: %w", q.AccountID, q.DocumentID, err)
	}

	return documents.Decode(data)
}

func (s *Store) Save(ctx context.Context, q ports.DocumentQuery, boards domain.BoardCollection) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathFor(q)
	if err != nil {
		return err
	}

	data, err := documents.Encode(boards)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), storeDirMode); err != nil {
		return fmt.Errorf("create document directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp document file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp document file: %w", err)
	}

	if err := tempFile.Chmod(documentFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp document file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp document file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace document %s/%s: %w", q.AccountID, q.DocumentID, err)
	}

	cleanup = false

	return nil
}

func (s *Store) pathFor(q ports.DocumentQuery) (string, error) {
	if err := documents.Validate(q); err != nil {
		return "", err
	}

	return filepath.Join(s.root, q.Collection, string(q.AccountID), q.DocumentID+".json"), nil
}
