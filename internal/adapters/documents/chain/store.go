package chain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bnema/neon-boards/internal/domain"
	"github.com/bnema/neon-boards/internal/ports"
)

// Store reads and writes through primary and falls back to a second store
// when the primary fails for any reason other than the caller giving up.
type Store struct {
	primary  ports.DocumentStore
	fallback ports.DocumentStore
	log      *slog.Logger
}

var _ ports.DocumentStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary document store is nil")
	errNilFallbackStore = errors.New("fallback document store is nil")
)

func NewStore(primary ports.DocumentStore, fallback ports.DocumentStore, log *slog.Logger) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Store{primary: primary, fallback: fallback, log: log}, nil
}

func (s *Store) Query(ctx context.Context, q ports.DocumentQuery) (domain.BoardCollection, error) {
	boards, err := s.primary.Query(ctx, q)
	if err == nil {
		return boards, nil
	}
	if shouldSkipFallback(err) {
		return nil, err
	}

	s.log.Warn("primary document store query failed, using fallback", "account_id", q.AccountID, "error", err)

	fallbackBoards, fallbackErr := s.fallback.Query(ctx, q)
	if fallbackErr == nil {
		return fallbackBoards, nil
	}

	return nil, fmt.Errorf("query document: %w", errors.Join(err, fallbackErr))
}

func (s *Store) Save(ctx context.Context, q ports.DocumentQuery, boards domain.BoardCollection) error {
	err := s.primary.Save(ctx, q, boards)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	s.log.Warn("primary document store save failed, using fallback", "account_id", q.AccountID, "error", err)

	fallbackErr := s.fallback.Save(ctx, q, boards)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("save document: %w", errors.Join(err, fallbackErr))
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
