package application

import (
	"context"
	"fmt"

	"github.com/bnema/neon-boards/internal/domain"
	"github.com/bnema/neon-boards/internal/ports"
)

type BoardStore struct {
	store ports.DocumentStore
	clock ports.Clock
}

func NewBoardStore(store ports.DocumentStore, clock ports.Clock) *BoardStore {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &BoardStore{store: store, clock: clock}
}

// Load fetches the collection for req.AccountID. The result carries the
// request's tag so the reducer can drop it once it is stale.
func (s *BoardStore) Load(ctx context.Context, req LoadBoards) Event {
	started := s.clock.Now()
	boards, err := s.store.Query(ctx, BoardsDocument(req.AccountID))
	elapsed := s.clock.Now().Sub(started)

	if err != nil {
		return BoardsLoadFailed{AccountID: req.AccountID, Seq: req.Seq, Err: err, Elapsed: elapsed}
	}

	return BoardsLoaded{AccountID: req.AccountID, Seq: req.Seq, Boards: boards, Elapsed: elapsed}
}

// Save persists an edited collection for the account.
func (s *BoardStore) Save(ctx context.Context, accountID domain.AccountID, boards domain.BoardCollection) error {
	if accountID == "" {
		return fmt.Errorf("save boards: %w", domain.ErrAccountNotFound)
	}

	if err := s.store.Save(ctx, BoardsDocument(accountID), boards); err != nil {
		return fmt.Errorf("save boards document: %w", err)
	}

	return nil
}
