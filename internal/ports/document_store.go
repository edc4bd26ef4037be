package ports

import (
	"context"

	"github.com/bnema/neon-boards/internal/domain"
)

type DocumentQuery struct {
	Collection string
	AccountID  domain.AccountID
	DocumentID string
}

// DocumentStore is account-scoped remote storage. Query returns a nil
// collection and a nil error when the document does not exist.
type DocumentStore interface {
	Query(ctx context.Context, q DocumentQuery) (domain.BoardCollection, error)
	Save(ctx context.Context, q DocumentQuery, boards domain.BoardCollection) error
}
