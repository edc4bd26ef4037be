package ports

import (
	"context"

	"github.com/bnema/neon-boards/internal/domain"
)

// AccountRepository is the writable side of the local account registry.
type AccountRepository interface {
	AccountQuery
	Save(ctx context.Context, account domain.Account) error
}
