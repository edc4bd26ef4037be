package ports

import (
	"context"

	"github.com/bnema/neon-boards/internal/domain"
)

// AccountQuery lists the accounts the current user may access. Implementations
// return domain.ErrNoAccountList when the backend answers without a list.
type AccountQuery interface {
	Accounts(ctx context.Context) ([]domain.Account, error)
}
