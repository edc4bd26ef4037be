package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bnema/neon-boards/internal/domain"
	"github.com/bnema/neon-boards/internal/ports"
)

type AccountRegistry struct {
	query ports.AccountQuery
	log   *slog.Logger
}

func NewAccountRegistry(query ports.AccountQuery, log *slog.Logger) *AccountRegistry {
	return &AccountRegistry{query: query, log: orDiscard(log)}
}

// Fetch issues the single account list query. A failed or unrecognisable
// response yields no event and leaves the panel unselected.
func (r *AccountRegistry) Fetch(ctx context.Context) Event {
	accounts, err := r.query.Accounts(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoAccountList) {
			r.log.Debug("account response carried no account list")
		} else {
			r.log.Debug("account query failed", "error", err)
		}
		return nil
	}

	r.log.Debug("accounts fetched", "count", len(accounts))
	return AccountsFetched{Accounts: accounts}
}
