package application

import (
	"context"
	"log/slog"

	"github.com/bnema/neon-boards/internal/ports"
)

type IdentityResolver struct {
	query ports.IdentityQuery
	log   *slog.Logger
}

func NewIdentityResolver(query ports.IdentityQuery, log *slog.Logger) *IdentityResolver {
	return &IdentityResolver{query: query, log: orDiscard(log)}
}

// Resolve issues the single identity query. Failures are absorbed: identity
// only decorates the board view.
func (r *IdentityResolver) Resolve(ctx context.Context) Event {
	user, err := r.query.CurrentUser(ctx, CurrentUserRequest())
	if err != nil {
		r.log.Debug("identity query failed", "error", err)
		return nil
	}
	if user == nil {
		r.log.Debug("identity response carried no user")
		return nil
	}

	return UserResolved{User: *user}
}

func orDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.New(slog.DiscardHandler)
	}

	return log
}
