package ports

import (
	"context"

	"github.com/bnema/neon-boards/internal/domain"
)

type FetchPolicy string

const (
	FetchPolicyCacheFirst FetchPolicy = "cache_first"
	FetchPolicyNoCache    FetchPolicy = "no_cache"
)

type IdentityRequest struct {
	Query       string
	FetchPolicy FetchPolicy
}

// IdentityQuery resolves the authenticated user. A nil user with a nil error
// means the response carried no user.
type IdentityQuery interface {
	CurrentUser(ctx context.Context, req IdentityRequest) (*domain.User, error)
}
