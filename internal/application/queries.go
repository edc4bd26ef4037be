package application

import (
	"github.com/bnema/neon-boards/internal/domain"
	"github.com/bnema/neon-boards/internal/ports"
)

const (
	CurrentUserQuery = `{ actor { user { email id name } } }`

	BoardsCollection = "neondb"
	BoardsDocumentID = "boards"
)

// CurrentUserRequest asks for the signed-in user, bypassing any cached answer.
func CurrentUserRequest() ports.IdentityRequest {
	return ports.IdentityRequest{
		Query:       CurrentUserQuery,
		FetchPolicy: ports.FetchPolicyNoCache,
	}
}

// BoardsDocument addresses the board collection of one account.
func BoardsDocument(accountID domain.AccountID) ports.DocumentQuery {
	return ports.DocumentQuery{
		Collection: BoardsCollection,
		AccountID:  accountID,
		DocumentID: BoardsDocumentID,
	}
}
