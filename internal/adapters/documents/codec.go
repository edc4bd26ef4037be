// Package documents holds what the board document stores share: query
// validation and the JSON encoding of a board collection.
package documents

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/neon-boards/internal/domain"
	"github.com/bnema/neon-boards/internal/ports"
)

var ErrInvalidQuery = errors.New("invalid document query")

// Validate rejects queries whose parts are empty or could escape a namespace
// when joined into a path or key.
func Validate(q ports.DocumentQuery) error {
	parts := map[string]string{
		"collection":  q.Collection,
		"account id":  string(q.AccountID),
		"document id": q.DocumentID,
	}
	for name, value := range parts {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalidQuery, name)
		}
		if strings.ContainsAny(trimmed, `/\:`) || trimmed == "." || trimmed == ".." {
			return fmt.Errorf("%w: %s %q", ErrInvalidQuery, name, value)
		}
	}

	return nil
}

func Encode(boards domain.BoardCollection) ([]byte, error) {
	if boards == nil {
		boards = domain.BoardCollection{}
	}

	data, err := json.Marshal(boards)
	if err != nil {
		return nil, fmt.Errorf("encode board collection: %w", err)
	}

	return data, nil
}

// Decode parses a stored document. A JSON null decodes to a nil collection.
func Decode(data []byte) (domain.BoardCollection, error) {
	var boards domain.BoardCollection
	if err := json.Unmarshal(data, &boards); err != nil {
		return nil, fmt.Errorf("decode board collection: %w", err)
	}

	return boards, nil
}
