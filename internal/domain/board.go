package domain

import (
	"encoding/json"
	"sort"
)

// Board is an account-scoped document whose structure belongs to the board view.
type Board = json.RawMessage

// BoardCollection maps a unique board name to its document.
type BoardCollection map[string]Board

// Keys returns the board names in lexical order.
func (c BoardCollection) Keys() []string {
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

// Clone copies the map and every document so callers cannot alias session state.
func (c BoardCollection) Clone() BoardCollection {
	if c == nil {
		return nil
	}

	cloned := make(BoardCollection, len(c))
	for key, board := range c {
		if board == nil {
			cloned[key] = nil
			continue
		}
		cloned[key] = append(Board(nil), board...)
	}

	return cloned
}

// Without returns a copy of the collection minus the named board.
func (c BoardCollection) Without(key string) BoardCollection {
	cloned := c.Clone()
	if cloned == nil {
		return BoardCollection{}
	}
	delete(cloned, key)

	return cloned
}
