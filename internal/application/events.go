package application

import (
	"time"

	"github.com/bnema/neon-boards/internal/domain"
)

// Event is an input to Reduce: a user intent or a remote completion.
type Event interface {
	isEvent()
}

type AccountsFetched struct {
	Accounts []domain.Account
}

type AccountSelected struct {
	Account domain.Account
}

type BoardsLoaded struct {
	AccountID domain.AccountID
	Seq       uint64
	Boards    domain.BoardCollection
	Elapsed   time.Duration
}

type BoardsLoadFailed struct {
	AccountID domain.AccountID
	Seq       uint64
	Err       error
	Elapsed   time.Duration
}

type UserResolved struct {
	User domain.User
}

type BoardOpened struct {
	Key string
}

// BoardClosed returns to the list. A non-nil Replacement, even an empty one,
// replaces the collection in the same transition.
type BoardClosed struct {
	Replacement domain.BoardCollection
}

type BoardsReplaced struct {
	Boards domain.BoardCollection
}

func (AccountsFetched) isEvent()  {}
func (AccountSelected) isEvent()  {}
func (BoardsLoaded) isEvent()     {}
func (BoardsLoadFailed) isEvent() {}
func (UserResolved) isEvent()     {}
func (BoardOpened) isEvent()      {}
func (BoardClosed) isEvent()      {}
func (BoardsReplaced) isEvent()   {}

// Effect is a side effect requested by a transition. The controller runs them
// after the new state is committed.
type Effect interface {
	isEffect()
}

type LoadBoards struct {
	AccountID domain.AccountID
	Seq       uint64
}

type Notify struct {
	Toast domain.Toast
}

type LoadDiscarded struct {
	AccountID domain.AccountID
	Seq       uint64
	Failed    bool
}

func (LoadBoards) isEffect()    {}
func (Notify) isEffect()        {}
func (LoadDiscarded) isEffect() {}
