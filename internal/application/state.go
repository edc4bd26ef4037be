package application

import "github.com/bnema/neon-boards/internal/domain"

type View int

const (
	ViewSpinner View = iota
	ViewList
	ViewBoard
)

func (v View) String() string {
	switch v {
	case ViewList:
		return "list"
	case ViewBoard:
		return "board"
	default:
		return "spinner"
	}
}

// State is the session of one panel instance. Only the reducer produces new
// values; everything else reads snapshots.
type State struct {
	Accounts       []domain.Account
	AccountsLoaded bool
	Selected       *domain.Account
	Boards         domain.BoardCollection
	ActiveBoardKey string
	BoardOpen      bool
	User           domain.User

	// LoadSeq tags the latest board load issued; LoadedSeq the latest one applied.
	LoadSeq       uint64
	LoadedSeq     uint64
	LastLoadError string
}

func NewState() State {
	return State{Boards: domain.BoardCollection{}}
}

func (s State) AccountID() domain.AccountID {
	if s.Selected == nil {
		return ""
	}

	return s.Selected.ID
}

func (s State) View() View {
	switch {
	case s.AccountID() == "":
		return ViewSpinner
	case s.BoardOpen:
		return ViewBoard
	default:
		return ViewList
	}
}

// ActiveBoard returns the open board. found is false when no board is open or
// the open key is missing from the collection.
func (s State) ActiveBoard() (board domain.Board, found bool) {
	if !s.BoardOpen {
		return nil, false
	}

	board, found = s.Boards[s.ActiveBoardKey]
	return board, found
}

// BoardsReady reports whether the latest load for the selected account has completed.
func (s State) BoardsReady() bool {
	return s.Selected != nil && s.LoadSeq > 0 && s.LoadedSeq == s.LoadSeq
}

func (s State) Clone() State {
	cloned := s
	cloned.Accounts = append([]domain.Account(nil), s.Accounts...)
	if s.Selected != nil {
		selected := *s.Selected
		cloned.Selected = &selected
	}
	cloned.Boards = s.Boards.Clone()

	return cloned
}
