package application

import (
	"context"

	"github.com/bnema/neon-boards/internal/domain"
)

type AccountPickerProps struct {
	Current         domain.Account
	Accounts        []domain.Account
	OnAccountChange func(domain.Account)
}

type ListViewProps struct {
	Boards          domain.BoardCollection
	AccountID       domain.AccountID
	OnBoardSelected func(key string)
	OnUpdate        func(boards domain.BoardCollection)
}

type BoardViewProps struct {
	Key       string
	Board     domain.Board
	Found     bool
	Boards    domain.BoardCollection
	AccountID domain.AccountID
	User      domain.User
	TimeRange domain.TimeRange
	OnClose   func(replacement domain.BoardCollection)
	OnUpdate  func(boards domain.BoardCollection)
	Persist   func(ctx context.Context, boards domain.BoardCollection) error
}

// Screen is what the host renders for one snapshot: the picker always, then
// either the spinner, the board list, or the open board.
type Screen struct {
	Picker  AccountPickerProps
	Spinner bool
	List    *ListViewProps
	Board   *BoardViewProps
}

// Screen builds the child view inputs for the current snapshot. The time
// range is read by the host at render time and passed through untouched.
func (c *Controller) Screen(timeRange domain.TimeRange) Screen {
	return c.ScreenFor(c.Snapshot(), timeRange)
}

func (c *Controller) ScreenFor(state State, timeRange domain.TimeRange) Screen {
	screen := Screen{
		Picker: AccountPickerProps{
			Accounts:        state.Accounts,
			OnAccountChange: c.SelectAccount,
		},
	}
	if state.Selected != nil {
		screen.Picker.Current = *state.Selected
	}

	switch state.View() {
	case ViewSpinner:
		screen.Spinner = true
	case ViewList:
		screen.List = &ListViewProps{
			Boards:          state.Boards,
			AccountID:       state.AccountID(),
			OnBoardSelected: c.OpenBoard,
			OnUpdate:        c.UpdateBoards,
		}
	case ViewBoard:
		board, found := state.ActiveBoard()
		screen.Board = &BoardViewProps{
			Key:       state.ActiveBoardKey,
			Board:     board,
			Found:     found,
			Boards:    state.Boards,
			AccountID: state.AccountID(),
			User:      state.User,
			TimeRange: timeRange,
			OnClose:   c.CloseBoard,
			OnUpdate:  c.UpdateBoards,
			Persist:   c.SaveBoards,
		}
	}

	return screen
}
