package application

import "github.com/bnema/neon-boards/internal/domain"

const LoadFailedTitle = "Unable to fetch data"

// Reduce applies one event to the session and returns the effects the
// transition requires. It never mutates maps or slices reachable from state.
func Reduce(state State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case AccountsFetched:
		state.Accounts = append([]domain.Account(nil), ev.Accounts...)
		state.AccountsLoaded = true
		if len(state.Accounts) == 0 {
			return state, nil
		}
		return selectAccount(state, state.Accounts[0])

	case AccountSelected:
		return selectAccount(state, ev.Account)

	case BoardsLoaded:
		if isStaleLoad(state, ev.AccountID, ev.Seq) {
			return state, []Effect{LoadDiscarded{AccountID: ev.AccountID, Seq: ev.Seq}}
		}
		state.Boards = orEmpty(ev.Boards)
		state.LoadedSeq = ev.Seq
		state.LastLoadError = ""
		return state, nil

	case BoardsLoadFailed:
		if isStaleLoad(state, ev.AccountID, ev.Seq) {
			return state, []Effect{LoadDiscarded{AccountID: ev.AccountID, Seq: ev.Seq, Failed: true}}
		}
		message := ""
		if ev.Err != nil {
			message = ev.Err.Error()
		}
		state.LoadedSeq = ev.Seq
		state.LastLoadError = message
		return state, []Effect{Notify{Toast: domain.Toast{
			Title:       LoadFailedTitle,
			Description: message,
			Severity:    domain.ToastCritical,
		}}}

	case UserResolved:
		state.User = ev.User
		return state, nil

	case BoardOpened:
		// No existence check: the board view renders a missing board.
		state.ActiveBoardKey = ev.Key
		state.BoardOpen = true
		return state, nil

	case BoardClosed:
		state.ActiveBoardKey = ""
		state.BoardOpen = false
		if ev.Replacement != nil {
			state.Boards = ev.Replacement
		}
		return state, nil

	case BoardsReplaced:
		state.Boards = orEmpty(ev.Boards)
		return state, nil
	}

	return state, nil
}

// selectAccount switches accounts when the candidate's name is known. Boards
// and the open board are cleared in the same transition that issues the load.
func selectAccount(state State, candidate domain.Account) (State, []Effect) {
	if !domain.HasAccountNamed(state.Accounts, candidate.Name) {
		return state, nil
	}

	state.Selected = &candidate
	state.Boards = domain.BoardCollection{}
	state.ActiveBoardKey = ""
	state.BoardOpen = false
	state.LastLoadError = ""
	state.LoadSeq++

	return state, []Effect{LoadBoards{AccountID: candidate.ID, Seq: state.LoadSeq}}
}

func isStaleLoad(state State, accountID domain.AccountID, seq uint64) bool {
	return state.Selected == nil || state.Selected.ID != accountID || state.LoadSeq != seq
}

func orEmpty(boards domain.BoardCollection) domain.BoardCollection {
	if boards == nil {
		return domain.BoardCollection{}
	}

	return boards
}
