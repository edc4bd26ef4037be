package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/neon-boards/internal/adapters/notify"
	"github.com/bnema/neon-boards/internal/application"
	"github.com/bnema/neon-boards/internal/domain"
)

var errNoAccounts = errors.New("no accounts available")

// headlessSession is a panel controller driven from a command instead of the
// terminal view. Toasts go to the log.
type headlessSession struct {
	controller *application.Controller
	state      application.State
	cancel     context.CancelFunc
}

// openHeadlessSession starts a controller and waits until the boards of the
// requested account, or of the first account when name is empty, are loaded.
func (a *app) openHeadlessSession(parent context.Context, name string) (*headlessSession, error) {
	// The controller swallows account query errors and stays on the spinner,
	// so ask once up front to give the command something to report.
	accounts, err := a.accountQuery.Accounts(parent)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	if len(accounts) == 0 {
		return nil, errNoAccounts
	}
	if name != "" && !domain.HasAccountNamed(accounts, name) {
		return nil, fmt.Errorf("account %q: %w", name, domain.ErrAccountNotFound)
	}

	ctx, cancel := context.WithTimeout(parent, a.cfg.GetDuration(keyWaitTimeout))
	controller, err := a.newController(ctx, notify.NewLogNotifier(a.log), nil)
	if err != nil {
		cancel()
		return nil, err
	}
	controller.Start(ctx)

	session := &headlessSession{controller: controller, cancel: cancel}
	state, err := controller.WaitFor(ctx, func(s application.State) bool { return s.AccountsLoaded })
	if err != nil {
		session.close()
		return nil, fmt.Errorf("wait for accounts: %w", err)
	}
	if len(state.Accounts) == 0 {
		session.close()
		return nil, errNoAccounts
	}

	target := state.Accounts[0].Name
	if name != "" && name != target {
		for _, account := range state.Accounts {
			if account.Name == name {
				controller.SelectAccount(account)
				target = name
				break
			}
		}
	}

	state, err = controller.WaitFor(ctx, func(s application.State) bool {
		return s.BoardsReady() && s.Selected.Name == target
	})
	if err != nil {
		session.close()
		return nil, fmt.Errorf("wait for boards of %q: %w", target, err)
	}
	if state.LastLoadError != "" {
		session.close()
		return nil, fmt.Errorf("%s: %s", application.LoadFailedTitle, state.LastLoadError)
	}

	session.state = state
	return session, nil
}

func (s *headlessSession) account() domain.Account {
	return *s.state.Selected
}

// waitForBoards blocks until the session shows exactly the given keys.
func (s *headlessSession) waitForBoards(ctx context.Context, boards domain.BoardCollection) error {
	want := boards.Keys()
	state, err := s.controller.WaitFor(ctx, func(state application.State) bool {
		got := state.Boards.Keys()
		if len(got) != len(want) {
			return false
		}
		for i := range got {
			if got[i] != want[i] {
				return false
			}
		}
		return true
	})
	s.state = state

	return err
}

func (s *headlessSession) close() {
	s.cancel()
	<-s.controller.Done()
}
