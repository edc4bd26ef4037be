package panel

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/neon-boards/internal/application"
	"github.com/bnema/neon-boards/internal/domain"
	"github.com/bnema/neon-boards/internal/ports"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var ErrUnexpectedPanelModel = errors.New("unexpected final panel model type")

const saveFailedTitle = "Unable to save boards"

// Session is the part of the panel controller the terminal host drives.
type Session interface {
	Subscribe() <-chan application.State
	ScreenFor(state application.State, timeRange domain.TimeRange) application.Screen
}

type stateMsg application.State

type toastMsg domain.Toast

type updatesClosedMsg struct{}

type savedMsg struct {
	accountID domain.AccountID
	key       string
	boards    domain.BoardCollection
	err       error
}

type Model struct {
	ctx       context.Context
	session   Session
	updates   <-chan application.State
	toasts    <-chan domain.Toast
	timeRange ports.TimeRangeSource

	state   application.State
	cursor  int
	shown   []domain.Toast
	spinner spinner.Model
	styles  styles
}

func NewModel(ctx context.Context, session Session, toasts <-chan domain.Toast, timeRange ports.TimeRangeSource) Model {
	if timeRange == nil {
		timeRange = FixedTimeRange{}
	}

	return Model{
		ctx:       ctx,
		session:   session,
		updates:   session.Subscribe(),
		toasts:    toasts,
		timeRange: timeRange,
		state:     application.NewState(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(newStyles().spinner),
		),
		styles: newStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForState(m.updates), waitForToast(m.toasts))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state = application.State(msg)
		m.clampCursor()
		return m, waitForState(m.updates)
	case toastMsg:
		m.shown = append(m.shown, domain.Toast(msg))
		return m, waitForToast(m.toasts)
	case updatesClosedMsg:
		return m, tea.Quit
	case savedMsg:
		if msg.err != nil {
			m.shown = append(m.shown, domain.Toast{
				Title:       saveFailedTitle,
				Description: msg.err.Error(),
				Severity:    domain.ToastCritical,
			})
			return m, nil
		}
		m.applySaved(msg)
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		m.shown = nil
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	screen := m.screen()

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.switchAccount(screen.Picker, 1)
		return m, nil
	case "shift+tab":
		m.switchAccount(screen.Picker, -1)
		return m, nil
	}

	switch {
	case screen.List != nil:
		keys := screen.List.Boards.Keys()
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(keys)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(keys) {
				screen.List.OnBoardSelected(keys[m.cursor])
			}
		}
	case screen.Board != nil:
		switch msg.String() {
		case "esc":
			screen.Board.OnClose(nil)
		case "d":
			if screen.Board.Found {
				return m, m.deleteBoard(*screen.Board)
			}
		}
	}

	return m, nil
}

func (m Model) View() string {
	screen := m.screen()

	var body string
	switch {
	case screen.Spinner:
		body = fmt.Sprintf("%s %s", m.spinner.View(), loadingLabel)
	case screen.Board != nil:
		body = renderBoard(*screen.Board, m.styles)
	case screen.List != nil:
		body = renderList(*screen.List, m.cursor, m.styles)
	}

	parts := []string{renderPicker(screen.Picker, m.styles), m.styles.section.Render(body)}
	if len(m.shown) > 0 {
		parts = append(parts, m.styles.section.Render(renderToasts(m.shown, m.styles)))
	}
	parts = append(parts, m.styles.section.Render(m.styles.hint.Render(keyHints(screen))))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// screen reads the time range on every call so the board view always gets
// the current value.
func (m Model) screen() application.Screen {
	return m.session.ScreenFor(m.state, m.timeRange.TimeRange())
}

func (m *Model) switchAccount(picker application.AccountPickerProps, step int) {
	if len(picker.Accounts) == 0 || picker.OnAccountChange == nil {
		return
	}

	current := -1
	for i, account := range picker.Accounts {
		if account.Name == picker.Current.Name {
			current = i
			break
		}
	}

	next := (current + step + len(picker.Accounts)) % len(picker.Accounts)
	if current == -1 && step < 0 {
		next = len(picker.Accounts) - 1
	}
	m.cursor = 0
	picker.OnAccountChange(picker.Accounts[next])
}

func (m *Model) clampCursor() {
	count := len(m.state.Boards)
	if m.cursor >= count {
		m.cursor = count - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// applySaved brings the session in line with a collection that was just
// persisted. The user may have moved on while the save ran: the deleted board
// is closed only while it is still the open one, and nothing is applied once
// another account is selected.
func (m Model) applySaved(msg savedMsg) {
	screen := m.screen()

	switch {
	case screen.Board != nil && screen.Board.AccountID == msg.accountID:
		if screen.Board.Key == msg.key {
			screen.Board.OnClose(msg.boards)
			return
		}
		if screen.Board.OnUpdate != nil {
			screen.Board.OnUpdate(msg.boards)
		}
	case screen.List != nil && screen.List.AccountID == msg.accountID:
		if screen.List.OnUpdate != nil {
			screen.List.OnUpdate(msg.boards)
		}
	}
}

func (m Model) deleteBoard(board application.BoardViewProps) tea.Cmd {
	remaining := board.Boards.Without(board.Key)
	ctx := m.ctx

	return func() tea.Msg {
		saved := savedMsg{accountID: board.AccountID, key: board.Key, boards: remaining}
		if board.Persist != nil {
			saved.err = board.Persist(ctx, remaining)
		}
		return saved
	}
}

func waitForState(updates <-chan application.State) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-updates
		if !ok {
			return updatesClosedMsg{}
		}
		return stateMsg(state)
	}
}

func waitForToast(toasts <-chan domain.Toast) tea.Cmd {
	if toasts == nil {
		return nil
	}

	return func() tea.Msg {
		toast, ok := <-toasts
		if !ok {
			return nil
		}
		return toastMsg(toast)
	}
}

// Run drives the panel until the user quits or ctx ends.
func Run(ctx context.Context, model Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(model, opts...)

	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	if _, ok := finalModel.(Model); !ok {
		return ErrUnexpectedPanelModel
	}

	return nil
}
