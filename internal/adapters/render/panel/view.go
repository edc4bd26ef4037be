package panel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/neon-boards/internal/application"
	"github.com/bnema/neon-boards/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	loadingLabel    = "Loading accounts..."
	notFoundMessage = "board not found"
)

func renderPicker(picker application.AccountPickerProps, s styles) string {
	line := s.header.Render("account: ") + s.account.Render(picker.Current.Name)
	if len(picker.Accounts) > 1 {
		line += "  " + s.hint.Render(fmt.Sprintf("(%d accounts, tab to switch)", len(picker.Accounts)))
	}

	return line
}

func renderList(list application.ListViewProps, cursor int, s styles) string {
	keys := list.Boards.Keys()
	lines := []string{s.title.Render(fmt.Sprintf("Boards (%d)", len(keys)))}

	if len(keys) == 0 {
		lines = append(lines, s.empty.Render("No boards for this account."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i, key := range keys {
		if i == cursor {
			lines = append(lines, s.selected.Render("> "+key))
			continue
		}
		lines = append(lines, s.item.Render("  "+key))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderBoard(board application.BoardViewProps, s styles) string {
	lines := []string{
		s.title.Render(board.Key),
		s.header.Render(fmt.Sprintf("user: %s  range: %s", userLabel(board.User), board.TimeRange.Label())),
	}

	if !board.Found {
		lines = append(lines, s.empty.Render(notFoundMessage))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.board.Render(prettyBoard(board.Board)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderToasts(toasts []domain.Toast, s styles) string {
	lines := make([]string, 0, len(toasts))
	for _, toast := range toasts {
		title := s.toast.Render(toast.Title)
		if toast.Severity == domain.ToastCritical {
			title = s.critical.Render("! " + toast.Title)
		}
		if toast.Description != "" {
			title += s.toast.Render(": " + toast.Description)
		}
		lines = append(lines, title)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func keyHints(screen application.Screen) string {
	switch {
	case screen.Board != nil:
		return "esc back  d delete  tab account  q quit"
	case screen.List != nil:
		return "up/down move  enter open  tab account  q quit"
	default:
		return "q quit"
	}
}

func userLabel(user domain.User) string {
	if name := user.DisplayName(); name != "" {
		return name
	}

	return "unknown"
}

func prettyBoard(board domain.Board) string {
	if len(board) == 0 {
		return "null"
	}

	var out bytes.Buffer
	if err := json.Indent(&out, board, "", "  "); err != nil {
		return strings.TrimSpace(string(board))
	}

	return out.String()
}

// RenderBoards draws a board list without any interaction.
func RenderBoards(account domain.Account, boards domain.BoardCollection) string {
	s := newStyles()
	picker := application.AccountPickerProps{Current: account}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderPicker(picker, s),
		s.section.Render(renderList(application.ListViewProps{Boards: boards, AccountID: account.ID}, -1, s)),
	)
}

// RenderBoard draws one board, or the not-found message when found is false.
func RenderBoard(key string, board domain.Board, found bool, user domain.User, timeRange domain.TimeRange) string {
	return renderBoard(application.BoardViewProps{
		Key:       key,
		Board:     board,
		Found:     found,
		User:      user,
		TimeRange: timeRange,
	}, newStyles())
}
