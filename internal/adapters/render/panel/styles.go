package panel

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	account  lipgloss.Style
	hint     lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	board    lipgloss.Style
	empty    lipgloss.Style
	section  lipgloss.Style
	toast    lipgloss.Style
	critical lipgloss.Style
	spinner  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		account:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		hint:     lipgloss.NewStyle().Faint(true),
		item:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		board:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		empty:    lipgloss.NewStyle().Faint(true),
		section:  lipgloss.NewStyle().MarginTop(1),
		toast:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		critical: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		spinner:  lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
	}
}
