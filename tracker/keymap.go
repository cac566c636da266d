package tracker

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

type keymap struct {
	newSession key.Binding
	template   key.Binding
	add        key.Binding
	edit       key.Binding
	finish     key.Binding
	esc        key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	newSession: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new session"),
	),
	template: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "from template"),
	),
	add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add exercise"),
	),
	edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit selected"),
	),
	finish: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "finish"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Style holds the lipgloss styles used by the tracker views.
type Style struct {
	Base   lipgloss.Style
	Title  lipgloss.Style
	Clock  lipgloss.Style
	Hint   lipgloss.Style
	Notice lipgloss.Style
	Error  lipgloss.Style
	Header lipgloss.Style
	Active lipgloss.Style
}

func newStyle(dark bool) Style {
	accent := lipgloss.Color("#2E7D32")
	hint := lipgloss.Color("#6C6C6C")

	if dark {
		accent = lipgloss.Color("#7CD992")
		hint = lipgloss.Color("#9E9E9E")
	}

	return Style{
		Base:   lipgloss.NewStyle().Padding(1, 2),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Clock:  lipgloss.NewStyle().Bold(true).PaddingLeft(2),
		Hint:   lipgloss.NewStyle().Foreground(hint),
		Notice: lipgloss.NewStyle().Foreground(accent),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#E06C75")),
		Header: lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(hint),
		Active: lipgloss.NewStyle().Bold(true).Foreground(accent),
	}
}

var tableColumns = []table.Column{
	{Title: "#", Width: 3},
	{Title: "Exercise", Width: 22},
	{Title: "Muscle", Width: 12},
	{Title: "Sets", Width: 5},
	{Title: "Reps", Width: 5},
	{Title: "Weight", Width: 9},
	{Title: "Volume", Width: 10},
}

func newTable(s Style) table.Model {
	styles := table.DefaultStyles()
	styles.Header = s.Header
	styles.Selected = s.Active

	return table.New(
		table.WithColumns(tableColumns),
		table.WithFocused(true),
		table.WithHeight(8),
		table.WithStyles(styles),
	)
}
