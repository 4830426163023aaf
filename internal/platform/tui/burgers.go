package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/alien-invasion/internal/menuboard"
)

const maxPopupWidth = 52

// BoardKeyMap defines the key bindings for the burgers board.
type BoardKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Open  key.Binding
	Close key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Close, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Open}, {k.Close, k.Back, k.Quit}}
}

// DefaultBoardKeyMap returns default key bindings.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "next"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "ingredients"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "x"),
			key.WithHelp("esc/x", "close"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BoardModel shows the restaurant menu and pops up the ingredients of the
// selected item.
type BoardModel struct {
	menu       menuboard.Menu
	cursor     int
	open       bool
	popupTitle string
	popupBody  string
	keys       BoardKeyMap
	help       help.Model
	renderer   *lipgloss.Renderer
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewBoardModel creates a board for menu. A nil renderer uses the default one.
func NewBoardModel(menu menuboard.Menu, width, height int, r *lipgloss.Renderer) BoardModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	h := help.New()
	h.Width = width

	return BoardModel{
		menu:     menu,
		keys:     DefaultBoardKeyMap(),
		help:     h,
		renderer: r,
		width:    width,
		height:   height,
	}
}

// Init initializes the board.
func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the board.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.open {
			if key.Matches(msg, m.keys.Close) {
				m.closePopup()
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.menu.Items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Open):
			m.openPopup()
		}
	}
	return m, nil
}

// openPopup fills the popup with the selected item.
func (m *BoardModel) openPopup() {
	if len(m.menu.Items) == 0 {
		return
	}
	id := m.menu.Items[m.cursor].ID
	body, err := m.menu.Ingredients(id)
	if err != nil {
		body = err.Error()
	}
	m.popupTitle = menuboard.PopupTitle(id)
	m.popupBody = body
	m.open = true
}

// closePopup hides the popup and clears its text.
func (m *BoardModel) closePopup() {
	m.open = false
	m.popupTitle = ""
	m.popupBody = ""
}

// Popup returns the popup text and whether it is visible.
func (m BoardModel) Popup() (title, body string, open bool) {
	return m.popupTitle, m.popupBody, m.open
}

// View renders the board, or the popup centered on screen when open.
func (m BoardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}
	if m.open {
		return m.renderer.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderPopup())
	}

	titleStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	cursorStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))

	name := m.menu.Name
	if name == "" {
		name = "Menu"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(strings.ToUpper(name)), m.width))
	b.WriteString("\n\n")
	for i, it := range m.menu.Items {
		line := "  " + it.ID
		if i == m.cursor {
			line = cursorStyle.Render("> " + it.ID)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m BoardModel) renderPopup() string {
	width := min(maxPopupWidth, max(m.width-8, 20))

	title := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Render(m.popupTitle)
	body := m.renderer.NewStyle().Width(width).Render(m.popupBody)
	hint := m.renderer.NewStyle().Foreground(lipgloss.Color("241")).Render("esc/x: close")

	return m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("208")).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", hint))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m BoardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m BoardModel) IsQuitting() bool {
	return m.quitting
}

// RunBoard runs the burgers board.
// Returns true if user wants to go back to menu, false if quitting.
func RunBoard(menu menuboard.Menu, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewBoardModel(menu, width, height, nil),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(BoardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
