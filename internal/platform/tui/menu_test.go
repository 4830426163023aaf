package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/alien-invasion/internal/games/invasion"
	"github.com/vovakirdan/alien-invasion/internal/menuboard"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

func pressMenu(t *testing.T, m MenuModel, keys ...tea.KeyMsg) MenuModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(MenuModel)
	}
	return m
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

func TestMenuListsGamesAndBurgers(t *testing.T) {
	m := NewMenuModel(testConfig(), nil)

	view := m.View()
	for _, want := range []string{"ALIEN INVASION", "Alien Invasion", "Alien Invasion (Classic)", "Heroic Burgers Menu"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view is missing %q", want)
		}
	}
}

func TestMenuResult(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want MenuResult
	}{
		{"first game", []tea.KeyMsg{keyEnter}, MenuResult{GameID: "invasion"}},
		{"classic", []tea.KeyMsg{keyDown, keyEnter}, MenuResult{GameID: "invasion_classic"}},
		{"burgers", []tea.KeyMsg{keyDown, keyDown, keyEnter}, MenuResult{WantsBurgers: true}},
		{"cursor stops at bottom", []tea.KeyMsg{keyDown, keyDown, keyDown, keyDown, keyEnter}, MenuResult{WantsBurgers: true}},
		{"cursor stops at top", []tea.KeyMsg{keyUp, keyUp, keyEnter}, MenuResult{GameID: "invasion"}},
		{"scoreboard", []tea.KeyMsg{keyTab}, MenuResult{WantsScoreboard: true}},
		{"quit", []tea.KeyMsg{runeKey("q")}, MenuResult{Quit: true}},
		{"back quits", []tea.KeyMsg{keyEsc}, MenuResult{Quit: true}},
		{"nothing selected", nil, MenuResult{Quit: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pressMenu(t, NewMenuModel(testConfig(), nil), tt.keys...)
			got := m.Result()
			got.Config = tt.want.Config
			if got != tt.want {
				t.Errorf("Result() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMenuTracksWindowSize(t *testing.T) {
	m := NewMenuModel(testConfig(), nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	cfg := next.(MenuModel).Result().Config
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config size = %dx%d, want 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func pressBoard(t *testing.T, m BoardModel, keys ...tea.KeyMsg) BoardModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(BoardModel)
	}
	return m
}

func TestBoardPopup(t *testing.T) {
	menu := menuboard.Default()
	m := NewBoardModel(menu, 80, 24, nil)

	if _, _, open := m.Popup(); open {
		t.Fatal("popup should start closed")
	}

	m = pressBoard(t, m, keyDown, keyEnter)
	title, body, open := m.Popup()
	if !open {
		t.Fatal("enter should open the popup")
	}
	if title != "Coke Ingredients" {
		t.Errorf("title = %q, want %q", title, "Coke Ingredients")
	}
	want, _ := menu.Ingredients("coke")
	if body != want {
		t.Errorf("body = %q, want %q", body, want)
	}
	if view := m.View(); !strings.Contains(view, "Coke Ingredients") {
		t.Errorf("view does not show the popup:\n%s", view)
	}

	// Navigation is ignored while the popup is open.
	m = pressBoard(t, m, keyDown)
	if title, _, _ := m.Popup(); title != "Coke Ingredients" {
		t.Errorf("title changed to %q", title)
	}

	m = pressBoard(t, m, runeKey("x"))
	if title, body, open := m.Popup(); open || title != "" || body != "" {
		t.Errorf("popup not cleared after close: %q %q %v", title, body, open)
	}
	if m.IsGoingBack() {
		t.Error("closing the popup must not leave the board")
	}
}

func TestBoardEscClosesPopupThenGoesBack(t *testing.T) {
	m := NewBoardModel(menuboard.Default(), 80, 24, nil)

	m = pressBoard(t, m, keyEnter, keyEsc)
	if _, _, open := m.Popup(); open {
		t.Fatal("esc should close the popup")
	}
	if m.IsGoingBack() {
		t.Fatal("first esc should only close the popup")
	}

	m = pressBoard(t, m, keyEsc)
	if !m.IsGoingBack() {
		t.Error("esc on a closed popup should go back")
	}
}

func TestBoardQuitWhileOpen(t *testing.T) {
	m := pressBoard(t, NewBoardModel(menuboard.Default(), 80, 24, nil), keyEnter, runeKey("q"))
	if !m.IsQuitting() {
		t.Error("q should quit even with the popup open")
	}
}

func TestBoardFirstItemTitle(t *testing.T) {
	m := pressBoard(t, NewBoardModel(menuboard.Default(), 80, 24, nil), keyEnter)
	if title, _, _ := m.Popup(); title != "Cheeseburger Ingredients" {
		t.Errorf("title = %q", title)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 24, nil)
	if view := m.View(); !strings.Contains(view, "Scores are not available.") {
		t.Errorf("view should explain the missing store:\n%s", view)
	}
}

func TestScoreboardShowsScores(t *testing.T) {
	store := &memoryStore{saved: []storage.ScoreEntry{
		{ID: 1, GameID: "invasion", Score: 4200, Wave: 7, CreatedAt: time.Now()},
		{ID: 2, GameID: "invasion_classic", Score: 900, Wave: 2, CreatedAt: time.Now()},
	}}

	m := NewScoreboardModel(store, 100, 30, nil)
	view := m.View()
	if !strings.Contains(view, "4200") {
		t.Errorf("view is missing the invasion score:\n%s", view)
	}
	if strings.Contains(view, "900") {
		t.Errorf("view shows another game's score:\n%s", view)
	}

	next, _ := m.Update(keyTab)
	m = next.(ScoreboardModel)
	if view := m.View(); !strings.Contains(view, "900") {
		t.Errorf("next game view is missing its score:\n%s", view)
	}
}

func TestScoreboardEmptyAndBack(t *testing.T) {
	m := NewScoreboardModel(&memoryStore{}, 60, 24, nil)
	if view := m.View(); !strings.Contains(view, "No scores recorded yet.") {
		t.Errorf("view:\n%s", view)
	}

	next, cmd := m.Update(keyEsc)
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || cmd == nil {
		t.Error("esc should go back")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
	if got := truncate("a much longer title", 8); len([]rune(got)) != 8 {
		t.Errorf("truncate to 8 runes gave %q", got)
	}
}
