package storage

import (
	"os"
	"testing"
)

func TestRebind(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SELECT 1", "SELECT 1"},
		{"WHERE game_id = ?", "WHERE game_id = $1"},
		{"VALUES (?, ?, ?, ?)", "VALUES ($1, $2, $3, $4)"},
		{"WHERE a = '?' AND b = ?", "WHERE a = '?' AND b = $1"},
	}

	for _, tt := range tests {
		if got := rebind(tt.in); got != tt.want {
			t.Errorf("rebind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsPostgresDSN(t *testing.T) {
	tests := map[string]bool{
		"postgres://user@localhost/invasion":   true,
		"postgresql://user@localhost/invasion": true,
		"~/.invasion/scores.db":                false,
		"postgres.db":                          false,
		"":                                     false,
	}

	for dsn, want := range tests {
		if got := IsPostgresDSN(dsn); got != want {
			t.Errorf("IsPostgresDSN(%q) = %v, want %v", dsn, got, want)
		}
	}
}

// TestPostgresStore runs against a real server when INVASION_TEST_POSTGRES_DSN is set.
func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("INVASION_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("INVASION_TEST_POSTGRES_DSN not set")
	}

	store, err := Open(dsn)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	const game = "invasion_pgtest"
	if _, err := store.ClearScores(game); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	defer store.ClearScores(game)

	saved, err := store.SaveScore(game, 120, 4)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if saved.ID == 0 || saved.CreatedAt.IsZero() {
		t.Errorf("Unexpected saved entry: %+v", saved)
	}
	store.SaveScore(game, 80, 2)

	high, err := store.HighScore(game)
	if err != nil || high != 120 {
		t.Errorf("Expected high score 120, got %d (%v)", high, err)
	}

	scores, err := store.TopScores(game, 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].RunID != saved.RunID {
		t.Errorf("Unexpected top scores: %+v", scores)
	}

	stats, err := store.Stats(game)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.AvgScore != 100 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}
