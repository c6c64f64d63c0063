package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func tempScoresPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "scores")
}

func TestHighScoresSeededOnFirstRun(t *testing.T) {
	cfg := DefaultConfig()
	path := tempScoresPath(t)

	m := NewHighScoreManager(cfg, path)

	entries := m.HighScores()
	if len(entries) != cfg.HighScoreCount {
		t.Fatalf("seeded %d entries, want %d", len(entries), cfg.HighScoreCount)
	}
	if entries[0].Score != 1000 {
		t.Errorf("top seed score = %d, want 1000", entries[0].Score)
	}

	// The seed must have been persisted
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("score file not written: %v", err)
	}

	// A second manager reads the same table back
	m2 := NewHighScoreManager(cfg, path)
	if len(m2.HighScores()) != cfg.HighScoreCount {
		t.Errorf("reloaded %d entries, want %d", len(m2.HighScores()), cfg.HighScoreCount)
	}
}

func TestParseScoreLine(t *testing.T) {
	tests := []struct {
		line string
		want HighScoreEntry
		ok   bool
	}{
		{"ACE,1000,3", HighScoreEntry{"ACE", 1000, 3}, true},
		{"A B,50,1", HighScoreEntry{"A B", 50, 1}, true},
		{"ACE, 1000 , 3", HighScoreEntry{"ACE", 1000, 3}, true},
		{"ACE,1000", HighScoreEntry{}, false},
		{"ACE,notanumber,3", HighScoreEntry{}, false},
		{"ACE,1000,x", HighScoreEntry{}, false},
		{"", HighScoreEntry{}, false},
	}

	for _, tt := range tests {
		got, ok := parseScoreLine(tt.line)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseScoreLine(%q) = %+v, %v; want %+v, %v",
				tt.line, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	cfg := DefaultConfig()
	path := tempScoresPath(t)

	content := "ACE,1000,3\ngarbage line\nZAP,800,2\n,,,\nBOT,400,1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewHighScoreManager(cfg, path)

	entries := m.HighScores()
	if len(entries) != 3 {
		t.Fatalf("loaded %d entries, want 3", len(entries))
	}
	if entries[0].Name != "ACE" || entries[1].Name != "ZAP" || entries[2].Name != "BOT" {
		t.Errorf("loaded entries = %+v", entries)
	}
}

func TestIsHighScore(t *testing.T) {
	cfg := DefaultConfig()
	m := NewInMemoryHighScores(cfg)

	// Seed table is at capacity with minimum 25
	if m.IsHighScore(25) {
		t.Error("score equal to the minimum qualified")
	}
	if !m.IsHighScore(26) {
		t.Error("score above the minimum did not qualify")
	}

	// Below capacity every score qualifies, even zero
	m.scores = m.scores[:3]
	if !m.IsHighScore(0) {
		t.Error("zero did not qualify with the table below capacity")
	}
}

func TestAddScoreOrderingAndTruncation(t *testing.T) {
	cfg := DefaultConfig()
	path := tempScoresPath(t)
	m := NewHighScoreManager(cfg, path)

	m.AddScore("NEW", 900, 2)

	entries := m.HighScores()
	if len(entries) != cfg.HighScoreCount {
		t.Fatalf("table grew to %d entries, want capacity %d", len(entries), cfg.HighScoreCount)
	}
	if entries[1].Name != "NEW" {
		t.Errorf("entry at rank 2 = %q, want NEW", entries[1].Name)
	}

	// The previous minimum fell off the end
	for _, e := range entries {
		if e.Name == "LUA" {
			t.Error("lowest seed entry survived past capacity")
		}
	}

	// Ties keep insertion order behind the existing equal score
	m.AddScore("TIE", 900, 1)
	entries = m.HighScores()
	if entries[1].Name != "NEW" || entries[2].Name != "TIE" {
		t.Errorf("tie ordering = %q, %q; want NEW then TIE", entries[1].Name, entries[2].Name)
	}

	// Persisted file reflects the new table
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "NEW,900,2") {
		t.Error("added score not persisted")
	}
}

func TestAddScoreBelowCapacity(t *testing.T) {
	cfg := DefaultConfig()
	path := tempScoresPath(t)

	if err := os.WriteFile(path, []byte("Z,1000,1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := NewHighScoreManager(cfg, path)

	m.AddScore("AAA", 999, 3)

	entries := m.HighScores()
	if len(entries) != 2 {
		t.Fatalf("table has %d entries, want 2", len(entries))
	}
	if entries[0] != (HighScoreEntry{"Z", 1000, 1}) ||
		entries[1] != (HighScoreEntry{"AAA", 999, 3}) {
		t.Errorf("entries = %+v", entries)
	}
}

func TestResetScores(t *testing.T) {
	cfg := DefaultConfig()
	path := tempScoresPath(t)
	m := NewHighScoreManager(cfg, path)

	m.AddScore("NEW", 5000, 4)
	m.ResetScores()

	entries := m.HighScores()
	if len(entries) != cfg.HighScoreCount {
		t.Fatalf("reset table has %d entries, want %d", len(entries), cfg.HighScoreCount)
	}
	if entries[0].Name == "NEW" {
		t.Error("added score survived the reset")
	}
}

func TestInMemoryNeverWrites(t *testing.T) {
	cfg := DefaultConfig()
	m := NewInMemoryHighScores(cfg)

	m.AddScore("MEM", 9999, 5)
	m.ResetScores()

	if len(m.HighScores()) != cfg.HighScoreCount {
		t.Errorf("in-memory reset table has %d entries", len(m.HighScores()))
	}
}
