package game

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// HighScoreEntry is one leaderboard row
type HighScoreEntry struct {
	Name  string
	Score int
	Level int
}

// HighScoreManager keeps the ordered leaderboard and persists it to a
// line-oriented file, one "name,score,level" record per line. File I/O
// failures degrade to an in-memory leaderboard and never fail the session.
type HighScoreManager struct {
	cfg      Config
	path     string
	scores   []HighScoreEntry
	inMemory bool
}

// seedScores is the leaderboard written on first run when no file exists
func seedScores() []HighScoreEntry {
	return []HighScoreEntry{
		{"ACE", 1000, 3},
		{"ZAP", 800, 2},
		{"CPU", 600, 2},
		{"BOT", 400, 1},
		{"ROM", 200, 1},
		{"BIT", 150, 1},
		{"HAL", 100, 1},
		{"REX", 75, 1},
		{"NEO", 50, 1},
		{"LUA", 25, 1},
	}
}

// DefaultScoresPath returns the leaderboard file location in the user's home
// directory
func DefaultScoresPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".space_invaders_scores"
	}
	return home + string(os.PathSeparator) + ".space_invaders_scores"
}

// NewHighScoreManager loads the leaderboard from path, writing the seed
// entries first if no file exists yet
func NewHighScoreManager(cfg Config, path string) *HighScoreManager {
	m := &HighScoreManager{cfg: cfg, path: path}
	m.load()
	return m
}

// NewInMemoryHighScores creates a leaderboard that is never persisted
func NewInMemoryHighScores(cfg Config) *HighScoreManager {
	return &HighScoreManager{cfg: cfg, scores: seedScores(), inMemory: true}
}

func (m *HighScoreManager) load() {
	m.scores = m.scores[:0]

	file, err := os.Open(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			m.scores = seedScores()
			m.save()
			return
		}
		log.Warn("high score file unreadable, scores will not persist", "path", m.path, "err", err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		entry, ok := parseScoreLine(scanner.Text())
		if !ok {
			continue
		}
		m.scores = append(m.scores, entry)
	}

	if err := scanner.Err(); err != nil {
		log.Warn("error reading high scores", "path", m.path, "err", err)
	}
}

// parseScoreLine parses one "name,score,level" record. Malformed lines are
// skipped individually, never treated as a whole-file failure.
func parseScoreLine(line string) (HighScoreEntry, bool) {
	parts := strings.SplitN(line, ",", 3)
	if len(parts) != 3 {
		return HighScoreEntry{}, false
	}

	score, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return HighScoreEntry{}, false
	}
	level, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return HighScoreEntry{}, false
	}

	return HighScoreEntry{Name: parts[0], Score: score, Level: level}, true
}

// save rewrites the whole file from the current ordered list
func (m *HighScoreManager) save() {
	if m.inMemory {
		return
	}

	file, err := os.Create(m.path)
	if err != nil {
		log.Warn("unable to write high score file", "path", m.path, "err", err)
		return
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, entry := range m.scores {
		fmt.Fprintf(w, "%s,%d,%d\n", entry.Name, entry.Score, entry.Level)
	}
	if err := w.Flush(); err != nil {
		log.Warn("unable to write high score file", "path", m.path, "err", err)
	}
}

// IsHighScore reports whether score qualifies for the leaderboard: always
// when the table is below capacity, otherwise only above the current minimum
func (m *HighScoreManager) IsHighScore(score int) bool {
	if len(m.scores) < m.cfg.HighScoreCount {
		return true
	}

	lowest := m.scores[0].Score
	for _, entry := range m.scores {
		if entry.Score < lowest {
			lowest = entry.Score
		}
	}

	return score > lowest
}

// AddScore inserts an entry, re-sorts descending by score, truncates to
// capacity and persists
func (m *HighScoreManager) AddScore(name string, score, level int) {
	m.scores = append(m.scores, HighScoreEntry{Name: name, Score: score, Level: level})

	sort.SliceStable(m.scores, func(i, j int) bool {
		return m.scores[i].Score > m.scores[j].Score
	})

	if len(m.scores) > m.cfg.HighScoreCount {
		m.scores = m.scores[:m.cfg.HighScoreCount]
	}

	m.save()
}

// HighScores returns the ordered leaderboard
func (m *HighScoreManager) HighScores() []HighScoreEntry {
	return m.scores
}

// ResetScores deletes the persisted file and reloads the seed defaults
func (m *HighScoreManager) ResetScores() {
	if m.inMemory {
		m.scores = seedScores()
		return
	}

	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		log.Warn("unable to remove high score file", "path", m.path, "err", err)
	}
	m.load()
}
