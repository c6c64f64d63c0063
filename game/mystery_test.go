package game

import (
	"math/rand"
	"testing"
)

func TestMysteryShipTraversal(t *testing.T) {
	cfg := DefaultConfig()
	m := NewMysteryShip(cfg, rand.New(rand.NewSource(3)))

	m.Activate(cfg.ScreenWidth)
	if !m.Active {
		t.Fatal("ship not active after Activate")
	}

	// Entry position matches the travel direction
	if m.Direction > 0 && m.X != -m.Width {
		t.Errorf("rightward ship entered at X=%d, want %d", m.X, -m.Width)
	}
	if m.Direction < 0 && m.X != cfg.ScreenWidth {
		t.Errorf("leftward ship entered at X=%d, want %d", m.X, cfg.ScreenWidth)
	}

	// Activating an active ship is a no-op
	x := m.X
	m.Activate(cfg.ScreenWidth)
	if m.X != x {
		t.Error("Activate on an active ship reset its position")
	}

	// Run the full traversal; the ship must eventually leave the screen
	steps := 0
	for m.Active {
		m.Update(cfg.ScreenWidth)
		steps++
		if steps > 10000 {
			t.Fatal("ship never deactivated")
		}
	}

	// The ship travels fully across before deactivating
	if min := (cfg.ScreenWidth + m.Width) / cfg.MysteryShipSpeed; steps < min {
		t.Errorf("traversal took %d steps, want at least %d", steps, min)
	}
}

func TestMysteryShipHit(t *testing.T) {
	cfg := DefaultConfig()
	m := NewMysteryShip(cfg, rand.New(rand.NewSource(9)))
	m.Activate(cfg.ScreenWidth)

	points := m.Hit()
	if m.Active {
		t.Error("ship still active after being hit")
	}

	valid := false
	for _, p := range cfg.MysteryShipPoints {
		if points == p {
			valid = true
		}
	}
	if !valid {
		t.Errorf("Hit() = %d, not in the point table %v", points, cfg.MysteryShipPoints)
	}
}

func TestMysteryShipBothDirections(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(1))

	seen := map[int]bool{}
	for i := 0; i < 50; i++ {
		m := NewMysteryShip(cfg, rng)
		m.Activate(cfg.ScreenWidth)
		seen[m.Direction] = true
	}

	if !seen[1] || !seen[-1] {
		t.Errorf("directions seen over 50 spawns: %v, want both", seen)
	}
}

func TestInactiveMysteryShipDoesNotMove(t *testing.T) {
	cfg := DefaultConfig()
	m := NewMysteryShip(cfg, rand.New(rand.NewSource(1)))

	x := m.X
	m.Update(cfg.ScreenWidth)
	if m.X != x {
		t.Error("inactive ship moved")
	}
}
