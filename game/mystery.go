package game

import "math/rand"

// MysteryShip is the intermittent bonus target crossing the top of the
// playfield in one direction. A singleton per game, reused across spawns.
type MysteryShip struct {
	Entity
	Speed     int
	Active    bool
	Direction int

	points []int
	rng    *rand.Rand
}

// NewMysteryShip creates an inactive mystery ship
func NewMysteryShip(cfg Config, rng *rand.Rand) *MysteryShip {
	return &MysteryShip{
		Entity: Entity{
			Y:      cfg.GameAreaMarginY + 20,
			Width:  cfg.MysteryShipWidth,
			Height: cfg.MysteryShipHeight,
		},
		Speed:  cfg.MysteryShipSpeed,
		points: cfg.MysteryShipPoints,
		rng:    rng,
	}
}

// Activate starts a traversal from a random side of the screen
func (m *MysteryShip) Activate(screenWidth int) {
	if m.Active {
		return
	}

	m.Active = true

	if m.rng.Intn(2) == 0 {
		m.Direction = -1
	} else {
		m.Direction = 1
	}

	if m.Direction > 0 {
		m.X = -m.Width
	} else {
		m.X = screenWidth
	}
}

// Update advances the traversal and deactivates the ship once it is fully
// off screen
func (m *MysteryShip) Update(screenWidth int) {
	if !m.Active {
		return
	}

	m.X += m.Direction * m.Speed

	if (m.Direction > 0 && m.X > screenWidth) ||
		(m.Direction < 0 && m.X < -m.Width) {
		m.Active = false
	}
}

// Hit deactivates the ship and returns a random value from the point table
func (m *MysteryShip) Hit() int {
	m.Active = false
	return m.points[m.rng.Intn(len(m.points))]
}
