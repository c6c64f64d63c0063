package game

import (
	"math"
	"math/rand"
	"sort"
)

// Invader is a single formation member. Dead invaders stay in the group's
// slice so row/col lookups remain valid for the rest of the level.
type Invader struct {
	Entity

	// Type is the visual and score tier: 0 top row, 1 middle rows, 2 bottom rows
	Type int

	// Row and Col are fixed grid coordinates assigned at creation
	Row, Col int

	Alive bool
}

// Points returns the score awarded for killing this invader
func (i *Invader) Points(cfg Config) int {
	switch i.Type {
	case 0:
		return cfg.ScoreInvaderTop
	case 1:
		return cfg.ScoreInvaderMiddle
	default:
		return cfg.ScoreInvaderBottom
	}
}

// InvaderGroup owns the full formation and its collective movement state.
// All alive members move in lockstep as a single rigid body.
type InvaderGroup struct {
	cfg      Config
	Invaders []*Invader

	// Direction is +1 for right, -1 for left
	Direction int

	// moveDown is set when an edge was hit; the next due step descends
	moveDown bool

	// Frame counts lockstep steps and drives sprite frame parity
	Frame int

	lastMoveTime   int64
	moveDelay      int64
	invadersKilled int
	totalInvaders  int

	rng *rand.Rand
}

// NewInvaderGroup creates an empty formation; call CreateInvaders to populate it
func NewInvaderGroup(cfg Config, rng *rand.Rand) *InvaderGroup {
	return &InvaderGroup{
		cfg:           cfg,
		Direction:     1,
		moveDelay:     1000,
		totalInvaders: cfg.InvaderRows * cfg.InvadersPerRow,
		rng:           rng,
	}
}

// CreateInvaders populates the fixed grid at its deterministic start
// positions and resets all movement state
func (g *InvaderGroup) CreateInvaders() {
	g.Invaders = g.Invaders[:0]
	g.Direction = 1
	g.moveDown = false
	g.Frame = 0
	g.lastMoveTime = 0
	g.moveDelay = 1000
	g.invadersKilled = 0

	startX := g.cfg.GameAreaMarginX + g.cfg.InvaderHPadding
	startY := g.cfg.GameAreaMarginY + g.cfg.InvaderVPadding

	for row := 0; row < g.cfg.InvaderRows; row++ {
		invaderType := 2
		if row == 0 {
			invaderType = 0
		} else if row < 3 {
			invaderType = 1
		}
		y := startY + row*(g.cfg.InvaderHeight+g.cfg.InvaderVSpacing)

		for col := 0; col < g.cfg.InvadersPerRow; col++ {
			x := startX + col*(g.cfg.InvaderWidth+g.cfg.InvaderHSpacing)
			g.Invaders = append(g.Invaders, &Invader{
				Entity: Entity{X: x, Y: y, Width: g.cfg.InvaderWidth, Height: g.cfg.InvaderHeight},
				Type:   invaderType,
				Row:    row,
				Col:    col,
				Alive:  true,
			})
		}
	}
}

// Move performs one lockstep step if the move timer is due, returning whether
// the formation moved down this step. A step that would carry any alive
// invader outside gameArea flips direction, schedules a descent for the next
// step and performs no movement.
func (g *InvaderGroup) Move(currentTime int64, gameArea Rectangle) bool {
	if currentTime-g.lastMoveTime < g.moveDelay {
		return false
	}

	g.lastMoveTime = currentTime

	// A scheduled descent consumes the whole step
	if g.moveDown {
		g.moveDown = false
		g.Frame++
		for _, inv := range g.Invaders {
			if inv.Alive {
				inv.Y += g.cfg.InvaderMoveDown
			}
		}
		return true
	}

	dx := g.Direction * g.cfg.InvaderMoveSpeedH

	// Edge detection applies to the formation as one rigid body
	for _, inv := range g.Invaders {
		if !inv.Alive {
			continue
		}

		newX := inv.X + dx
		if newX < gameArea.X || newX+g.cfg.InvaderWidth > gameArea.X+gameArea.Width {
			g.Direction *= -1
			g.moveDown = true
			return false
		}
	}

	g.Frame++
	for _, inv := range g.Invaders {
		if inv.Alive {
			inv.X += dx
		}
	}

	return false
}

// InvaderKilled records a kill and recomputes the move delay. The delay
// shrinks on an exponential curve so the swarm accelerates sharply only once
// most invaders are dead.
func (g *InvaderGroup) InvaderKilled() {
	g.invadersKilled++

	remaining := float64(g.totalInvaders - g.invadersKilled)
	killedFraction := 1.0 - remaining/float64(g.totalInvaders)

	speedFactor := math.Exp(killedFraction*2.5) - 1.0
	speedFactor = math.Min(speedFactor, 9.0)

	delay := int64(math.Round(1000 / (1.0 + speedFactor)))
	if delay < 50 {
		delay = 50
	}
	g.moveDelay = delay
}

// MoveDelay returns the current delay between lockstep steps in milliseconds
func (g *InvaderGroup) MoveDelay() int64 {
	return g.moveDelay
}

// AnyInvaderAtBottom reports whether any alive invader's bottom edge has
// reached bottomY
func (g *InvaderGroup) AnyInvaderAtBottom(bottomY int) bool {
	for _, inv := range g.Invaders {
		if inv.Alive && inv.Y+inv.Height >= bottomY {
			return true
		}
	}
	return false
}

// RandomShooter rolls the per-frame firing chance and, on success, returns
// the front-most alive invader of a uniformly chosen surviving column. Only
// the lowest invader in a column may fire.
func (g *InvaderGroup) RandomShooter() *Invader {
	if g.rng.Float64() > g.cfg.InvaderFiringChance {
		return nil
	}

	front := make(map[int]*Invader)
	for _, inv := range g.Invaders {
		if !inv.Alive {
			continue
		}
		if best, ok := front[inv.Col]; !ok || inv.Y > best.Y {
			front[inv.Col] = inv
		}
	}

	if len(front) == 0 {
		return nil
	}

	cols := make([]int, 0, len(front))
	for col := range front {
		cols = append(cols, col)
	}
	sort.Ints(cols)

	return front[cols[g.rng.Intn(len(cols))]]
}

// AllDead reports whether every invader has been killed
func (g *InvaderGroup) AllDead() bool {
	return g.invadersKilled >= g.totalInvaders
}

// KillCount returns the number of invaders killed this level
func (g *InvaderGroup) KillCount() int {
	return g.invadersKilled
}
