package game

import (
	"math/rand"
	"testing"
)

func newTestGroup(t *testing.T, cfg Config, seed int64) *InvaderGroup {
	t.Helper()
	g := NewInvaderGroup(cfg, rand.New(rand.NewSource(seed)))
	g.CreateInvaders()
	return g
}

func TestCreateInvadersLayout(t *testing.T) {
	cfg := DefaultConfig()
	g := newTestGroup(t, cfg, 1)

	if got, want := len(g.Invaders), cfg.InvaderRows*cfg.InvadersPerRow; got != want {
		t.Fatalf("invader count = %d, want %d", got, want)
	}

	for _, inv := range g.Invaders {
		if !inv.Alive {
			t.Fatalf("invader (%d,%d) not alive at creation", inv.Row, inv.Col)
		}

		wantType := 2
		if inv.Row == 0 {
			wantType = 0
		} else if inv.Row < 3 {
			wantType = 1
		}
		if inv.Type != wantType {
			t.Errorf("row %d type = %d, want %d", inv.Row, inv.Type, wantType)
		}
	}

	// Grid spacing is uniform
	first := g.Invaders[0]
	second := g.Invaders[1]
	if got, want := second.X-first.X, cfg.InvaderWidth+cfg.InvaderHSpacing; got != want {
		t.Errorf("column spacing = %d, want %d", got, want)
	}
}

func TestInvaderPoints(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		invaderType int
		want        int
	}{
		{0, cfg.ScoreInvaderTop},
		{1, cfg.ScoreInvaderMiddle},
		{2, cfg.ScoreInvaderBottom},
	}

	for _, tt := range tests {
		inv := &Invader{Type: tt.invaderType}
		if got := inv.Points(cfg); got != tt.want {
			t.Errorf("type %d points = %d, want %d", tt.invaderType, got, tt.want)
		}
	}
}

func TestMoveDelayAcceleration(t *testing.T) {
	cfg := DefaultConfig()
	g := newTestGroup(t, cfg, 1)

	if got := g.MoveDelay(); got != 1000 {
		t.Fatalf("initial move delay = %d, want 1000", got)
	}

	g.InvaderKilled()
	if got := g.MoveDelay(); got != 956 {
		t.Errorf("delay after one kill = %d, want 956", got)
	}

	// Delay shrinks monotonically as kills accumulate
	prev := g.MoveDelay()
	total := cfg.InvaderRows * cfg.InvadersPerRow
	for i := 1; i < total; i++ {
		g.InvaderKilled()
		d := g.MoveDelay()
		if d > prev {
			t.Fatalf("delay grew from %d to %d after kill %d", prev, d, i+1)
		}
		prev = d
	}

	// The exponential factor is capped, bottoming the delay out at 100ms
	if got := g.MoveDelay(); got != 100 {
		t.Errorf("delay with formation cleared = %d, want 100", got)
	}
	if !g.AllDead() {
		t.Error("AllDead() = false after every invader killed")
	}
}

func TestMoveTimerGating(t *testing.T) {
	cfg := DefaultConfig()
	g := newTestGroup(t, cfg, 1)
	area := cfg.GameArea()

	startX := g.Invaders[0].X

	// Before the delay elapses nothing moves
	g.Move(500, area)
	if g.Invaders[0].X != startX {
		t.Fatal("formation moved before the delay elapsed")
	}
	if g.Frame != 0 {
		t.Fatalf("Frame = %d before first step", g.Frame)
	}

	g.Move(1000, area)
	if got, want := g.Invaders[0].X, startX+cfg.InvaderMoveSpeedH; got != want {
		t.Errorf("X after first step = %d, want %d", got, want)
	}
	if g.Frame != 1 {
		t.Errorf("Frame = %d after first step, want 1", g.Frame)
	}
}

func TestMoveEdgeFlipAndDescend(t *testing.T) {
	cfg := DefaultConfig()
	g := newTestGroup(t, cfg, 1)

	// A playfield barely wider than the formation forces an edge hit on the
	// second step
	right := g.Invaders[len(g.Invaders)-1]
	area := Rectangle{
		X:      g.Invaders[0].X,
		Y:      0,
		Width:  right.X + cfg.InvaderWidth - g.Invaders[0].X + cfg.InvaderMoveSpeedH,
		Height: 600,
	}

	startY := g.Invaders[0].Y

	if down := g.Move(1000, area); down {
		t.Fatal("first step reported a descent")
	}

	// Second due step would leave the playfield: flip, no movement
	xBefore := g.Invaders[0].X
	if down := g.Move(2000, area); down {
		t.Fatal("edge flip step reported a descent")
	}
	if g.Invaders[0].X != xBefore {
		t.Error("formation moved on the edge flip step")
	}
	if g.Direction != -1 {
		t.Errorf("Direction = %d after edge hit, want -1", g.Direction)
	}

	// Third due step descends, consuming the whole step
	if down := g.Move(3000, area); !down {
		t.Fatal("step after edge flip did not descend")
	}
	if got, want := g.Invaders[0].Y, startY+cfg.InvaderMoveDown; got != want {
		t.Errorf("Y after descent = %d, want %d", got, want)
	}
	if g.Invaders[0].X != xBefore {
		t.Errorf("X changed during the descent step, want pure vertical move")
	}

	// Fourth due step resumes horizontal movement leftward
	if down := g.Move(4000, area); down {
		t.Fatal("step after the descent reported another descent")
	}
	if got, want := g.Invaders[0].X, xBefore-cfg.InvaderMoveSpeedH; got != want {
		t.Errorf("X after resuming = %d, want %d", got, want)
	}
}

func TestDeadInvadersIgnoredAtEdges(t *testing.T) {
	cfg := DefaultConfig()
	g := newTestGroup(t, cfg, 1)

	// Kill the entire rightmost column; the formation can now travel further
	// right before flipping
	for _, inv := range g.Invaders {
		if inv.Col == cfg.InvadersPerRow-1 {
			inv.Alive = false
		}
	}

	rightAlive := 0
	for _, inv := range g.Invaders {
		if inv.Alive && inv.X > rightAlive {
			rightAlive = inv.X
		}
	}

	area := Rectangle{X: 0, Y: 0, Width: rightAlive + cfg.InvaderWidth + cfg.InvaderMoveSpeedH, Height: 600}

	if g.Move(1000, area); g.Direction != 1 {
		t.Error("alive subset within bounds still flipped direction")
	}
}

func TestAnyInvaderAtBottom(t *testing.T) {
	cfg := DefaultConfig()
	g := newTestGroup(t, cfg, 1)

	bottomRow := g.Invaders[len(g.Invaders)-1]
	threshold := bottomRow.Y + bottomRow.Height

	if g.AnyInvaderAtBottom(threshold + 1) {
		t.Error("reported bottom reached above the lowest invader")
	}
	if !g.AnyInvaderAtBottom(threshold) {
		t.Error("did not report bottom reached at the lowest invader's edge")
	}

	// Dead invaders do not count
	for _, inv := range g.Invaders {
		if inv.Row == cfg.InvaderRows-1 {
			inv.Alive = false
		}
	}
	if g.AnyInvaderAtBottom(threshold) {
		t.Error("dead bottom row still reported as reaching the bottom")
	}
}

func TestRandomShooterFiresFromFront(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InvaderFiringChance = 1.0
	g := newTestGroup(t, cfg, 42)

	shooter := g.RandomShooter()
	if shooter == nil {
		t.Fatal("no shooter with firing chance 1.0")
	}

	// Only the lowest alive invader of its column may fire
	for _, inv := range g.Invaders {
		if inv.Alive && inv.Col == shooter.Col && inv.Y > shooter.Y {
			t.Fatalf("shooter at row %d is behind row %d in column %d",
				shooter.Row, inv.Row, shooter.Col)
		}
	}
}

func TestRandomShooterSkipsDeadColumns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InvaderFiringChance = 1.0
	g := newTestGroup(t, cfg, 7)

	// Leave a single survivor
	survivor := g.Invaders[17]
	for _, inv := range g.Invaders {
		inv.Alive = false
	}
	survivor.Alive = true

	for i := 0; i < 20; i++ {
		if got := g.RandomShooter(); got != survivor {
			t.Fatalf("shooter = (%d,%d), want the lone survivor (%d,%d)",
				got.Row, got.Col, survivor.Row, survivor.Col)
		}
	}
}

func TestRandomShooterRespectsChance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InvaderFiringChance = 0
	g := newTestGroup(t, cfg, 1)

	for i := 0; i < 100; i++ {
		if g.RandomShooter() != nil {
			t.Fatal("shooter produced with firing chance 0")
		}
	}
}
