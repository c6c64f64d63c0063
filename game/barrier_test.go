package game

import "testing"

func newTestBarrier(cfg Config) *Barrier {
	return NewBarrier(cfg, 100, 200)
}

func TestBarrierCollisionFreshSurface(t *testing.T) {
	cfg := DefaultConfig()
	b := newTestBarrier(cfg)

	tests := []struct {
		name string
		r    Rectangle
		want bool
	}{
		{"inside undamaged surface", NewRectangle(120, 220, 3, 15), true},
		{"at top-left corner", NewRectangle(100, 200, 3, 15), true},
		{"origin left of barrier", NewRectangle(90, 220, 3, 15), false},
		{"origin above barrier", NewRectangle(120, 150, 3, 15), false},
		{"origin past right edge", NewRectangle(180, 220, 3, 15), false},
		{"origin past bottom edge", NewRectangle(120, 260, 3, 15), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.CheckCollision(tt.r); got != tt.want {
				t.Errorf("CheckCollision(%+v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestBarrierDamageRadius(t *testing.T) {
	cfg := DefaultConfig()
	b := newTestBarrier(cfg)

	// A hit in the middle of the surface marks the whole square neighborhood
	// around the center cell
	hit := NewRectangle(135, 225, 3, 15)
	b.Damage(hit)

	centerX := (135 - 100 + 1) / cfg.BarrierPieceSize
	centerY := (225 - 200 + 7) / cfg.BarrierPieceSize

	for dy := -cfg.BarrierDamageRadius; dy <= cfg.BarrierDamageRadius; dy++ {
		for dx := -cfg.BarrierDamageRadius; dx <= cfg.BarrierDamageRadius; dx++ {
			if got := b.DamageLevel(centerX+dx, centerY+dy); got != 1 {
				t.Errorf("cell (%d,%d) level = %d, want 1", centerX+dx, centerY+dy, got)
			}
		}
	}

	// Cells just outside the radius are untouched
	outside := centerX + cfg.BarrierDamageRadius + 1
	if got := b.DamageLevel(outside, centerY); got != 0 {
		t.Errorf("cell outside radius level = %d, want 0", got)
	}
}

func TestBarrierDamageCapped(t *testing.T) {
	cfg := DefaultConfig()
	b := newTestBarrier(cfg)

	hit := NewRectangle(135, 225, 3, 15)
	for i := 0; i < cfg.BarrierDamageLevels+5; i++ {
		b.Damage(hit)
	}

	centerX := (135 - 100 + 1) / cfg.BarrierPieceSize
	centerY := (225 - 200 + 7) / cfg.BarrierPieceSize
	if got := b.DamageLevel(centerX, centerY); got != b.MaxLevel() {
		t.Errorf("level after repeated hits = %d, want cap %d", got, b.MaxLevel())
	}
}

func TestBarrierDamageClippedAtEdges(t *testing.T) {
	cfg := DefaultConfig()
	b := newTestBarrier(cfg)

	// A hit at the corner must not panic or wrap around the grid
	b.Damage(NewRectangle(100, 200, 3, 15))

	if got := b.DamageLevel(b.CellsX()-1, b.CellsY()-1); got != 0 {
		t.Errorf("far corner level = %d after near-corner hit, want 0", got)
	}
}

func TestBarrierHitCellsStopBlocking(t *testing.T) {
	cfg := DefaultConfig()
	b := newTestBarrier(cfg)

	shot := NewRectangle(135, 225, 3, 15)

	if !b.CheckCollision(shot) {
		t.Fatal("fresh surface did not block the shot")
	}
	b.Damage(shot)

	// Every cell the shot covers has now been hit at least once, so the same
	// trajectory passes through on subsequent frames
	if b.CheckCollision(shot) {
		t.Error("damaged cells still block the same trajectory")
	}

	// A far-away column is unaffected
	other := NewRectangle(105, 205, 3, 15)
	if !b.CheckCollision(other) {
		t.Error("undamaged region no longer blocks")
	}
}

func TestBarrierDamageOutsideIgnored(t *testing.T) {
	cfg := DefaultConfig()
	b := newTestBarrier(cfg)

	b.Damage(NewRectangle(0, 0, 3, 15))

	for cy := 0; cy < b.CellsY(); cy++ {
		for cx := 0; cx < b.CellsX(); cx++ {
			if b.DamageLevel(cx, cy) != 0 {
				t.Fatalf("cell (%d,%d) damaged by an out-of-bounds hit", cx, cy)
			}
		}
	}
}
