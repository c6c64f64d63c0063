package game

// cell addresses one damage-grid square in barrier-local cell coordinates
type cell struct {
	X, Y int
}

// Barrier is static destructible cover. Its surface is discretized into
// fixed-size cells, each with an independent damage counter; the damage grid
// is the single source of truth for both collision and visual erosion.
type Barrier struct {
	Entity

	damageMap map[cell]int

	pieceSize    int
	maxLevel     int
	damageRadius int
}

// NewBarrier creates an undamaged barrier at (x, y)
func NewBarrier(cfg Config, x, y int) *Barrier {
	return &Barrier{
		Entity:       Entity{X: x, Y: y, Width: cfg.BarrierWidth, Height: cfg.BarrierHeight},
		damageMap:    make(map[cell]int),
		pieceSize:    cfg.BarrierPieceSize,
		maxLevel:     cfg.BarrierDamageLevels,
		damageRadius: cfg.BarrierDamageRadius,
	}
}

// CheckCollision reports whether r hits solid barrier material. A rect whose
// origin lies outside the barrier's bounding box never collides; otherwise
// any covered cell that has never been hit counts as solid.
func (b *Barrier) CheckCollision(r Rectangle) bool {
	localX := r.X - b.X
	localY := r.Y - b.Y

	if localX < 0 || localX >= b.Width || localY < 0 || localY >= b.Height {
		return false
	}

	maxY := min(localY+r.Height, b.Height)
	maxX := min(localX+r.Width, b.Width)

	for y := localY; y < maxY; y += b.pieceSize {
		for x := localX; x < maxX; x += b.pieceSize {
			key := cell{X: x / b.pieceSize, Y: y / b.pieceSize}
			if _, hit := b.damageMap[key]; !hit {
				return true
			}
		}
	}

	return false
}

// Damage raises the damage level of every cell within the damage radius
// (square neighborhood) around the center of r, clipped to the barrier grid.
// Levels are capped at the maximum; a cell at the cap is destroyed.
func (b *Barrier) Damage(r Rectangle) {
	localX := r.X - b.X
	localY := r.Y - b.Y

	if localX < 0 || localX >= b.Width || localY < 0 || localY >= b.Height {
		return
	}

	centerPieceX := (localX + r.Width/2) / b.pieceSize
	centerPieceY := (localY + r.Height/2) / b.pieceSize

	cellsX := b.Width / b.pieceSize
	cellsY := b.Height / b.pieceSize

	for dy := -b.damageRadius; dy <= b.damageRadius; dy++ {
		for dx := -b.damageRadius; dx <= b.damageRadius; dx++ {
			pieceX := centerPieceX + dx
			pieceY := centerPieceY + dy

			if pieceX < 0 || pieceX >= cellsX || pieceY < 0 || pieceY >= cellsY {
				continue
			}

			key := cell{X: pieceX, Y: pieceY}
			if b.damageMap[key] < b.maxLevel {
				b.damageMap[key]++
			}
		}
	}
}

// DamageLevel returns the damage level of the cell at (cellX, cellY);
// zero for a cell that has never been hit
func (b *Barrier) DamageLevel(cellX, cellY int) int {
	return b.damageMap[cell{X: cellX, Y: cellY}]
}

// CellsX returns the grid width in cells
func (b *Barrier) CellsX() int {
	return b.Width / b.pieceSize
}

// CellsY returns the grid height in cells
func (b *Barrier) CellsY() int {
	return b.Height / b.pieceSize
}

// MaxLevel returns the damage level at which a cell counts as destroyed
func (b *Barrier) MaxLevel() int {
	return b.maxLevel
}
