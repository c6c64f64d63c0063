package game

// BulletKind distinguishes player shots from invader shots
type BulletKind int

const (
	PlayerBullet BulletKind = iota
	InvaderBullet
)

// Bullet is a projectile with straight-line vertical motion. Speed is signed
// by travel direction: negative moves up, positive moves down.
type Bullet struct {
	Entity
	Kind   BulletKind
	Speed  int
	Active bool
}

// NewPlayerBullet creates an upward bullet at (x, y)
func NewPlayerBullet(cfg Config, x, y int) *Bullet {
	return &Bullet{
		Entity: Entity{X: x, Y: y, Width: cfg.PlayerBulletWidth, Height: cfg.PlayerBulletHeight},
		Kind:   PlayerBullet,
		Speed:  -cfg.PlayerBulletSpeed,
		Active: true,
	}
}

// NewInvaderBullet creates a downward bullet at (x, y)
func NewInvaderBullet(cfg Config, x, y int) *Bullet {
	return &Bullet{
		Entity: Entity{X: x, Y: y, Width: cfg.InvaderBulletWidth, Height: cfg.InvaderBulletHeight},
		Kind:   InvaderBullet,
		Speed:  cfg.InvaderBulletSpeed,
		Active: true,
	}
}

// Update advances the bullet one frame and deactivates it once it leaves the
// playfield vertically
func (b *Bullet) Update(screenHeight int) {
	if !b.Active {
		return
	}

	b.Y += b.Speed

	if b.Y+b.Height < 0 || b.Y > screenHeight {
		b.Active = false
	}
}

// Deactivate marks the bullet for removal
func (b *Bullet) Deactivate() {
	b.Active = false
}

// pruneBullets removes inactive bullets in a single pass, preserving
// insertion order of the survivors
func pruneBullets(bullets []*Bullet) []*Bullet {
	out := bullets[:0]
	for _, b := range bullets {
		if b.Active {
			out = append(out, b)
		}
	}
	return out
}
