package game

// Player is the defender. A hit marks it not-alive; unless the game is over
// it then waits out a timed respawn window before snapping back to its spawn
// position, so input polling and rendering never stall.
type Player struct {
	Entity
	Speed int
	Lives int
	Alive bool

	lastShotTime int64

	// respawnAt is the tick at which the respawn window ends; zero when the
	// player is not waiting to respawn
	respawnAt int64
}

// NewPlayer creates the player at (x, y) with a full life counter
func NewPlayer(cfg Config, x, y int) *Player {
	return &Player{
		Entity: Entity{X: x, Y: y, Width: cfg.PlayerWidth, Height: cfg.PlayerHeight},
		Speed:  cfg.PlayerSpeed,
		Lives:  cfg.PlayerLives,
		Alive:  true,
	}
}

// Move shifts the player horizontally by direction * speed, clamped to the
// playfield
func (p *Player) Move(direction int, gameArea Rectangle) {
	if !p.Alive {
		return
	}

	newX := p.X + direction*p.Speed

	if newX < gameArea.X {
		newX = gameArea.X
	} else if newX+p.Width > gameArea.X+gameArea.Width {
		newX = gameArea.X + gameArea.Width - p.Width
	}

	p.X = newX
}

// CanShoot reports whether the fire cooldown has elapsed
func (p *Player) CanShoot(currentTime int64, cooldown int64) bool {
	return currentTime-p.lastShotTime > cooldown
}

// Shoot records the shot time and spawns a bullet centered above the player
func (p *Player) Shoot(cfg Config, currentTime int64) *Bullet {
	p.lastShotTime = currentTime
	bulletX := p.X + p.Width/2 - cfg.PlayerBulletWidth/2
	bulletY := p.Y - cfg.PlayerBulletHeight
	return NewPlayerBullet(cfg, bulletX, bulletY)
}

// Hit marks the player dead and decrements the life counter
func (p *Player) Hit() {
	p.Alive = false
	p.Lives--
}

// StartRespawn opens the timed respawn window
func (p *Player) StartRespawn(currentTime, delay int64) {
	p.respawnAt = currentTime + delay
}

// Respawning reports whether the player is waiting out the respawn window
func (p *Player) Respawning() bool {
	return p.respawnAt != 0
}

// UpdateRespawn completes the respawn once the window has elapsed, resetting
// the player to (x, y)
func (p *Player) UpdateRespawn(currentTime int64, x, y int) {
	if p.respawnAt == 0 || currentTime < p.respawnAt {
		return
	}
	p.respawnAt = 0
	p.ResetPosition(x, y)
}

// ResetPosition moves the player to (x, y) and marks it alive
func (p *Player) ResetPosition(x, y int) {
	p.X = x
	p.Y = y
	p.Alive = true
}
