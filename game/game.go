package game

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameState identifies the top-level screen being run
type GameState int

const (
	StateAttract GameState = iota
	StatePlaying
	StateLevelTransition
	StateGameOver
	StateHighScoreEntry
	StateHallOfFame
)

// SoundPlayer is the narrow contract the simulation uses to cue audio.
// Implementations must tolerate unknown names; a nil-safe no-op is used when
// audio is unavailable.
type SoundPlayer interface {
	Play(name string)
	Stop(name string)
}

type noopSounds struct{}

func (noopSounds) Play(string) {}
func (noopSounds) Stop(string) {}

// Explosion is a transient marker with a fixed visible lifetime
type Explosion struct {
	X, Y      int
	StartTime int64
}

// Game owns every actor and drives the per-frame update/draw cycle across
// the attract/play/transition/game-over/score-entry/leaderboard screens.
type Game struct {
	cfg    Config
	rng    *rand.Rand
	sounds SoundPlayer
	scores *HighScoreManager
	assets *Assets

	state     GameState
	score     int
	highScore int
	level     int

	gameArea Rectangle

	player         *Player
	invaders       *InvaderGroup
	barriers       []*Barrier
	mystery        *MysteryShip
	playerBullets  []*Bullet
	invaderBullets []*Bullet
	explosions     []Explosion

	// Rotating index into the four invader-movement tones
	movementSoundIndex int

	// Mystery ship spawn scheduling, owned here rather than hidden in
	// function-local state
	lastMysteryTime int64
	mysteryDelay    int64

	gameOverTime   int64
	transitionTime int64

	// High score entry sub-state
	playerName        []byte
	currentChar       int
	nameEntryCooldown int64

	// Hall of fame scroll sub-state
	scrollPosition int
	scrollTime     int64

	start   time.Time
	nowFunc func() time.Time
}

// NewGame creates a game in the attract state. A zero seed derives one from
// the clock; scores may be nil for a purely in-memory session and sounds may
// be nil to disable audio cues.
func NewGame(cfg Config, scores *HighScoreManager, sounds SoundPlayer, seed int64) *Game {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if sounds == nil {
		sounds = noopSounds{}
	}
	if scores == nil {
		scores = NewInMemoryHighScores(cfg)
	}

	g := &Game{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(seed)),
		sounds:     sounds,
		scores:     scores,
		state:      StateAttract,
		level:      1,
		gameArea:   cfg.GameArea(),
		playerName: make([]byte, cfg.HighScoreNameLength),
		start:      time.Now(),
		nowFunc:    time.Now,
	}

	for i := range g.playerName {
		g.playerName[i] = 'A'
	}

	if entries := scores.HighScores(); len(entries) > 0 {
		g.highScore = entries[0].Score
	}

	g.initGameObjects()
	return g
}

// initGameObjects rebuilds every owned actor for a fresh session
func (g *Game) initGameObjects() {
	px, py := g.cfg.PlayerSpawn()
	g.player = NewPlayer(g.cfg, px, py)

	g.invaders = NewInvaderGroup(g.cfg, g.rng)
	g.invaders.CreateInvaders()

	g.barriers = g.barriers[:0]
	barrierSpacing := g.gameArea.Width / (g.cfg.BarrierCount + 1)
	for i := 0; i < g.cfg.BarrierCount; i++ {
		barrierX := g.cfg.GameAreaMarginX + barrierSpacing*(i+1) - g.cfg.BarrierWidth/2
		g.barriers = append(g.barriers, NewBarrier(g.cfg, barrierX, g.cfg.BarrierYPos))
	}

	g.mystery = NewMysteryShip(g.cfg, g.rng)

	g.playerBullets = nil
	g.invaderBullets = nil
	g.explosions = nil

	g.lastMysteryTime = 0
	g.mysteryDelay = g.randomMysteryDelay()
	g.movementSoundIndex = 0
}

func (g *Game) randomMysteryDelay() int64 {
	span := g.cfg.MysteryShipMaxDelay - g.cfg.MysteryShipMinDelay
	if span <= 0 {
		return g.cfg.MysteryShipMinDelay
	}
	return g.cfg.MysteryShipMinDelay + g.rng.Int63n(span)
}

// ticks returns the monotonic millisecond clock, read once per frame
func (g *Game) ticks() int64 {
	return g.nowFunc().Sub(g.start).Milliseconds()
}

// Update advances the simulation by one frame. Part of ebiten.Game.
func (g *Game) Update() error {
	now := g.ticks()

	if err := g.handleInput(now); err != nil {
		return err
	}

	g.step(now)
	return nil
}

// step runs the per-frame state machine logic. Split from Update so the
// simulation can be driven headless with a synthetic clock.
func (g *Game) step(now int64) {
	switch g.state {
	case StateLevelTransition:
		if now-g.transitionTime > g.cfg.TransitionDelay {
			g.completeLevelTransition()
		}

	case StatePlaying:
		g.stepPlaying(now)

	case StateHighScoreEntry:
		// Held-key auto-repeat lives in handleInput; nothing to advance here

	case StateHallOfFame:
		g.updateHallOfFame(now)
	}

	// Explosions decay in every state
	out := g.explosions[:0]
	for _, e := range g.explosions {
		if now-e.StartTime <= g.cfg.ExplosionLifetime {
			out = append(out, e)
		}
	}
	g.explosions = out
}

// stepPlaying runs the full gameplay pipeline for one frame
func (g *Game) stepPlaying(now int64) {
	// Complete a pending timed respawn
	if g.player.Respawning() {
		px, py := g.cfg.PlayerSpawn()
		g.player.UpdateRespawn(now, px, py)
	}

	for _, b := range g.playerBullets {
		b.Update(g.cfg.ScreenHeight)
	}
	g.playerBullets = pruneBullets(g.playerBullets)

	for _, b := range g.invaderBullets {
		b.Update(g.cfg.ScreenHeight)
	}
	g.invaderBullets = pruneBullets(g.invaderBullets)

	prevFrame := g.invaders.Frame
	g.invaders.Move(now, g.gameArea)
	if g.invaders.Frame != prevFrame {
		// One bass note per lockstep step, rotating through four tones
		g.sounds.Play(movementSoundName(g.movementSoundIndex))
		g.movementSoundIndex = (g.movementSoundIndex + 1) % 4
	}

	if g.invaders.AnyInvaderAtBottom(g.player.Y) {
		g.gameOver(now)
		return
	}

	if shooter := g.invaders.RandomShooter(); shooter != nil {
		bulletX := shooter.X + shooter.Width/2 - g.cfg.InvaderBulletWidth/2
		bulletY := shooter.Y + shooter.Height
		g.invaderBullets = append(g.invaderBullets, NewInvaderBullet(g.cfg, bulletX, bulletY))
		g.sounds.Play("invader_shoot")
	}

	if !g.mystery.Active {
		if now-g.lastMysteryTime > g.mysteryDelay {
			g.mystery.Activate(g.cfg.ScreenWidth)
			g.lastMysteryTime = now
			g.mysteryDelay = g.randomMysteryDelay()
			g.sounds.Play("mystery_ship")
		}
	} else {
		g.mystery.Update(g.cfg.ScreenWidth)
		if !g.mystery.Active {
			g.sounds.Stop("mystery_ship")
		}
	}

	g.checkCollisions(now)

	// The HUD high score tracks the session live, not just at game over
	if g.score > g.highScore {
		g.highScore = g.score
	}

	if g.state == StatePlaying && g.invaders.AllDead() {
		g.startLevelTransition(now)
	}
}

// StartNewGame begins a fresh session: score zero, level one, all actors rebuilt
func (g *Game) StartNewGame() {
	g.score = 0
	g.level = 1
	g.initGameObjects()
	g.state = StatePlaying
}

// gameOver routes to score entry when the final score qualifies for the
// leaderboard, plain game over otherwise
func (g *Game) gameOver(now int64) {
	if g.score > g.highScore {
		g.highScore = g.score
	}

	if g.scores.IsHighScore(g.score) {
		g.state = StateHighScoreEntry
		for i := range g.playerName {
			g.playerName[i] = 'A'
		}
		g.currentChar = 0
		g.nameEntryCooldown = 0
	} else {
		g.state = StateGameOver
		g.gameOverTime = now
		g.sounds.Play("game_over")
	}
}

func (g *Game) startLevelTransition(now int64) {
	g.state = StateLevelTransition
	g.transitionTime = now
}

// completeLevelTransition starts the next level with a fresh formation,
// preserving the player's remaining lives and the barriers' damage
func (g *Game) completeLevelTransition() {
	g.level++

	g.playerBullets = nil
	g.invaderBullets = nil

	g.invaders = NewInvaderGroup(g.cfg, g.rng)
	g.invaders.CreateInvaders()

	lives := g.player.Lives
	px, py := g.cfg.PlayerSpawn()
	g.player = NewPlayer(g.cfg, px, py)
	g.player.Lives = lives

	g.state = StatePlaying
}

// tryPlayerShoot fires if the cooldown allows it
func (g *Game) tryPlayerShoot(now int64) {
	if !g.player.Alive {
		return
	}
	if g.player.CanShoot(now, g.cfg.PlayerBulletCooldown) {
		g.playerBullets = append(g.playerBullets, g.player.Shoot(g.cfg, now))
		g.sounds.Play("player_shoot")
	}
}

func (g *Game) addExplosion(x, y int, now int64) {
	g.explosions = append(g.explosions, Explosion{X: x, Y: y, StartTime: now})
}

// moveNameCursor shifts the selected character slot, wrapping at both ends
func (g *Game) moveNameCursor(delta int) {
	n := g.cfg.HighScoreNameLength
	g.currentChar = (g.currentChar + delta + n) % n
}

// cycleNameChar steps the selected slot through the fixed alphabet
func (g *Game) cycleNameChar(delta int) {
	chars := g.cfg.HighScoreChars
	idx := 0
	for i := 0; i < len(chars); i++ {
		if chars[i] == g.playerName[g.currentChar] {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(chars)) % len(chars)
	g.playerName[g.currentChar] = chars[idx]
}

// submitHighScore appends the entered name to the leaderboard and moves to
// the hall of fame
func (g *Game) submitHighScore(now int64) {
	g.scores.AddScore(string(g.playerName), g.score, g.level)
	g.state = StateHallOfFame
	g.scrollPosition = g.cfg.ScreenWidth
	g.scrollTime = now
}

// updateHallOfFame advances the scrolling banner, wrapping once it is fully
// off screen
func (g *Game) updateHallOfFame(now int64) {
	if now-g.scrollTime > 16 {
		g.scrollPosition -= g.cfg.ScrollSpeed

		if g.scrollPosition < -g.cfg.ScreenWidth {
			g.scrollPosition = g.cfg.ScreenWidth
		}

		g.scrollTime = now
	}
}

// State returns the current top-level state
func (g *Game) State() GameState {
	return g.state
}

// Score returns the current session score
func (g *Game) Score() int {
	return g.score
}

// Level returns the current level number
func (g *Game) Level() int {
	return g.level
}

// Layout returns the fixed logical screen size. Part of ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}

func movementSoundName(index int) string {
	return "invader_movement" + string(rune('0'+index))
}

var _ ebiten.Game = (*Game)(nil)
