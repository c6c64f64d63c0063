package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleInput polls discrete commands and held keys for the current state.
// This is the only simulation entry point that touches the input device.
func (g *Game) handleInput(now int64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		switch g.state {
		case StateAttract, StateHallOfFame:
			g.StartNewGame()
		case StateGameOver:
			// Require a minimum display time before a restart is accepted
			if now-g.gameOverTime > g.cfg.GameOverMinDelay {
				g.StartNewGame()
			}
		case StateHighScoreEntry:
			g.submitHighScore(now)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && g.state == StateHighScoreEntry {
		g.submitHighScore(now)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) && g.state == StateHallOfFame {
		g.scores.ResetScores()
	}

	switch g.state {
	case StatePlaying:
		g.handlePlayingInput(now)
	case StateHighScoreEntry:
		g.handleNameEntryInput(now)
	}

	return nil
}

// handlePlayingInput applies continuous-hold movement and fire
func (g *Game) handlePlayingInput(now int64) {
	if !g.player.Alive {
		return
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		g.player.Move(-1, g.gameArea)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		g.player.Move(1, g.gameArea)
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		g.tryPlayerShoot(now)
	}
}

// handleNameEntryInput navigates the name slots and cycles characters.
// Cursor moves are edge-triggered; character cycling also auto-repeats while
// the key is held, gated by the name-entry delay.
func (g *Game) handleNameEntryInput(now int64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.moveNameCursor(-1)
		g.nameEntryCooldown = now
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.moveNameCursor(1)
		g.nameEntryCooldown = now
	}

	repeatDue := now-g.nameEntryCooldown > g.cfg.NameEntryDelay

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		(ebiten.IsKeyPressed(ebiten.KeyArrowUp) && repeatDue) {
		g.cycleNameChar(-1)
		g.nameEntryCooldown = now
	} else if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) ||
		(ebiten.IsKeyPressed(ebiten.KeyArrowDown) && repeatDue) {
		g.cycleNameChar(1)
		g.nameEntryCooldown = now
	}
}
