package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var fontFace = text.NewGoXFace(basicfont.Face7x13)

const (
	fontSmall  = 1.5
	fontMedium = 2.0
	fontLarge  = 3.0
)

// InitAssets generates the sprite set. Call once before RunGame.
func (g *Game) InitAssets() {
	g.assets = NewAssets()
}

// Draw renders the current state. Part of ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.assets == nil {
		return
	}

	now := g.ticks()

	screen.Fill(color.Black)

	// Playfield border
	area := g.gameArea
	vector.StrokeRect(screen, float32(area.X), float32(area.Y),
		float32(area.Width), float32(area.Height), 1, colorWhite, false)

	switch g.state {
	case StateAttract:
		g.drawAttract(screen, now)
	case StateLevelTransition:
		g.drawLevelTransition(screen, now)
	case StatePlaying, StateGameOver:
		g.drawPlayfield(screen, now)
	case StateHighScoreEntry:
		g.drawHighScoreEntry(screen)
	case StateHallOfFame:
		g.drawHallOfFame(screen)
	}

	g.drawScoreHUD(screen)
}

func (g *Game) drawScoreHUD(screen *ebiten.Image) {
	drawTextAt(screen, "SCORE", 50, 4, fontSmall, colorWhite)
	drawTextAt(screen, fmt.Sprintf("%d", g.score), 50, 24, fontSmall, colorGreen)

	highLabel := "HIGH SCORE"
	labelW := textWidth(highLabel, fontSmall)
	drawTextAt(screen, highLabel, float64(g.cfg.ScreenWidth-50)-labelW, 4, fontSmall, colorWhite)
	drawTextAt(screen, fmt.Sprintf("%d", g.highScore), float64(g.cfg.ScreenWidth-50)-labelW, 24, fontSmall, colorGreen)
}

func (g *Game) drawAttract(screen *ebiten.Image, now int64) {
	g.drawCentered(screen, "SPACE INVADERS", g.cfg.ScreenHeight/3, fontLarge, colorGreen)

	if (now/500)%2 == 0 {
		g.drawCentered(screen, "PRESS ENTER TO START", g.cfg.ScreenHeight/2, fontMedium, colorWhite)
	}
}

func (g *Game) drawLevelTransition(screen *ebiten.Image, now int64) {
	g.drawCentered(screen, fmt.Sprintf("LEVEL %d COMPLETE!", g.level), g.cfg.ScreenHeight/2-20, fontLarge, colorGreen)
	g.drawCentered(screen, fmt.Sprintf("PREPARING LEVEL %d...", g.level+1), g.cfg.ScreenHeight/2+50, fontMedium, colorWhite)

	// Static background actors keep rendering through the transition
	g.drawSprite(screen, g.assets.Player, g.player.Rect())
	for _, barrier := range g.barriers {
		g.drawBarrier(screen, barrier)
	}
	g.drawExplosions(screen)
	_ = now
}

func (g *Game) drawPlayfield(screen *ebiten.Image, now int64) {
	if g.player.Alive {
		g.drawSprite(screen, g.assets.Player, g.player.Rect())
	}

	frame := g.invaders.Frame % 2
	for _, inv := range g.invaders.Invaders {
		if inv.Alive {
			g.drawSprite(screen, g.assets.Invaders[inv.Type][frame], inv.Rect())
		}
	}

	if g.mystery.Active {
		g.drawSprite(screen, g.assets.Mystery, g.mystery.Rect())
	}

	for _, barrier := range g.barriers {
		g.drawBarrier(screen, barrier)
	}

	for _, b := range g.playerBullets {
		if b.Active {
			vector.DrawFilledRect(screen, float32(b.X), float32(b.Y),
				float32(b.Width), float32(b.Height), colorWhite, false)
		}
	}
	for _, b := range g.invaderBullets {
		if b.Active {
			vector.DrawFilledRect(screen, float32(b.X), float32(b.Y),
				float32(b.Width), float32(b.Height), colorGreen, false)
		}
	}

	g.drawExplosions(screen)
	g.drawLives(screen)

	levelStr := fmt.Sprintf("LEVEL: %d", g.level)
	drawTextAt(screen, levelStr, float64(g.cfg.ScreenWidth-50)-textWidth(levelStr, fontSmall),
		float64(g.cfg.ScreenHeight-40), fontSmall, colorWhite)

	if g.state == StateGameOver {
		g.drawCentered(screen, "GAME OVER", g.cfg.ScreenHeight/2, fontLarge, colorRed)

		if (now/500)%2 == 0 && now-g.gameOverTime > g.cfg.GameOverMinDelay {
			g.drawCentered(screen, "PRESS ENTER TO RESTART", g.cfg.ScreenHeight/2+50, fontMedium, colorWhite)
		}
	}
}

func (g *Game) drawHighScoreEntry(screen *ebiten.Image) {
	g.drawCentered(screen, "NEW HIGH SCORE!", g.cfg.ScreenHeight/4, fontLarge, colorGreen)
	g.drawCentered(screen, fmt.Sprintf("YOUR SCORE: %d", g.score), g.cfg.ScreenHeight/4+60, fontMedium, colorWhite)
	g.drawCentered(screen, "ENTER YOUR NAME:", g.cfg.ScreenHeight/2, fontMedium, colorWhite)

	charWidth := 40
	nameY := g.cfg.ScreenHeight/2 + 60
	totalWidth := g.cfg.HighScoreNameLength * charWidth
	nameX := g.cfg.ScreenWidth/2 - totalWidth/2

	for i := 0; i < g.cfg.HighScoreNameLength; i++ {
		charStr := string(g.playerName[i])
		charW := textWidth(charStr, fontLarge)
		charX := float64(nameX+i*charWidth) + (float64(charWidth)-charW)/2
		drawTextAt(screen, charStr, charX, float64(nameY), fontLarge, colorWhite)

		if i == g.currentChar {
			vector.DrawFilledRect(screen, float32(nameX+i*charWidth), float32(nameY+44),
				float32(charWidth), 2, colorGreen, false)
		}
	}

	g.drawCentered(screen, "USE ARROWS TO SELECT LETTERS, ENTER/SPACE TO CONFIRM",
		g.cfg.ScreenHeight-80, fontSmall, colorWhite)
}

func (g *Game) drawHallOfFame(screen *ebiten.Image) {
	g.drawCentered(screen, "* HALL OF FAME *", 50, fontLarge, colorGreen)

	drawTextAt(screen, "CONGRATULATIONS ON YOUR HIGH SCORE!",
		float64(g.scrollPosition), 110, fontMedium, colorYellow)

	headerY := 160.0
	rankX, nameX, scoreX, levelX := 100.0, 200.0, 400.0, 550.0

	drawTextAt(screen, "RANK", rankX, headerY, fontSmall, colorWhite)
	drawTextAt(screen, "NAME", nameX, headerY, fontSmall, colorWhite)
	drawTextAt(screen, "SCORE", scoreX, headerY, fontSmall, colorWhite)
	drawTextAt(screen, "LEVEL", levelX, headerY, fontSmall, colorWhite)

	entryY := headerY + 35
	for i, entry := range g.scores.HighScores() {
		clr := colorWhite
		// Highlight the entry just submitted this session
		if g.score > 0 && entry.Name == string(g.playerName) &&
			entry.Score == g.score && entry.Level == g.level {
			clr = colorGreen
		}

		drawTextAt(screen, fmt.Sprintf("%d", i+1), rankX, entryY, fontSmall, clr)
		drawTextAt(screen, entry.Name, nameX, entryY, fontSmall, clr)
		drawTextAt(screen, fmt.Sprintf("%d", entry.Score), scoreX, entryY, fontSmall, clr)
		drawTextAt(screen, fmt.Sprintf("%d", entry.Level), levelX, entryY, fontSmall, clr)

		entryY += 30
	}

	if (g.ticks()/800)%2 == 0 {
		g.drawCentered(screen, "PRESS ENTER TO PLAY AGAIN", g.cfg.ScreenHeight-100, fontMedium, colorWhite)
	}
	g.drawCentered(screen, "PRESS Q TO RESET HIGH SCORES", g.cfg.ScreenHeight-60, fontSmall, colorWhite)
}

// drawBarrier renders the damage grid directly: destroyed cells are erased,
// damaged cells dim progressively
func (g *Game) drawBarrier(screen *ebiten.Image, b *Barrier) {
	size := float32(g.cfg.BarrierPieceSize)

	for cy := 0; cy < b.CellsY(); cy++ {
		for cx := 0; cx < b.CellsX(); cx++ {
			level := b.DamageLevel(cx, cy)
			if level >= b.MaxLevel() {
				continue
			}

			fade := 1.0 - float64(level)/float64(b.MaxLevel())
			clr := color.RGBA{
				R: uint8(float64(colorGreen.R) * fade),
				G: uint8(float64(colorGreen.G) * fade),
				B: uint8(float64(colorGreen.B) * fade),
				A: 255,
			}

			x := float32(b.X + cx*g.cfg.BarrierPieceSize)
			y := float32(b.Y + cy*g.cfg.BarrierPieceSize)
			vector.DrawFilledRect(screen, x, y, size, size, clr, false)
		}
	}
}

func (g *Game) drawExplosions(screen *ebiten.Image) {
	for _, e := range g.explosions {
		g.drawSprite(screen, g.assets.Explosion, Rectangle{X: e.X, Y: e.Y, Width: 40, Height: 40})
	}
}

func (g *Game) drawLives(screen *ebiten.Image) {
	drawTextAt(screen, "LIVES:", 50, float64(g.cfg.ScreenHeight-40), fontSmall, colorWhite)

	shipW := g.cfg.PlayerWidth / 2
	shipH := g.cfg.PlayerHeight / 2
	for i := 0; i < g.player.Lives; i++ {
		r := Rectangle{
			X:      120 + i*(shipW+10),
			Y:      g.cfg.ScreenHeight - 40,
			Width:  shipW,
			Height: shipH,
		}
		g.drawSprite(screen, g.assets.Player, r)
	}
}

// drawSprite scales a pattern sprite to fill the given rectangle
func (g *Game) drawSprite(screen *ebiten.Image, sprite *ebiten.Image, r Rectangle) {
	bounds := sprite.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(
		float64(r.Width)/float64(bounds.Dx()),
		float64(r.Height)/float64(bounds.Dy()),
	)
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	screen.DrawImage(sprite, op)
}

func (g *Game) drawCentered(screen *ebiten.Image, s string, y int, scale float64, clr color.RGBA) {
	x := (float64(g.cfg.ScreenWidth) - textWidth(s, scale)) / 2
	drawTextAt(screen, s, x, float64(y), scale, clr)
}

func drawTextAt(screen *ebiten.Image, s string, x, y, scale float64, clr color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, fontFace, op)
}

func textWidth(s string, scale float64) float64 {
	w, _ := text.Measure(s, fontFace, 0)
	return w * scale
}
