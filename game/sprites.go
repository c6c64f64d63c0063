package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Arcade palette
var (
	colorGreen  = color.RGBA{50, 255, 63, 255}
	colorWhite  = color.RGBA{255, 255, 255, 255}
	colorRed    = color.RGBA{255, 0, 0, 255}
	colorYellow = color.RGBA{255, 255, 0, 255}
)

// Assets holds every procedurally generated sprite. The simulation never
// inspects pixels; sprites are opaque drawable handles sized by the draw
// code to each entity's rectangle.
type Assets struct {
	// Invaders is indexed by tier, then animation frame parity
	Invaders [3][2]*ebiten.Image

	Player    *ebiten.Image
	Mystery   *ebiten.Image
	Explosion *ebiten.Image
}

// Invader bitmaps, two animation frames per tier. An 'X' is a lit pixel.
var invaderPatterns = [3][2][]string{
	// Tier 0: top row, squid
	{
		{
			"...XX...",
			"..XXXX..",
			".XXXXXX.",
			"XX.XX.XX",
			"XXXXXXXX",
			"..X..X..",
			".X.XX.X.",
			"X.X..X.X",
		},
		{
			"...XX...",
			"..XXXX..",
			".XXXXXX.",
			"XX.XX.XX",
			"XXXXXXXX",
			".X.XX.X.",
			"X......X",
			".X....X.",
		},
	},
	// Tier 1: middle rows, crab
	{
		{
			"..X....X..",
			"...X..X...",
			"..XXXXXX..",
			".XX.XX.XX.",
			"XXXXXXXXXX",
			"X.XXXXXX.X",
			"X.X....X.X",
			"...XX.XX..",
		},
		{
			"..X....X..",
			"X..X..X..X",
			"X.XXXXXX.X",
			"XXX.XX.XXX",
			"XXXXXXXXXX",
			".XXXXXXXX.",
			"..X....X..",
			".X......X.",
		},
	},
	// Tier 2: bottom rows, octopus
	{
		{
			"....XXXX....",
			".XXXXXXXXXX.",
			"XXXXXXXXXXXX",
			"XXX..XX..XXX",
			"XXXXXXXXXXXX",
			"...XX..XX...",
			"..XX.XX.XX..",
			"XX........XX",
		},
		{
			"....XXXX....",
			".XXXXXXXXXX.",
			"XXXXXXXXXXXX",
			"XXX..XX..XXX",
			"XXXXXXXXXXXX",
			"..XXX..XXX..",
			".XX..XX..XX.",
			"..XX....XX..",
		},
	},
}

var playerPattern = []string{
	"......X......",
	".....XXX.....",
	".....XXX.....",
	".XXXXXXXXXXX.",
	"XXXXXXXXXXXXX",
	"XXXXXXXXXXXXX",
	"XXXXXXXXXXXXX",
}

var mysteryPattern = []string{
	"....XXXXXXXX....",
	"..XXXXXXXXXXXX..",
	".XXXXXXXXXXXXXX.",
	"XX.XX.XX.XX.XX.X",
	"XXXXXXXXXXXXXXXX",
	"..XXX..XX..XXX..",
	"...X........X...",
}

var explosionPattern = []string{
	"X..X.X..X",
	".X.XXX.X.",
	"..XXXXX..",
	"XXXX.XXXX",
	"..XXXXX..",
	".X.XXX.X.",
	"X..X.X..X",
}

// NewAssets generates every sprite. Must run after the ebiten context is
// available; the headless simulation never calls it.
func NewAssets() *Assets {
	a := &Assets{}

	for tier := 0; tier < 3; tier++ {
		for frame := 0; frame < 2; frame++ {
			a.Invaders[tier][frame] = spriteFromPattern(invaderPatterns[tier][frame], colorWhite)
		}
	}

	a.Player = spriteFromPattern(playerPattern, colorGreen)
	a.Mystery = spriteFromPattern(mysteryPattern, colorRed)
	a.Explosion = spriteFromPattern(explosionPattern, colorYellow)

	return a
}

// spriteFromPattern rasterizes a bitmap of 'X' pixels into a sprite
func spriteFromPattern(pattern []string, clr color.RGBA) *ebiten.Image {
	h := len(pattern)
	w := len(pattern[0])

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y, row := range pattern {
		for x := 0; x < len(row); x++ {
			if row[x] == 'X' {
				img.SetRGBA(x, y, clr)
			}
		}
	}

	return ebiten.NewImageFromImage(img)
}
