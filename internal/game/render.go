package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Palette. The frightened variants darken the maze for the mood shift.
var (
	colFloorBase      = color.RGBA{R: 6, G: 9, B: 18, A: 255}
	colFloorAlt       = color.RGBA{R: 10, G: 14, B: 26, A: 255}
	colFloorBasePower = color.RGBA{R: 4, G: 7, B: 14, A: 255}
	colFloorAltPower  = color.RGBA{R: 7, G: 10, B: 19, A: 255}
	colWallBase       = color.RGBA{R: 10, G: 18, B: 45, A: 255}
	colWallEdge       = color.RGBA{R: 70, G: 140, B: 235, A: 110}
	colTrail          = color.RGBA{R: 220, G: 190, B: 120, A: 255}
	colItemSmall      = color.RGBA{R: 235, G: 225, B: 205, A: 255}
	colItemBigCore    = color.RGBA{R: 235, G: 250, B: 255, A: 255}
	colItemBigGlow    = color.RGBA{R: 70, G: 140, B: 235, A: 120}
	colPlayer         = color.RGBA{R: 255, G: 220, B: 40, A: 255}
	colFrightened     = color.RGBA{R: 40, G: 60, B: 235, A: 255}
	colHUDBg          = color.RGBA{R: 8, G: 12, B: 24, A: 255}
	colHUDPanel       = color.RGBA{R: 16, G: 20, B: 36, A: 255}
	colHUDBorder      = color.RGBA{R: 90, G: 110, B: 160, A: 255}
	colHUDLabel       = color.RGBA{R: 170, G: 210, B: 255, A: 255}
	colHUDValue       = color.RGBA{R: 255, G: 230, B: 150, A: 255}
	colHUDSubtext     = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// ghostColors maps each personality to its body colour.
var ghostColors = [personalityCount]color.RGBA{
	Blinky: {R: 235, G: 50, B: 50, A: 255},
	Pinky:  {R: 245, G: 150, B: 200, A: 255},
	Inky:   {R: 80, G: 220, B: 235, A: 255},
	Clyde:  {R: 240, G: 160, B: 60, A: 255},
}

var hudFace = text.NewGoXFace(basicfont.Face7x13)

const trailRadius = tileSize * 0.22

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.sim.Snapshot()

	switch snap.State {
	case StateMenu:
		g.drawMaze(screen, false)
		g.drawScreenOverlay(screen)
		g.drawMenu(screen)
		return
	case StateGameOver:
		g.drawMaze(screen, false)
		g.drawScreenOverlay(screen)
		g.drawGameOver(screen, snap)
		return
	}

	g.drawMaze(screen, snap.Frightened)
	g.drawTrail(screen, snap)
	g.drawItems(screen, snap)
	for _, gs := range snap.Ghosts {
		g.drawGhost(screen, gs, snap.Frightened)
	}
	g.drawPlayer(screen, snap.Player)
	g.drawHUD(screen, snap)

	if snap.BannerTime > 0 {
		g.drawScreenOverlay(screen)
		g.drawTextScaled(screen, fmt.Sprintf("WAVE %d", snap.Wave),
			float64(g.width)/2, float64(g.height)/2, 4, color.White, true)
	}
}

// drawMaze renders the checkerboard floor and the wall blocks with edge
// highlights on every face that borders open corridor.
func (g *Game) drawMaze(screen *ebiten.Image, power bool) {
	base, alt := colFloorBase, colFloorAlt
	if power {
		base, alt = colFloorBasePower, colFloorAltPower
	}
	screen.Fill(colHUDBg)
	tm := g.sim.Map
	oy := float32(hudHeight)
	vector.FillRect(screen, 0, oy, float32(tm.PixelWidth()), float32(tm.PixelHeight()), base, false)

	for r := 0; r < tm.Rows; r++ {
		for c := 0; c < tm.Cols; c++ {
			x := float32(c * tileSize)
			y := oy + float32(r*tileSize)
			cell := GridCell{Col: c, Row: r}
			if tm.KindAt(cell) != TileWall {
				if (r+c)%2 != 0 {
					vector.FillRect(screen, x, y, tileSize, tileSize, alt, false)
				}
				continue
			}
			vector.FillRect(screen, x, y, tileSize, tileSize, colWallBase, false)

			// Edge highlight on faces open to corridor.
			const inset = 4
			if tm.inBounds(GridCell{Col: c, Row: r - 1}) && tm.kinds[r-1][c] != TileWall {
				vector.StrokeLine(screen, x+inset, y+inset, x+tileSize-inset, y+inset, 1.5, colWallEdge, false)
			}
			if tm.inBounds(GridCell{Col: c, Row: r + 1}) && tm.kinds[r+1][c] != TileWall {
				vector.StrokeLine(screen, x+inset, y+tileSize-inset, x+tileSize-inset, y+tileSize-inset, 1.5, colWallEdge, false)
			}
			if tm.inBounds(GridCell{Col: c - 1, Row: r}) && tm.kinds[r][c-1] != TileWall {
				vector.StrokeLine(screen, x+inset, y+inset, x+inset, y+tileSize-inset, 1.5, colWallEdge, false)
			}
			if tm.inBounds(GridCell{Col: c + 1, Row: r}) && tm.kinds[r][c+1] != TileWall {
				vector.StrokeLine(screen, x+tileSize-inset, y+inset, x+tileSize-inset, y+tileSize-inset, 1.5, colWallEdge, false)
			}
		}
	}
}

// drawTrail draws the decaying trail as connected fading dots; alpha runs
// down with age so the hazard visibly expires.
func (g *Game) drawTrail(screen *ebiten.Image, snap Snapshot) {
	oy := float32(hudHeight)
	var prev *TrailPoint
	for i := range snap.Trail {
		seg := &snap.Trail[i]
		fade := 1.0 - seg.Age/snap.TrailLifetime
		if fade <= 0 {
			continue
		}
		alpha := uint8(170 * fade)
		clr := color.RGBA{R: colTrail.R, G: colTrail.G, B: colTrail.B, A: alpha}
		if prev != nil && manhattan(prev.Cell, seg.Cell) == 1 {
			vector.StrokeLine(screen, float32(prev.X), oy+float32(prev.Y),
				float32(seg.X), oy+float32(seg.Y), trailRadius*2, clr, false)
		}
		vector.FillCircle(screen, float32(seg.X), oy+float32(seg.Y), trailRadius, clr, false)
		prev = seg
	}
}

// drawItems renders dots and power pellets with a soft sine pulse driven off
// the sim clock; the phase offset per cell keeps them from pulsing in sync.
func (g *Game) drawItems(screen *ebiten.Image, snap Snapshot) {
	oy := float32(hudHeight)
	now := g.sim.Now
	for _, it := range snap.Items {
		x, y := gridToWorld(it.Cell)
		phase := float64(it.Cell.Col*7+it.Cell.Row*13) * 0.37
		if it.Big {
			pulse := 0.5 + 0.5*math.Sin((now+phase)*(2*math.Pi/0.8))
			r := float32(6 * (0.9 + 0.2*pulse))
			vector.FillCircle(screen, float32(x), oy+float32(y), r*1.6, colItemBigGlow, false)
			vector.FillCircle(screen, float32(x), oy+float32(y), r, colItemBigCore, false)
		} else {
			pulse := 0.5 + 0.5*math.Sin((now+phase)*(2*math.Pi/0.7))
			bright := 0.92 + 0.08*pulse
			clr := color.RGBA{
				R: uint8(float64(colItemSmall.R) * bright),
				G: uint8(float64(colItemSmall.G) * bright),
				B: uint8(float64(colItemSmall.B) * bright),
				A: 255,
			}
			vector.FillCircle(screen, float32(x), oy+float32(y), 3.5, clr, false)
		}
	}
}

func dirAngle(d Direction) float64 {
	switch d {
	case DirUp:
		return -math.Pi / 2
	case DirDown:
		return math.Pi / 2
	case DirLeft:
		return math.Pi
	default:
		return 0
	}
}

// drawPlayer renders the player disc with a chomping wedge mouth facing the
// travel direction.
func (g *Game) drawPlayer(screen *ebiten.Image, ps PlayerSnapshot) {
	oy := float32(hudHeight)
	cx, cy := float32(ps.X), oy+float32(ps.Y)
	r := float32(actorBodySize) / 2
	vector.FillCircle(screen, cx, cy, r, colPlayer, false)

	if !ps.MouthOpen {
		return
	}
	facing := ps.Dir
	if facing == DirNone {
		facing = ps.WantDir
	}
	if facing == DirNone {
		facing = DirRight
	}
	// Mouth wedge: a fan of dark lines from the center to the rim.
	ang := dirAngle(facing)
	const halfMouth = 0.55
	const steps = 12
	for i := 0; i <= steps; i++ {
		a := ang - halfMouth + (2*halfMouth/steps)*float64(i)
		ex := cx + (r+1)*float32(math.Cos(a))
		ey := cy + (r+1)*float32(math.Sin(a))
		vector.StrokeLine(screen, cx, cy, ex, ey, 2.5, colFloorBase, false)
	}
}

// drawGhost renders the classic dome-and-skirt body with direction-tracking
// pupils. Dead ghosts are off-map and skipped.
func (g *Game) drawGhost(screen *ebiten.Image, gs GhostSnapshot, frightened bool) {
	if gs.Dead {
		return
	}
	body := ghostColors[gs.Personality]
	if frightened && !gs.Exiting {
		body = colFrightened
	}

	oy := float32(hudHeight)
	cx, cy := float32(gs.X), oy+float32(gs.Y)
	w := float32(actorBodySize)
	h := float32(actorBodySize)

	// Dome, torso, skirt bumps.
	vector.FillCircle(screen, cx, cy-h*0.15, w*0.5, body, false)
	vector.FillRect(screen, cx-w/2, cy-h*0.15, w, h*0.55, body, false)
	bumpY := cy + h*0.42
	vector.FillCircle(screen, cx-w*0.28, bumpY, w*0.18, body, false)
	vector.FillCircle(screen, cx, bumpY, w*0.18, body, false)
	vector.FillCircle(screen, cx+w*0.28, bumpY, w*0.18, body, false)

	// Eyes with pupils nudged toward the travel direction.
	eyeR := w * 0.14
	eyeY := cy - h*0.10
	var pdx, pdy float32
	switch gs.Dir {
	case DirRight:
		pdx = eyeR * 0.35
	case DirLeft:
		pdx = -eyeR * 0.35
	case DirUp:
		pdy = -eyeR * 0.35
	case DirDown:
		pdy = eyeR * 0.35
	}
	for _, ex := range []float32{cx - w*0.16, cx + w*0.16} {
		vector.FillCircle(screen, ex, eyeY, eyeR, color.White, false)
		vector.FillCircle(screen, ex+pdx, eyeY+pdy, eyeR*0.45, color.Black, false)
	}
}

// drawHUD renders the score band above the playfield.
func (g *Game) drawHUD(screen *ebiten.Image, snap Snapshot) {
	w := float32(g.width)
	vector.FillRect(screen, 0, 0, w, hudHeight, colHUDBg, false)
	vector.FillRect(screen, 8, 8, w-16, hudHeight-16, colHUDPanel, false)
	vector.StrokeRect(screen, 8, 8, w-16, hudHeight-16, 2, colHUDBorder, false)

	scoreRight := float32(g.width) * 0.45
	waveRight := float32(g.width) * 0.65
	vector.StrokeLine(screen, scoreRight, 8, scoreRight, hudHeight-8, 2, colHUDBorder, false)
	vector.StrokeLine(screen, waveRight, 8, waveRight, hudHeight-8, 2, colHUDBorder, false)

	g.drawTextScaled(screen, "SCORE", 18, 12, 1, colHUDLabel, false)
	g.drawTextScaled(screen, fmt.Sprintf("%06d", snap.Score), 18, 27, 2, colHUDValue, false)

	waveCenter := float64(scoreRight+waveRight) / 2
	g.drawTextScaled(screen, "WAVE", waveCenter, 12, 1, colHUDLabel, true)
	g.drawTextScaled(screen, fmt.Sprintf("%d", snap.Wave), waveCenter, 27, 2, colHUDValue, true)

	g.drawTextScaled(screen, "LIVES", float64(waveRight)+12, 12, 1, colHUDLabel, false)
	icons := snap.Lives
	if icons > 6 {
		icons = 6
	}
	for i := 0; i < icons; i++ {
		vector.FillCircle(screen, waveRight+20+float32(i)*16, 36, 6, colPlayer, false)
	}
	g.drawTextScaled(screen, fmt.Sprintf("x%d", snap.Lives),
		float64(waveRight)+20+float64(icons)*16+6, 30, 1, colHUDSubtext, false)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0f FPS", ebiten.ActualFPS()), g.width-64, 2)
}

// drawScreenOverlay dims the whole window for menu/banner/game-over text.
func (g *Game) drawScreenOverlay(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(g.width), float32(g.height),
		color.RGBA{A: 190}, false)
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	cx := float64(g.width) / 2
	cy := float64(g.height) / 2
	g.drawTextScaled(screen, "PACSNAKE - NO RETURN", cx, cy-96, 3, color.White, true)
	g.drawTextScaled(screen, "Your path is the danger", cx, cy-40, 1, colHUDSubtext, true)
	g.drawTextScaled(screen, "[ ENTER ]  START", cx, cy+5, 2, color.White, true)
	g.drawTextScaled(screen, "[ ESC ]  EXIT", cx, cy+40, 1, colHUDSubtext, true)
}

func (g *Game) drawGameOver(screen *ebiten.Image, snap Snapshot) {
	cx := float64(g.width) / 2
	cy := float64(g.height) / 2
	g.drawTextScaled(screen, "GAME OVER", cx, cy-80, 3, color.RGBA{R: 235, G: 50, B: 50, A: 255}, true)
	g.drawTextScaled(screen, fmt.Sprintf("Score: %d", snap.Score), cx, cy-30, 2, color.White, true)
	g.drawTextScaled(screen, "[ ENTER ]  RESTART", cx, cy+20, 2, color.White, true)
	g.drawTextScaled(screen, "[ ESC ]  EXIT", cx, cy+55, 1, colHUDSubtext, true)
}

// drawTextScaled draws a string at an integer upscale of the debug face,
// optionally centered on x.
func (g *Game) drawTextScaled(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color, centered bool) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	if centered {
		x -= text.Advance(s, hudFace) * scale / 2
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, hudFace, op)
}
