package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// hudHeight is the pixel height of the score band above the playfield.
const hudHeight = 56

// Game adapts the simulation to ebiten: it owns the input mapping and the
// renderer, and feeds the sim one fixed tick per frame. All game state lives
// in the Sim; this layer only reads snapshots.
type Game struct {
	sim    *Sim
	width  int // window width in pixels
	height int // window height in pixels

	prevKeys map[ebiten.Key]bool
}

func New() *Game {
	sim := NewSim()
	return &Game{
		sim:      sim,
		width:    int(sim.Map.PixelWidth()),
		height:   int(sim.Map.PixelHeight()) + hudHeight,
		prevKeys: make(map[ebiten.Key]bool),
	}
}

func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}
	g.sim.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// handleInput maps keys onto the sim's input surface. Menu keys are
// edge-triggered via prevKeys so a held Enter doesn't restart repeatedly.
func (g *Game) handleInput() error {
	currentKeys := map[ebiten.Key]bool{}
	for _, k := range []ebiten.Key{ebiten.KeyEnter, ebiten.KeyEscape, ebiten.KeyF2} {
		currentKeys[k] = ebiten.IsKeyPressed(k)
	}
	justPressed := func(k ebiten.Key) bool {
		return currentKeys[k] && !g.prevKeys[k]
	}
	defer func() { g.prevKeys = currentKeys }()

	switch g.sim.State {
	case StateMenu, StateGameOver:
		if justPressed(ebiten.KeyEnter) {
			g.sim.StartGame()
		}
		if justPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		return nil
	}

	switch {
	case ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		g.sim.SetWantDir(DirUp)
	case ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		g.sim.SetWantDir(DirDown)
	case ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		g.sim.SetWantDir(DirLeft)
	case ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		g.sim.SetWantDir(DirRight)
	}

	if justPressed(ebiten.KeyF2) {
		if err := g.sim.CopyDebugReport(); err != nil {
			g.sim.Events.Add(g.sim.Tick, "--", "debug", "clipboard_error", err.Error(), 0)
		}
	}
	return nil
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
