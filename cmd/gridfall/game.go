package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kamstrup/intmap"
	"golang.org/x/image/font/basicfont"

	"github.com/plus3/gridfall/engine"
)

const (
	ticksPerSecond = 60

	cellSize = 24
	boardX   = 16
	boardY   = 16

	sideX        = boardX + engine.FieldWidth*cellSize + 24
	screenWidth  = sideX + 132
	screenHeight = boardY*2 + engine.FieldVisible*cellSize
)

// game adapts ebiten to both collaborator boundaries: the keyboard is the
// input collaborator, the screen the display collaborator. The engine itself
// never sees a key code or a pixel.
type game struct {
	loop    *engine.Loop
	vm      *engine.ViewModel
	pending []engine.Event

	bindings *intmap.Map[ebiten.Key, engine.Input]
	watched  []ebiten.Key
}

func newGame(session *engine.Session, mapper *engine.Mapper) *game {
	g := &game{
		pending:  make([]engine.Event, 0, 8),
		bindings: intmap.New[ebiten.Key, engine.Input](16),
	}
	g.bind(ebiten.KeyArrowLeft, engine.InputMoveLeft)
	g.bind(ebiten.KeyArrowRight, engine.InputMoveRight)
	g.bind(ebiten.KeyArrowUp, engine.InputRotateCW)
	g.bind(ebiten.KeyX, engine.InputRotateCW)
	g.bind(ebiten.KeyZ, engine.InputRotateCCW)
	g.bind(ebiten.KeyArrowDown, engine.InputSoftDrop)
	g.bind(ebiten.KeySpace, engine.InputHardDrop)
	g.bind(ebiten.KeyC, engine.InputHold)
	g.bind(ebiten.KeyShiftLeft, engine.InputHold)
	g.bind(ebiten.KeyR, engine.InputReset)

	reseed := func() uint64 { return uint64(time.Now().UnixNano()) }
	g.loop = engine.NewLoop(session, mapper, g, g, reseed)
	return g
}

func (g *game) bind(key ebiten.Key, in engine.Input) {
	g.bindings.Put(key, in)
	g.watched = append(g.watched, key)
}

// PollEvents implements engine.EventSource with the edges collected in Update.
func (g *game) PollEvents(dst []engine.Event) []engine.Event {
	return append(dst, g.pending...)
}

// Present implements engine.ViewSink. The model stays valid until the next
// tick, which is exactly one Draw away.
func (g *game) Present(vm *engine.ViewModel) {
	g.vm = vm
}

func (g *game) Update() error {
	g.pending = g.pending[:0]
	for _, key := range g.watched {
		in, ok := g.bindings.Get(key)
		if !ok {
			continue
		}
		if inpututil.IsKeyJustPressed(key) {
			g.pending = append(g.pending, engine.Event{Input: in, Pressed: true})
		}
		if inpututil.IsKeyJustReleased(key) {
			g.pending = append(g.pending, engine.Event{Input: in, Pressed: false})
		}
	}
	g.loop.Tick()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 18, G: 18, B: 24, A: 255})

	vector.StrokeRect(screen,
		boardX-2, boardY-2,
		engine.FieldWidth*cellSize+4, engine.FieldVisible*cellSize+4,
		2, color.RGBA{R: 90, G: 90, B: 100, A: 255}, false)

	vm := g.vm
	if vm == nil {
		return
	}

	for _, c := range vm.Ghost {
		drawCell(screen, boardX+c.Col*cellSize, boardY+c.Row*cellSize, cellSize,
			color.RGBA{R: c.Color.R, G: c.Color.G, B: c.Color.B, A: 70})
	}
	for _, c := range vm.Cells {
		drawCell(screen, boardX+c.Col*cellSize, boardY+c.Row*cellSize, cellSize,
			color.RGBA{R: c.Color.R, G: c.Color.G, B: c.Color.B, A: 255})
	}
	for _, row := range vm.Clearing {
		vector.DrawFilledRect(screen,
			boardX, float32(boardY+row*cellSize),
			engine.FieldWidth*cellSize, cellSize,
			color.RGBA{R: 255, G: 255, B: 255, A: 200}, false)
	}

	face := basicfont.Face7x13
	white := color.White

	y := boardY + 12
	text.Draw(screen, "SCORE", face, sideX, y, white)
	text.Draw(screen, fmt.Sprintf("%d", vm.Score), face, sideX, y+16, white)
	text.Draw(screen, "LEVEL", face, sideX, y+44, white)
	text.Draw(screen, fmt.Sprintf("%d", vm.Level), face, sideX, y+60, white)
	text.Draw(screen, "LINES", face, sideX, y+88, white)
	text.Draw(screen, fmt.Sprintf("%d", vm.Lines), face, sideX, y+104, white)

	text.Draw(screen, "NEXT", face, sideX, y+140, white)
	for i, k := range vm.Next {
		drawPreview(screen, k, sideX, y+152+i*44)
	}

	text.Draw(screen, "HOLD", face, sideX, y+300, white)
	if vm.HasHeld {
		drawPreview(screen, vm.Held, sideX, y+312)
	}

	if vm.GameOver {
		text.Draw(screen, "GAME OVER", face, boardX+80, boardY+engine.FieldVisible*cellSize/2, white)
		text.Draw(screen, "press R to restart", face, boardX+55, boardY+engine.FieldVisible*cellSize/2+18, white)
	}
}

func drawCell(dst *ebiten.Image, x, y, size int, clr color.RGBA) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(size), float32(size), clr, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(size), float32(size), 1,
		color.RGBA{R: 18, G: 18, B: 24, A: clr.A}, false)
}

// drawPreview renders a kind in its spawn pose at quarter scale.
func drawPreview(dst *ebiten.Image, k engine.Kind, x, y int) {
	const mini = 10
	rgb := k.Color()
	for _, c := range k.Cells(engine.RotSpawn) {
		drawCell(dst, x+c.Col*mini, y+c.Row*mini, mini,
			color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255})
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
