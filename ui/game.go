package ui

import (
	"fmt"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/they4kman/minefield/game"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	title     = "Minesweeper"
	frameRate = 60
)

var mouseButtons = map[pixelgl.Button]game.MouseButton{
	pixelgl.MouseButtonLeft:   game.MouseButtonLeft,
	pixelgl.MouseButtonRight:  game.MouseButtonRight,
	pixelgl.MouseButtonMiddle: game.MouseButtonMiddle,
}

var keys = map[pixelgl.Button]game.Key{
	pixelgl.KeyR:     game.KeyR,
	pixelgl.KeyEnter: game.KeyEnter,
}

// Run opens the game window and plays until it is closed. It must be called
// from within pixelgl.Run.
func Run(controller *game.Controller) {
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, game.BoardWidth, game.BoardWidth+game.PanelHeight),
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		panic(err)
	}

	renderer := newRenderer(text.NewAtlas(basicfont.Face7x13, text.ASCII))
	input := &inputHandler{controller: controller}

	var (
		frames = 0
		second = time.Tick(time.Second)
		tick   = time.Tick(time.Second / frameRate)
	)

	for !win.Closed() {
		input.handle(win)

		win.Clear(colornames.White)
		renderer.draw(win, controller)
		win.Update()

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		<-tick
	}
}

// inputHandler forwards pixelgl input to the controller as it arrives
type inputHandler struct {
	controller *game.Controller
	lastPos    pixel.Vec
}

func (input *inputHandler) handle(win *pixelgl.Window) {
	pos := win.MousePosition()
	if win.MouseInsideWindow() && pos != input.lastPos {
		input.controller.PointerMove(pos)
		input.lastPos = pos
	}

	for button, mouseButton := range mouseButtons {
		if win.JustPressed(button) {
			input.controller.PointerDown(mouseButton, pos)
		}
	}

	for button, key := range keys {
		if win.JustPressed(button) {
			input.controller.KeyDown(key)
		}
	}
}

type renderer struct {
	atlas *text.Atlas
	imd   *imdraw.IMDraw
}

func newRenderer(atlas *text.Atlas) *renderer {
	return &renderer{
		atlas: atlas,
		imd:   imdraw.New(nil),
	}
}
