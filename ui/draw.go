package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/text"
	"github.com/they4kman/minefield/game"
	"golang.org/x/image/colornames"
)

const (
	bevelWidth  = 2
	numberScale = 2
	statusScale = 3
	labelScale  = 2
)

// Colours of the neighbour counts, indexed by count
var numberColors = [9]color.RGBA{
	1: colornames.Blue,
	2: colornames.Green,
	3: colornames.Red,
	4: colornames.Purple,
	5: colornames.Orange,
	6: colornames.Darkcyan,
	7: colornames.Magenta,
	8: colornames.Black,
}

var (
	hiddenColor   = colornames.Silver
	revealedColor = colornames.Gainsboro
	shadowColor   = colornames.Gray
	lostMineColor = colornames.Red
	wonMineColor  = colornames.Lightgreen

	buttonColor        = colornames.Gainsboro
	buttonHoveredColor = colornames.Silver
)

func (r *renderer) draw(target pixel.Target, controller *game.Controller) {
	board := controller.Board()
	state := board.State()

	r.imd.Clear()
	for _, cell := range board.Cells() {
		r.drawCell(cell, state)
	}
	r.imd.Draw(target)

	for _, cell := range board.Cells() {
		if count := cell.State().NumMines(); count > 0 {
			center := game.CellBounds(cell.X(), cell.Y()).Center()
			r.drawLabel(target, center, strconv.Itoa(count), numberColors[count], numberScale)
		}
	}

	r.imd.Clear()
	if state != game.Ongoing {
		r.imd.Color = pixel.ToRGBA(colornames.Black).Mul(pixel.Alpha(0.5))
		r.imd.Push(game.BoardBounds.Min, game.BoardBounds.Max)
		r.imd.Rectangle(0)
	}
	r.drawRestartButton(controller.RestartHovered())
	r.imd.Draw(target)

	switch state {
	case game.Lost:
		r.drawLabel(target, game.BoardBounds.Center(), "GAME OVER!", colornames.Red, statusScale)
	case game.Won:
		r.drawLabel(target, game.BoardBounds.Center(), "YOU WIN!", colornames.Lime, statusScale)
	}

	r.drawLabel(target, game.RestartButtonBounds.Center(), "Restart", colornames.Black, labelScale)
	r.drawLabel(
		target,
		pixel.V(game.RestartButtonBounds.Min.X/2, game.PanelHeight/2),
		fmt.Sprintf("%03d", board.MinesRemaining()),
		colornames.Black,
		labelScale,
	)
}

func (r *renderer) drawCell(cell *game.Cell, state game.BoardState) {
	bounds := game.CellBounds(cell.X(), cell.Y())
	topLeft := pixel.V(bounds.Min.X, bounds.Max.Y)
	bottomRight := pixel.V(bounds.Max.X, bounds.Min.Y)

	if cell.IsRevealed() {
		switch {
		case !cell.IsMine():
			r.fill(bounds, revealedColor)
		case state == game.Won:
			r.fill(bounds, wonMineColor)
		default:
			r.fill(bounds, lostMineColor)
		}

		if cell.IsMine() {
			r.imd.Color = colornames.Black
			r.imd.Push(bounds.Center())
			r.imd.Circle(game.CellWidth/3, 0)
		}

		r.line(topLeft, bounds.Max, shadowColor)
		r.line(topLeft, bounds.Min, shadowColor)
		return
	}

	r.fill(bounds, hiddenColor)
	r.line(topLeft, bounds.Max, colornames.White)
	r.line(topLeft, bounds.Min, colornames.White)
	r.line(bounds.Max, bottomRight, shadowColor)
	r.line(bounds.Min, bottomRight, shadowColor)

	if cell.IsFlagged() {
		quarter := game.CellWidth / 4.0
		poleTop := pixel.V(bounds.Min.X+quarter, bounds.Max.Y-quarter)
		poleBottom := pixel.V(bounds.Min.X+quarter, bounds.Min.Y+quarter)

		r.imd.Color = colornames.Red
		r.imd.Push(poleTop, pixel.V(bounds.Max.X-quarter, bounds.Center().Y), poleBottom)
		r.imd.Polygon(0)

		r.line(poleTop, poleBottom, colornames.Black)
	}
}

func (r *renderer) drawRestartButton(hovered bool) {
	bounds := game.RestartButtonBounds
	if hovered {
		r.fill(bounds, buttonHoveredColor)
	} else {
		r.fill(bounds, buttonColor)
	}

	r.imd.Color = colornames.Black
	r.imd.Push(bounds.Min, bounds.Max)
	r.imd.Rectangle(bevelWidth)
}

func (r *renderer) fill(bounds pixel.Rect, c color.Color) {
	r.imd.Color = c
	r.imd.Push(bounds.Min, bounds.Max)
	r.imd.Rectangle(0) // 0 = filled
}

func (r *renderer) line(from, to pixel.Vec, c color.Color) {
	r.imd.Color = c
	r.imd.Push(from, to)
	r.imd.Line(bevelWidth)
}

// drawLabel draws label centred on center
func (r *renderer) drawLabel(target pixel.Target, center pixel.Vec, label string, c color.Color, scale float64) {
	txt := text.New(pixel.ZV, r.atlas)
	txt.Color = c
	fmt.Fprint(txt, label)
	txt.Draw(target, pixel.IM.Moved(center.Sub(txt.Bounds().Center())).Scaled(center, scale))
}
