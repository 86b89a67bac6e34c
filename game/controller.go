package game

import (
	"github.com/faiface/pixel"
	"github.com/sirupsen/logrus"
)

type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

type Key int

const (
	KeyUnknown Key = iota
	KeyR
	KeyEnter
)

var restartKeys = map[Key]struct{}{
	KeyR:     {},
	KeyEnter: {},
}

const (
	restartButtonWidth  = 120
	restartButtonHeight = 30
)

// RestartButtonBounds is the hit box of the restart button, centred in the
// panel beneath the board.
var RestartButtonBounds = pixel.R(
	BoardWidth/2-restartButtonWidth/2,
	(PanelHeight-restartButtonHeight)/2,
	BoardWidth/2+restartButtonWidth/2,
	(PanelHeight+restartButtonHeight)/2,
)

// BoardBounds is the area of the window covered by cells
var BoardBounds = pixel.R(0, PanelHeight, BoardWidth, PanelHeight+BoardWidth)

// ScreenToGridCoords maps a window position (origin bottom-left, as reported
// by pixel) to the cell beneath it. ok is false outside the board.
func ScreenToGridCoords(pos pixel.Vec) (x, y int, ok bool) {
	if !BoardBounds.Contains(pos) || pos.Y == BoardBounds.Max.Y || pos.X == BoardBounds.Max.X {
		return 0, 0, false
	}
	x = int(pos.X) / CellWidth
	y = GridSize - 1 - (int(pos.Y)-PanelHeight)/CellWidth
	return x, y, true
}

// CellBounds is the inverse of ScreenToGridCoords: the window rectangle
// covered by cell (x, y).
func CellBounds(x, y int) pixel.Rect {
	origin := pixel.V(float64(x*CellWidth), float64(PanelHeight+(GridSize-1-y)*CellWidth))
	return pixel.Rect{Min: origin, Max: origin.Add(pixel.V(CellWidth, CellWidth))}
}

// Controller turns input events into board operations. All calls must come
// from the goroutine running the game loop.
type Controller struct {
	board *Board

	restartHovered bool
	hoveredCell    *Cell

	// Called once for every game that finishes
	OnGameEnd func(*Board)
	reported  bool

	log logrus.FieldLogger
}

func NewController(board *Board, log logrus.FieldLogger) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Controller{
		board: board,
		log:   log,
	}
}

func (controller *Controller) Board() *Board {
	return controller.board
}

func (controller *Controller) RestartHovered() bool {
	return controller.restartHovered
}

// HoveredCell is the cell beneath the pointer, or nil
func (controller *Controller) HoveredCell() *Cell {
	return controller.hoveredCell
}

func (controller *Controller) PointerMove(pos pixel.Vec) {
	controller.restartHovered = RestartButtonBounds.Contains(pos)

	controller.hoveredCell = nil
	if x, y, ok := ScreenToGridCoords(pos); ok {
		controller.hoveredCell = controller.board.CellAt(x, y)
	}
}

func (controller *Controller) PointerDown(button MouseButton, pos pixel.Vec) {
	controller.PointerMove(pos)

	if controller.restartHovered && button == MouseButtonLeft {
		controller.Restart()
		return
	}

	x, y, ok := ScreenToGridCoords(pos)
	if !ok || !controller.board.canPlay() {
		return
	}

	log := controller.log.WithFields(logrus.Fields{"x": x, "y": y})
	switch button {
	case MouseButtonLeft:
		log.Debug("reveal")
		controller.board.Reveal(x, y)
	case MouseButtonRight:
		log.Debug("toggle flag")
		controller.board.ToggleFlag(x, y)
	default:
		return
	}

	if !controller.board.canPlay() {
		controller.reportGameEnd()
	}
}

func (controller *Controller) KeyDown(key Key) {
	if _, isRestart := restartKeys[key]; isRestart {
		controller.Restart()
	}
}

// Restart lays out a new game, whatever the state of the current one
func (controller *Controller) Restart() {
	controller.log.WithField("state", controller.board.state).Debug("restart")
	controller.board.Reset()
	controller.reported = false
}

func (controller *Controller) reportGameEnd() {
	if controller.reported {
		return
	}
	controller.reported = true

	if controller.OnGameEnd != nil {
		controller.OnGameEnd(controller.board)
	}
}
