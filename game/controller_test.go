package game

import (
	"testing"

	"github.com/faiface/pixel"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/minefield/util/collections"
)

func newTestController(t *testing.T, mines []Point) *Controller {
	t.Helper()

	board, _ := newTestBoard(t, mines)
	log, _ := logtest.NewNullLogger()
	return NewController(board, log)
}

func cellCenter(x, y int) pixel.Vec {
	return CellBounds(x, y).Center()
}

func TestScreenToGridCoords(t *testing.T) {
	for _, tc := range []struct {
		pos  pixel.Vec
		x, y int
		ok   bool
	}{
		{pixel.V(0, PanelHeight+BoardWidth-1), 0, 0, true},
		{pixel.V(BoardWidth-1, PanelHeight), GridSize - 1, GridSize - 1, true},
		{pixel.V(CellWidth+1, PanelHeight+BoardWidth-CellWidth-1), 1, 1, true},
		{pixel.V(10, 10), 0, 0, false},
		{pixel.V(BoardWidth, PanelHeight+1), 0, 0, false},
		{pixel.V(1, PanelHeight+BoardWidth), 0, 0, false},
		{pixel.V(-1, PanelHeight+1), 0, 0, false},
	} {
		x, y, ok := ScreenToGridCoords(tc.pos)
		assert.Equal(t, tc.ok, ok, "%v", tc.pos)
		if tc.ok {
			assert.Equal(t, tc.x, x, "%v", tc.pos)
			assert.Equal(t, tc.y, y, "%v", tc.pos)
		}
	}
}

func TestCellBoundsInvertsScreenToGridCoords(t *testing.T) {
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			for _, pos := range []pixel.Vec{CellBounds(x, y).Min, cellCenter(x, y)} {
				gotX, gotY, ok := ScreenToGridCoords(pos)
				require.True(t, ok)
				assert.Equal(t, x, gotX)
				assert.Equal(t, y, gotY)
			}
		}
	}
}

func TestRestartButtonIsOutsideBoard(t *testing.T) {
	_, _, ok := ScreenToGridCoords(RestartButtonBounds.Center())
	assert.False(t, ok)
	assert.LessOrEqual(t, RestartButtonBounds.Max.Y, BoardBounds.Min.Y)
}

func TestLeftClickReveals(t *testing.T) {
	controller := newTestController(t, wallMines(4))

	controller.PointerDown(MouseButtonLeft, cellCenter(0, 0))

	board := controller.Board()
	assert.Equal(t, Empty, board.CellState(0, 0))
	assert.Equal(t, Number2, board.CellState(3, 9))
	assert.Equal(t, Unrevealed, board.CellState(5, 0))
}

func TestRightClickTogglesFlag(t *testing.T) {
	controller := newTestController(t, wallMines(4))

	controller.PointerDown(MouseButtonRight, cellCenter(6, 2))
	assert.Equal(t, Flag, controller.Board().CellState(6, 2))

	controller.PointerDown(MouseButtonLeft, cellCenter(6, 2))
	assert.Equal(t, Flag, controller.Board().CellState(6, 2))

	controller.PointerDown(MouseButtonRight, cellCenter(6, 2))
	assert.Equal(t, Unrevealed, controller.Board().CellState(6, 2))
}

func TestMiddleClickIgnored(t *testing.T) {
	controller := newTestController(t, wallMines(4))

	controller.PointerDown(MouseButtonMiddle, cellCenter(0, 0))

	assert.Equal(t, 0, controller.Board().NumRevealed())
	assert.Equal(t, 0, controller.Board().NumFlags())
}

func TestClickOutsideBoardIgnored(t *testing.T) {
	controller := newTestController(t, wallMines(4))

	controller.PointerDown(MouseButtonLeft, pixel.V(10, 10))
	controller.PointerDown(MouseButtonRight, pixel.V(BoardWidth-10, 10))

	assert.Equal(t, 0, controller.Board().NumRevealed())
	assert.Equal(t, 0, controller.Board().NumFlags())
}

func TestClicksIgnoredAfterGameEnds(t *testing.T) {
	controller := newTestController(t, wallMines(4))
	board := controller.Board()

	controller.PointerDown(MouseButtonLeft, cellCenter(4, 0))
	require.Equal(t, Lost, board.State())

	controller.PointerDown(MouseButtonLeft, cellCenter(0, 0))
	controller.PointerDown(MouseButtonRight, cellCenter(9, 9))

	assert.Equal(t, Lost, board.State())
	assert.Equal(t, NumMines, board.NumRevealed())
	assert.Equal(t, 0, board.NumFlags())
}

func TestRestartKeys(t *testing.T) {
	for _, key := range []Key{KeyR, KeyEnter} {
		controller := newTestController(t, wallMines(4))
		board := controller.Board()
		controller.PointerDown(MouseButtonLeft, cellCenter(4, 0))
		require.Equal(t, Lost, board.State())

		controller.KeyDown(key)

		assert.Equal(t, Ongoing, board.State())
		assert.Equal(t, 0, board.NumRevealed())
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	controller := newTestController(t, wallMines(4))
	controller.PointerDown(MouseButtonLeft, cellCenter(4, 0))

	controller.KeyDown(KeyUnknown)

	assert.Equal(t, Lost, controller.Board().State())
}

func TestRestartButton(t *testing.T) {
	controller := newTestController(t, wallMines(4))
	board := controller.Board()
	controller.PointerDown(MouseButtonLeft, cellCenter(0, 0))
	controller.PointerDown(MouseButtonRight, cellCenter(9, 9))

	controller.PointerMove(RestartButtonBounds.Center())
	assert.True(t, controller.RestartHovered())

	controller.PointerDown(MouseButtonRight, RestartButtonBounds.Center())
	assert.Equal(t, 1, board.NumFlags())

	controller.PointerDown(MouseButtonLeft, RestartButtonBounds.Center())
	assert.Equal(t, Ongoing, board.State())
	assert.Equal(t, 0, board.NumRevealed())
	assert.Equal(t, 0, board.NumFlags())
	assert.False(t, board.Mines().Equal(collections.NewSet(wallMines(4)...)))

	controller.PointerMove(cellCenter(0, 0))
	assert.False(t, controller.RestartHovered())
}

func TestHoveredCell(t *testing.T) {
	controller := newTestController(t, wallMines(4))

	controller.PointerMove(cellCenter(2, 7))
	require.NotNil(t, controller.HoveredCell())
	assert.Equal(t, Point{2, 7}, controller.HoveredCell().Pos())

	controller.PointerMove(pixel.V(1, 1))
	assert.Nil(t, controller.HoveredCell())
}

func TestOnGameEndCalledOncePerGame(t *testing.T) {
	controller := newTestController(t, wallMines(4))
	var ended []BoardState
	controller.OnGameEnd = func(board *Board) {
		ended = append(ended, board.State())
	}

	controller.PointerDown(MouseButtonRight, cellCenter(0, 0))
	controller.PointerDown(MouseButtonLeft, cellCenter(5, 5))
	assert.Empty(t, ended)

	controller.PointerDown(MouseButtonLeft, cellCenter(4, 4))
	controller.PointerDown(MouseButtonLeft, cellCenter(4, 5))
	assert.Equal(t, []BoardState{Lost}, ended)

	controller.Restart()
	mine := controller.Board().Mines().Values()[0]
	controller.PointerDown(MouseButtonLeft, cellCenter(mine.X, mine.Y))
	assert.Equal(t, []BoardState{Lost, Lost}, ended)
}

func TestOnGameEndOnWin(t *testing.T) {
	controller := newTestController(t, wallMines(4))
	var ended []BoardState
	controller.OnGameEnd = func(board *Board) {
		ended = append(ended, board.State())
	}

	controller.PointerDown(MouseButtonLeft, cellCenter(0, 0))
	controller.PointerDown(MouseButtonLeft, cellCenter(9, 0))

	assert.Equal(t, []BoardState{Won}, ended)
}
