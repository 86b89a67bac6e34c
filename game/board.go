package game

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/minefield/util/collections"
)

type Board struct {
	size     int // in number of cells, per side
	numMines int
	cells    [][]Cell

	state    BoardState
	numFlags int

	// Seed of the current layout, drawn from rand on every reset
	seed int64
	rand *rand.Rand

	log logrus.FieldLogger
}

// ValidateDimensions checks that a size x size board can hold numMines mines
// with at least one safe cell left over.
func ValidateDimensions(size, numMines int) error {
	if size <= 0 {
		return errors.Errorf("board size must be positive, got %d", size)
	}
	if numMines <= 0 || numMines >= size*size {
		return errors.Errorf(
			"mine count must be between 1 and %d for a %dx%d board, got %d",
			size*size-1, size, size, numMines,
		)
	}
	return nil
}

// NewBoard creates a board with a freshly randomized layout. Successive
// resets draw their layouts from rng; a nil rng is seeded from the clock.
func NewBoard(size, numMines int, rng *rand.Rand, log logrus.FieldLogger) (*Board, error) {
	if err := ValidateDimensions(size, numMines); err != nil {
		return nil, err
	}

	board := newBoard(size, numMines, rng, log)
	board.Reset()
	return board, nil
}

func newBoard(size, numMines int, rng *rand.Rand, log logrus.FieldLogger) *Board {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	board := &Board{
		size:     size,
		numMines: numMines,
		cells:    make([][]Cell, size),
		state:    Ongoing,
		rand:     rng,
		log:      log,
	}

	for y := 0; y < size; y++ {
		row := make([]Cell, size)
		board.cells[y] = row

		for x := 0; x < size; x++ {
			cell := &row[x]
			cell.board = board
			cell.x, cell.y = x, y
		}
	}

	return board
}

func (board *Board) Size() int {
	return board.size
}

func (board *Board) NumCells() int {
	return board.size * board.size
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumFlags() int {
	return board.numFlags
}

// MinesRemaining is the mine count minus the number of flags placed. It goes
// negative when the player over-flags.
func (board *Board) MinesRemaining() int {
	return board.numMines - board.numFlags
}

func (board *Board) Seed() int64 {
	return board.seed
}

func (board *Board) State() BoardState {
	return board.state
}

func (board *Board) CellAt(x, y int) *Cell {
	if x >= 0 && y >= 0 && x < board.size && y < board.size {
		return &board.cells[y][x]
	}
	return nil
}

// CellState reports what the player sees at (x, y). Out-of-bounds positions
// read as Unrevealed.
func (board *Board) CellState(x, y int) CellState {
	if cell := board.CellAt(x, y); cell != nil {
		return cell.State()
	}
	return Unrevealed
}

// Cells returns every cell in row-major order
func (board *Board) Cells() []*Cell {
	cells := make([]*Cell, 0, board.NumCells())
	for y := range board.cells {
		for x := range board.cells[y] {
			cells = append(cells, &board.cells[y][x])
		}
	}
	return cells
}

func (board *Board) Mines() collections.Set[Point] {
	mines := make(collections.Set[Point], board.numMines)
	for _, cell := range board.Cells() {
		if cell.isMine {
			mines.Add(cell.Pos())
		}
	}
	return mines
}

// NumRevealed counts revealed cells, mines included
func (board *Board) NumRevealed() int {
	numRevealed := 0
	for _, cell := range board.Cells() {
		if cell.isRevealed {
			numRevealed++
		}
	}
	return numRevealed
}

func (board *Board) canPlay() bool {
	return board.state == Ongoing
}

// Reset clears the board and lays out a new, randomly placed set of mines.
func (board *Board) Reset() {
	board.seed = board.rand.Int63()
	board.clear()
	board.placeMines(rand.New(rand.NewSource(board.seed)))
	board.countMines()

	board.log.WithField("seed", board.seed).Debug("board reset")
}

// Layout clears the board and places mines at exactly the given positions.
func (board *Board) Layout(mines []Point) error {
	if len(mines) != board.numMines {
		return errors.Errorf("expected %d mines, got %d", board.numMines, len(mines))
	}

	seen := collections.NewSet[Point]()
	for _, pos := range mines {
		if board.CellAt(pos.X, pos.Y) == nil {
			return errors.Errorf("mine %v is outside the %dx%d board", pos, board.size, board.size)
		}
		if seen.Contains(pos) {
			return errors.Errorf("duplicate mine at %v", pos)
		}
		seen.Add(pos)
	}

	board.clear()
	for pos := range seen {
		board.CellAt(pos.X, pos.Y).isMine = true
	}
	board.countMines()
	return nil
}

func (board *Board) clear() {
	for _, cell := range board.Cells() {
		cell.clear()
	}
	board.numFlags = 0
	board.state = Ongoing
}

// placeMines draws random cells until numMines distinct ones are mines.
// Terminates only while numMines < NumCells.
func (board *Board) placeMines(rng *rand.Rand) {
	for placed := 0; placed < board.numMines; {
		cell := board.CellAt(rng.Intn(board.size), rng.Intn(board.size))
		if cell.isMine {
			continue
		}
		cell.isMine = true
		placed++
	}
}

func (board *Board) countMines() {
	for _, cell := range board.Cells() {
		if !cell.isMine {
			cell.countMines()
		}
	}
}

// Reveal uncovers the cell at (x, y), cascading through zero-count cells.
// Out-of-bounds, revealed and flagged cells are ignored, as is any reveal once
// the game has ended.
func (board *Board) Reveal(x, y int) {
	if !board.canPlay() {
		return
	}

	cell := board.CellAt(x, y)
	if cell == nil || cell.isRevealed || cell.isFlagged {
		return
	}

	if cell.isMine {
		cell.isRevealed = true
		cell.isLosingMine = true
		board.lose()
		return
	}

	cell.cascadeReveal()

	if board.isCleared() {
		board.win()
	}
}

// ToggleFlag flips the flag on a hidden cell. Revealed and out-of-bounds cells
// are ignored, as is any toggle once the game has ended.
func (board *Board) ToggleFlag(x, y int) {
	if !board.canPlay() {
		return
	}

	cell := board.CellAt(x, y)
	if cell == nil || cell.isRevealed {
		return
	}

	cell.isFlagged = !cell.isFlagged
	if cell.isFlagged {
		board.numFlags++
	} else {
		board.numFlags--
	}
}

// isCleared reports whether every safe cell has been revealed
func (board *Board) isCleared() bool {
	for _, cell := range board.Cells() {
		if !cell.isRevealed && !cell.isMine {
			return false
		}
	}
	return true
}

func (board *Board) win() {
	board.state = Won
	board.endGame()
}

func (board *Board) lose() {
	board.state = Lost
	board.endGame()
}

func (board *Board) endGame() {
	for _, cell := range board.Cells() {
		if cell.isMine {
			cell.isRevealed = true
		}
	}

	board.log.WithFields(logrus.Fields{
		"seed":     board.seed,
		"state":    board.state,
		"revealed": board.NumRevealed(),
		"flags":    board.numFlags,
	}).Info("game over")
}
