package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// Point identifies a cell by column and row, (0, 0) being the top-left cell.
type Point struct {
	X, Y int
}

func (point Point) String() string {
	return fmt.Sprintf("(%d, %d)", point.X, point.Y)
}

var neighborOffsets = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

type Cell struct {
	board *Board

	x, y     int
	numMines int

	isMine, isRevealed, isFlagged bool
	isLosingMine                  bool
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.x, cell.y)
}

func (cell *Cell) X() int {
	return cell.x
}

func (cell *Cell) Y() int {
	return cell.y
}

func (cell *Cell) Pos() Point {
	return Point{cell.x, cell.y}
}

func (cell *Cell) IsMine() bool {
	return cell.isMine
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell *Cell) IsFlagged() bool {
	return cell.isFlagged
}

// IsLosingMine reports whether this is the mine whose reveal lost the game.
func (cell *Cell) IsLosingMine() bool {
	return cell.isLosingMine
}

// NumMines is the number of mines among the cell's neighbours. It is
// meaningless for mine cells.
func (cell *Cell) NumMines() int {
	return cell.numMines
}

func (cell *Cell) State() CellState {
	switch {
	case cell.isRevealed && cell.isMine:
		return Mine
	case cell.isRevealed:
		return CellState(cell.numMines)
	case cell.isFlagged:
		return Flag
	default:
		return Unrevealed
	}
}

// Neighbors returns the cells surrounding this one, clipped at the board
// edges.
func (cell *Cell) Neighbors() []*Cell {
	neighbors := make([]*Cell, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		if neighbor := cell.board.CellAt(cell.x+offset.X, cell.y+offset.Y); neighbor != nil {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

func (cell *Cell) countMines() {
	cell.numMines = 0
	for _, neighbor := range cell.Neighbors() {
		if neighbor.isMine {
			cell.numMines++
		}
	}
}

func (cell *Cell) clear() {
	cell.numMines = 0
	cell.isMine = false
	cell.isRevealed = false
	cell.isFlagged = false
	cell.isLosingMine = false
}

func (cell *Cell) serialize() string {
	switch {
	case cell.isMine:
		switch {
		case cell.isLosingMine:
			return "X"
		case cell.isFlagged:
			return "F"
		default:
			return "*"
		}
	case cell.isFlagged:
		return "f"
	case cell.isRevealed:
		return "."
	default:
		return "#"
	}
}

// deserialize restores the revealed and flagged masks from a snapshot
// character. Mines are placed separately, before counts are computed.
func (cell *Cell) deserialize(c rune, fresh bool) error {
	switch c {
	case '*', '#':
	case 'X':
		if !fresh {
			cell.isRevealed = true
			cell.isLosingMine = true
		}
	case 'F', 'f':
		if !fresh {
			cell.isFlagged = true
		}
	case '.':
		if !fresh {
			cell.isRevealed = true
		}
	default:
		return errors.Errorf("invalid cell %q at %v", c, cell.Pos())
	}
	return nil
}

func isMineRune(c rune) bool {
	return c == '*' || c == 'F' || c == 'X'
}
