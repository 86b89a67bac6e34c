package game

type CellState int
type BoardState int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
	Mine
)

var CellStates = []CellState{
	Unrevealed,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Flag,
	Mine,
}

// NumMines returns the neighbour count shown by a revealed numbered cell, or
// -1 for any other state.
func (state CellState) NumMines() int {
	if state >= Empty && state <= Number8 {
		return int(state)
	}
	return -1
}

const (
	GridSize = 10
	NumMines = 10
)

// Window geometry, in pixels. The restart panel sits below the board.
const (
	CellWidth   = 40
	PanelHeight = 40
	BoardWidth  = GridSize * CellWidth
)

const (
	Ongoing BoardState = iota
	Lost
	Won
)

func (state BoardState) String() string {
	switch state {
	case Ongoing:
		return "ongoing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	}
	return "unknown"
}
