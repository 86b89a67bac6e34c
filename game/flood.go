package game

import "github.com/gammazero/deque"

// Visitor handles a single cell of a flood, returning whether the flood should
// continue into that cell's neighbours.
type Visitor func(*Cell) bool
type NeighborGetter func(*Cell) []*Cell

// flood performs a breadth-first expansion from origin. Cells may be queued
// more than once; the visitor is responsible for ignoring repeats.
func flood(origin *Cell, visit Visitor, getNeighbors NeighborGetter) {
	var visitQueue deque.Deque
	visitQueue.PushBack(origin)

	for visitQueue.Len() > 0 {
		cell := visitQueue.PopFront().(*Cell)
		if !visit(cell) {
			continue
		}

		for _, neighbor := range getNeighbors(cell) {
			visitQueue.PushBack(neighbor)
		}
	}
}

// cascadeReveal reveals cell and, while zero-count cells are uncovered, every
// cell around them. Flagged and already-revealed cells stop the cascade.
func (cell *Cell) cascadeReveal() {
	flood(
		cell,
		func(cell *Cell) bool {
			if cell.isRevealed || cell.isFlagged {
				return false
			}
			cell.isRevealed = true
			return !cell.isMine && cell.numMines == 0
		},
		func(cell *Cell) []*Cell {
			return cell.Neighbors()
		},
	)
}
