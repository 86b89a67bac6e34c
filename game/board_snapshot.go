package game

import (
	"math/rand"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// BoardSnapshot is a textual record of a board. Each row of SerializedBoard
// holds one character per cell:
//
//	#  hidden
//	.  revealed
//	f  flagged
//	*  mine
//	F  flagged mine
//	X  the mine that lost the game
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board"`
}

func (board *Board) Snapshot() *BoardSnapshot {
	rows := make([]string, board.size)
	for y, row := range board.cells {
		var rowBuilder strings.Builder
		for x := range row {
			rowBuilder.WriteString(row[x].serialize())
		}
		rows[y] = rowBuilder.String()
	}

	return &BoardSnapshot{
		Seed:            board.seed,
		SerializedBoard: strings.Join(rows, "\n"),
	}
}

func (snapshot *BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", errors.Wrap(err, "marshal snapshot")
	}
	return string(out), nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(err, "parse snapshot")
	}
	return &snapshot, nil
}

func (snapshot *BoardSnapshot) rows() []string {
	return strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")
}

// CreateBoard builds a board with the snapshot's mine layout. When fresh is
// set, revealed and flagged state is discarded and play starts over;
// otherwise the game state is restored, finishing it if the snapshot shows a
// lost or cleared board.
func (snapshot *BoardSnapshot) CreateBoard(log logrus.FieldLogger, fresh bool) (*Board, error) {
	rows := snapshot.rows()
	size := len(rows)

	var mines []Point
	for y, row := range rows {
		if len([]rune(row)) != size {
			return nil, errors.Errorf("snapshot row %d has %d cells, expected %d", y, len([]rune(row)), size)
		}
		for x, c := range []rune(row) {
			if isMineRune(c) {
				mines = append(mines, Point{x, y})
			}
		}
	}

	if err := ValidateDimensions(size, len(mines)); err != nil {
		return nil, errors.Wrap(err, "invalid snapshot")
	}

	board := newBoard(size, len(mines), rand.New(rand.NewSource(snapshot.Seed)), log)
	if err := board.Layout(mines); err != nil {
		return nil, errors.Wrap(err, "invalid snapshot")
	}
	board.seed = snapshot.Seed

	for y, row := range rows {
		for x, c := range []rune(row) {
			cell := board.CellAt(x, y)
			if err := cell.deserialize(c, fresh); err != nil {
				return nil, errors.Wrap(err, "invalid snapshot")
			}
			if cell.isFlagged {
				board.numFlags++
			}
		}
	}

	board.settle()
	return board, nil
}

// settle ends a restored game that is already lost or won
func (board *Board) settle() {
	for _, cell := range board.Cells() {
		if cell.isLosingMine {
			board.lose()
			return
		}
	}
	if board.isCleared() {
		board.win()
	}
}
