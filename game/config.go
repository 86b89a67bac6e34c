package game

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type GameConfig struct {
	Size     int
	NumMines int

	Seed int64

	// Snapshot to load board configuration from
	Snapshot *BoardSnapshot
	// Whether to set all cells as unrevealed when loading the Snapshot
	LoadSnapshotFresh bool

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string

	Log logrus.FieldLogger
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Size:              GridSize,
		NumMines:          NumMines,
		Seed:              time.Now().UnixNano(),
		LoadSnapshotFresh: true,
		Log:               logrus.StandardLogger(),
	}
}

func (config GameConfig) Validate() error {
	if config.Snapshot != nil {
		return nil
	}
	return ValidateDimensions(config.Size, config.NumMines)
}

func (config GameConfig) CreateBoard() (*Board, error) {
	if config.Snapshot != nil {
		return config.Snapshot.CreateBoard(config.Log, config.LoadSnapshotFresh)
	}
	return NewBoard(config.Size, config.NumMines, rand.New(rand.NewSource(config.Seed)), config.Log)
}

// NewController creates the board described by config and a controller
// driving it, saving a snapshot of every finished game if configured to.
func (config GameConfig) NewController() (*Controller, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	board, err := config.CreateBoard()
	if err != nil {
		return nil, err
	}
	if board.Size() != GridSize {
		return nil, errors.Errorf("board must be %dx%d to fit the window, got %dx%d",
			GridSize, GridSize, board.Size(), board.Size())
	}

	controller := NewController(board, config.Log)
	controller.OnGameEnd = config.onGameEnd
	return controller, nil
}

func (config GameConfig) onGameEnd(board *Board) {
	if config.SavedSnapshotsDir == "" {
		return
	}

	path, err := config.saveSnapshot(board, time.Now())
	if err != nil {
		config.Log.WithError(err).Error("could not save snapshot")
		return
	}
	config.Log.WithField("path", path).Info("saved snapshot")
}

func (config GameConfig) saveSnapshot(board *Board, t time.Time) (string, error) {
	stat, err := os.Stat(config.SavedSnapshotsDir)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(config.SavedSnapshotsDir, 0777); err != nil {
			return "", errors.Wrap(err, "create snapshots dir")
		}
	case err != nil:
		return "", errors.Wrap(err, "stat snapshots dir")
	case !stat.IsDir():
		return "", errors.Errorf("%s is not a directory; cannot save snapshots to it", config.SavedSnapshotsDir)
	}

	serialized, err := board.Snapshot().Serialize()
	if err != nil {
		return "", err
	}

	path := filepath.Join(config.SavedSnapshotsDir, generateReplayFilename(board, t))

	// TODO: prevent duplicate filenames when two games end within a second
	if err := os.WriteFile(path, []byte(serialized), 0666); err != nil {
		return "", errors.Wrap(err, "write snapshot")
	}
	return path, nil
}

func generateReplayFilename(board *Board, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var stateStr string
	switch board.state {
	case Won:
		stateStr = "win"
	case Lost:
		stateStr = "loss"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}
