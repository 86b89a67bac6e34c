package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/spf13/cobra"
	"github.com/they4kman/minefield/game"
	"github.com/they4kman/minefield/ui"
)

var gameConfig = game.NewGameConfig()

var (
	seed         int64
	snapshotPath string
	logLevel     string
	logFile      string
)

var rootCmd = &cobra.Command{
	Use:   "minefield",
	Short: "Play Minesweeper",
	Long: `minefield is a 10x10 Minesweeper game with 10 mines.

Left-click reveals a cell, right-click flags it. Press R or Enter, or
click Restart, to start a new game.

Run with no arguments to play
	minefield

Replay a layout from a saved snapshot
	minefield --snapshot 20240101_120000_loss.yaml
`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(logLevel, logFile)
		if err != nil {
			return err
		}
		gameConfig.Log = log

		if cmd.Flags().Changed("seed") {
			gameConfig.Seed = seed
		}

		if snapshotPath != "" {
			snapshot, err := loadSnapshotFile(snapshotPath)
			if err != nil {
				return err
			}
			gameConfig.Snapshot = snapshot
		}

		controller, err := gameConfig.NewController()
		if err != nil {
			return err
		}

		log.WithField("seed", controller.Board().Seed()).Info("starting game")
		pixelgl.Run(func() {
			ui.Run(controller)
		})
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newLogger(level, file string) (*logrus.Logger, error) {
	parsedLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}

	log := logrus.New()
	log.SetLevel(parsedLevel)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if file != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   file,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      parsedLevel,
			Formatter:  &logrus.JSONFormatter{TimestampFormat: time.RFC3339},
		})
		if err != nil {
			return nil, errors.Wrap(err, "open log file")
		}
		log.AddHook(hook)
	}

	return log, nil
}

func loadSnapshotFile(path string) (*game.BoardSnapshot, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read snapshot")
	}
	return game.LoadSnapshot(string(contents))
}

func init() {
	rootCmd.Flags().Int64VarP(&seed, "seed", "s", 0, "Seed for mine placement (random if unset)")
	rootCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Load the mine layout from a YAML board snapshot")
	rootCmd.Flags().BoolVar(&gameConfig.LoadSnapshotFresh, "fresh", true, "Hide all cells of a loaded snapshot instead of restoring its progress")
	rootCmd.Flags().StringVar(&gameConfig.SavedSnapshotsDir, "save-snapshots", "", "Directory to save a snapshot of every finished game to")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Also write JSON logs to this file, rotated by size")
}
