package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neblox/internal/audio"
	"github.com/vovakirdan/neblox/internal/config"
	"github.com/vovakirdan/neblox/internal/platform/tui"
	"github.com/vovakirdan/neblox/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start NEblox with a title menu.

Pick a difficulty, play a session, and come back to the menu when you
quit the game. The high score list is one key away.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right      - Change difficulty
  Enter/Space     - Select
  Tab             - High scores
  Q               - Quit

Examples:
  neblox menu
  neblox menu --fps 30
  neblox menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addAssetFlags(menuCmd)
	menuCmd.Flags().StringVar(&flagName, "name", "", "Player name for the leaderboard (default: OS user)")
}

func runMenu(_ *cobra.Command, _ []string) error {
	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}

	logger, logFile := fileLogger()
	defer logFile.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := flagName
	if player == "" {
		player = defaultPlayer()
	}

	var sink audio.Sink
	defer func() {
		if sink != nil {
			sink.Close()
		}
	}()

	cfg := runtimeConfig()

	// Menu loop
	for {
		high := 0
		if store != nil {
			if high, err = store.HighScore(); err != nil {
				logger.Error("could not read high score", "err", err)
			}
		}

		result, err := tui.RunMenu(cfg, preset, high)
		if err != nil {
			return err
		}
		cfg = result.Config
		preset = result.Difficulty

		switch result.Choice {
		case tui.MenuQuit:
			return nil

		case tui.MenuScores:
			if err := tui.RunLeaderboard(store, player, cfg.ScreenW, cfg.ScreenH); err != nil {
				return err
			}

		case tui.MenuPlay:
			a, err := loadAssets(flagConfig, string(preset), flagStages, flagQuestions)
			if err != nil {
				return err
			}
			if sink == nil {
				sink = audio.Open(a.Config.Audio, logger)
			}
			err = tui.Run(tui.Options{
				Config:  a.Config,
				Stages:  a.Stages,
				Bank:    a.Bank,
				Store:   store,
				Sink:    sink,
				Logger:  logger,
				Player:  player,
				Runtime: cfg,
			})
			if err != nil {
				return fmt.Errorf("error running game: %w", err)
			}
		}
	}
}
