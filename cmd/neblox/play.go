package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neblox/internal/audio"
	"github.com/vovakirdan/neblox/internal/platform/tui"
	"github.com/vovakirdan/neblox/internal/storage"
)

var (
	flagName string
	flagMute bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a NEblox session.

Controls:
  A/D, Left/Right    - Run
  W/Up/Space         - Jump
  Enter              - Start / submit answer
  Esc                - Cancel the question
  M                  - Sound on/off
  R                  - Restart the run
  Ctrl+S             - Save a screenshot
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Enemies patrol at 75% speed
  normal - Speeds as written in the stage file
  hard   - Enemies patrol at 135% speed

Examples:
  neblox play
  neblox play --difficulty hard
  neblox play --name ayu --mute
  neblox play --stages ./my-stages.yaml --questions ./quiz.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func addAssetFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().StringVar(&flagStages, "stages", "", "Path to custom stages YAML")
	cmd.Flags().StringVar(&flagQuestions, "questions", "", "Path to custom questions YAML")
}

func init() {
	addAssetFlags(playCmd)
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name for the leaderboard (default: OS user)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
}

func runPlay(_ *cobra.Command, _ []string) error {
	a, err := loadAssets(flagConfig, flagDifficulty, flagStages, flagQuestions)
	if err != nil {
		return err
	}

	logger, logFile := fileLogger()
	defer logFile.Close()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "err", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	sink := audio.Open(a.Config.Audio, logger)
	defer sink.Close()

	player := flagName
	if player == "" {
		player = defaultPlayer()
	}

	if err := tui.Run(tui.Options{
		Config:  a.Config,
		Stages:  a.Stages,
		Bank:    a.Bank,
		Store:   store,
		Sink:    sink,
		Logger:  logger,
		Player:  player,
		Muted:   flagMute,
		Runtime: runtimeConfig(),
	}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
