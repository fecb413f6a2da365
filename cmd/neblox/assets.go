package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/neblox/internal/config"
	"github.com/vovakirdan/neblox/internal/core"
	"github.com/vovakirdan/neblox/internal/logger"
	"github.com/vovakirdan/neblox/internal/quiz"
	"github.com/vovakirdan/neblox/internal/stage"
)

// Asset flags shared by play, menu, serve and check.
var (
	flagConfig     string
	flagDifficulty string
	flagStages     string
	flagQuestions  string
)

// assets is everything a session is built from.
type assets struct {
	Config config.Config
	Stages []stage.Stage
	Bank   *quiz.Bank
}

// loadAssets loads config, stages and questions using the search order of
// each loader; an explicit path that fails is an error.
func loadAssets(configPath, difficulty, stagesPath, questionsPath string) (assets, error) {
	preset := config.ParsePreset(difficulty)
	if difficulty != "" && preset == "" {
		return assets{}, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", difficulty)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return assets{}, err
	}
	config.ApplyPreset(&cfg, preset)

	stages, err := stage.Load(stagesPath)
	if err != nil {
		return assets{}, err
	}

	bank, err := quiz.Load(questionsPath)
	if err != nil {
		return assets{}, err
	}

	return assets{Config: cfg, Stages: stages, Bank: bank}, nil
}

// runtimeConfig sizes the session to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// fileLogger opens the local session log. On failure it logs nowhere so
// the game still runs.
func fileLogger() (*log.Logger, io.Closer) {
	level, err := logger.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	l, closer, err := logger.OpenFile(logger.DefaultPath, "neblox", level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return logger.Discard(), io.NopCloser(nil)
	}
	return l, closer
}

// defaultPlayer is the OS user name, used when --name is not given.
func defaultPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "anonymous"
}
