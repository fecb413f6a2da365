package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neblox/internal/logger"
	"github.com/vovakirdan/neblox/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the NEblox SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session; the SSH user name is the
player name. Scores are stored per-server (all users share the same
leaderboard). Remote sessions are silent.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.neblox/host_key

Examples:
  neblox serve                           # Listen on :23234 with auto-generated key
  neblox serve --ssh :2222               # Listen on port 2222
  neblox serve --host-key ./my_host_key  # Use specific host key
  neblox serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	addAssetFlags(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	level, err := logger.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}

	a, err := loadAssets(flagConfig, flagDifficulty, flagStages, flagQuestions)
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Game:        a.Config,
		Stages:      a.Stages,
		Bank:        a.Bank,
	}

	server, err := tui.NewSSHServer(cfg, logger.New(os.Stderr, "neblox-ssh", level))
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Starting NEblox SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
