// neblox is a terminal platformer: stomp enemies, answer a quiz to take
// the key, and reach the door.
//
// Usage:
//
//	neblox play              - Play a session
//	neblox menu              - Title menu (play, difficulty, high scores)
//	neblox serve             - Start SSH server for remote play
//	neblox scores            - Show the leaderboard
//	neblox stages            - List the loaded stages
//	neblox check             - Validate config, stage and question files
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible question draws
//	--db <path>          - Set database path (default: ~/.neblox/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neblox",
	Short: "NEblox - a quiz platformer in your terminal",
	Long: `NEblox is a side-view platformer that runs in your terminal.
Stomp patrolling enemies, answer a question to take the key, and walk
through the door to reach the next stage.

Available commands:
  play     - Play a session directly
  menu     - Title menu with difficulty and high scores
  serve    - Start SSH server for remote play
  scores   - View the leaderboard
  stages   - List the loaded stages
  check    - Validate config, stage and question files

Examples:
  neblox play
  neblox play --difficulty hard --name ayu
  neblox serve --ssh :2222
  neblox scores --limit 20`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.neblox/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(checkCmd)
}
