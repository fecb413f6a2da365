package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neblox/internal/platform/tui"
	"github.com/vovakirdan/neblox/internal/storage"
)

var (
	flagLimit  int
	flagPlayer string
	flagPlain  bool
	flagRun    string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best finished runs.

In a terminal this opens the interactive leaderboard; when the output is
piped, or with --plain, it prints a table.

Examples:
  neblox scores
  neblox scores --limit 20 --plain
  neblox scores --player ayu
  neblox scores --run 3f1c9a52-7d0e-4a53-9a57-1f0f3b2f8c11
  neblox scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show in plain output")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show runs of this player")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a table instead of the interactive view")
	scoresCmd.Flags().StringVar(&flagRun, "run", "", "Show a single run by its ID")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
	scoresCmd.MarkFlagsMutuallyExclusive("run", "clear")
}

func runScores(_ *cobra.Command, _ []string) error {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Leaderboard cleared.")
		return nil
	case flagRun != "":
		return printRun(os.Stdout, store, flagRun)
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		cfg := runtimeConfig()
		return tui.RunLeaderboard(store, flagPlayer, cfg.ScreenW, cfg.ScreenH)
	}

	return printScores(os.Stdout, store, flagPlayer, flagLimit)
}

// printScores writes the leaderboard as a plain table.
func printScores(w io.Writer, store *storage.Store, player string, limit int) error {
	var (
		runs []storage.Run
		err  error
	)
	if player != "" {
		runs, err = store.PlayerRuns(player, limit)
	} else {
		runs, err = store.TopRuns(limit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Fprintln(w, "High Scores - NEblox")
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'neblox play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-16s  %-8s  %-5s  %s\n", "Rank", "Player", "Score", "Stage", "Date")
	fmt.Fprintf(w, "  %-4s  %-16s  %-8s  %-5s  %s\n", "----", "------", "-----", "-----", "----")

	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-16s  %-8d  %-5d  %s\n",
			i+1, r.Player, r.Score, r.Stage, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d  (%d runs by %d players)\n", stats.HighScore, stats.Runs, stats.Players)
	}
	return nil
}

// printRun writes the details of one run.
func printRun(w io.Writer, store *storage.Store, runID string) error {
	r, err := store.RunByID(runID)
	if err != nil {
		return fmt.Errorf("error retrieving run: %w", err)
	}
	if r == nil {
		return fmt.Errorf("no run with id %s", runID)
	}

	fmt.Fprintf(w, "Run     %s\n", r.RunID)
	fmt.Fprintf(w, "Player  %s\n", r.Player)
	fmt.Fprintf(w, "Score   %d\n", r.Score)
	fmt.Fprintf(w, "Stage   %d\n", r.Stage)
	fmt.Fprintf(w, "Date    %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}
