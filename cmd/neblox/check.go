package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neblox/internal/config"
	"github.com/vovakirdan/neblox/internal/quiz"
	"github.com/vovakirdan/neblox/internal/stage"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate config, stage and question files",
	Long: `Loads the game config, stage list and question pool the same way
'play' does and reports the first problem found. Exits non-zero when a
file is invalid.

Without path flags, every file on the search path is checked, including
ones 'play' would skip in favor of the built-in defaults.

Examples:
  neblox check
  neblox check --config ./neblox.yaml --stages ./stages.yaml`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	addAssetFlags(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	if err := checkSearchPaths(searchedFiles(flagConfig, flagStages, flagQuestions)); err != nil {
		return err
	}
	a, err := loadAssets(flagConfig, flagDifficulty, flagStages, flagQuestions)
	if err != nil {
		return err
	}
	printSummary(os.Stdout, a)
	return nil
}

func printSummary(w io.Writer, a assets) {
	fmt.Fprintln(w, "OK")
	fmt.Fprintf(w, "  field      %.0fx%.0f\n", a.Config.Field.Width, a.Config.Field.Height)
	fmt.Fprintf(w, "  lives      %d\n", a.Config.Session.Lives)
	fmt.Fprintf(w, "  enemies    x%.2f speed\n", a.Config.EnemySpeedScale)
	fmt.Fprintf(w, "  stages     %d\n", len(a.Stages))
	fmt.Fprintf(w, "  questions  %d\n", a.Bank.Len())
}

// searchedFile is a data file looked up on the search path when its flag
// is empty.
type searchedFile struct {
	name  string
	flag  string
	parse func([]byte) error
}

func searchedFiles(configPath, stagesPath, questionsPath string) []searchedFile {
	return []searchedFile{
		{"neblox.yaml", configPath, func(data []byte) error {
			_, err := config.Parse(data)
			return err
		}},
		{"stages.yaml", stagesPath, func(data []byte) error {
			_, err := stage.Parse(data)
			return err
		}},
		{"questions.yaml", questionsPath, func(data []byte) error {
			_, err := quiz.Parse(data)
			return err
		}},
	}
}

// checkSearchPaths parses every existing file on the search path of each
// data file whose flag is empty.
func checkSearchPaths(files []searchedFile) error {
	for _, f := range files {
		if f.flag != "" {
			continue
		}
		for _, path := range config.SearchPaths(f.name) {
			data, err := os.ReadFile(path)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			if err := f.parse(data); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
	}
	return nil
}
