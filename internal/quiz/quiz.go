// Package quiz holds the trivia pool that gates the key.
package quiz

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/neblox/internal/config"
)

//go:embed defaults/questions.yaml
var defaultYAML []byte

// Question is one trivia prompt and its expected answer.
type Question struct {
	Text   string `yaml:"q"`
	Answer string `yaml:"a"`
}

// Accepts reports whether a submitted answer matches: surrounding
// whitespace is ignored and case is folded, otherwise the match is exact.
func (q Question) Accepts(answer string) bool {
	return Normalize(answer) == Normalize(q.Answer)
}

// Normalize trims and case-folds an answer for comparison.
// A Caser is stateful, so each call builds its own.
func Normalize(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Bank is a fixed, non-empty pool of questions.
type Bank struct {
	questions []Question
}

// NewBank validates questions and wraps them in a Bank.
func NewBank(questions []Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, errors.New("quiz: question pool is empty")
	}
	var errs []error
	for i, q := range questions {
		if strings.TrimSpace(q.Text) == "" {
			errs = append(errs, fmt.Errorf("question %d: empty text", i))
		}
		if Normalize(q.Answer) == "" {
			errs = append(errs, fmt.Errorf("question %d: empty answer", i))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("quiz: %w", err)
	}

	pool := make([]Question, len(questions))
	copy(pool, questions)
	return &Bank{questions: pool}, nil
}

// Len returns the pool size.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Questions returns a copy of the pool.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// Draw picks a question uniformly at random.
func (b *Bank) Draw(rng *rand.Rand) Question {
	return b.questions[rng.Intn(len(b.questions))]
}

type file struct {
	Questions []Question `yaml:"questions"`
}

// Parse decodes a question file.
func Parse(data []byte) (*Bank, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("quiz: failed to parse questions: %w", err)
	}
	return NewBank(f.Questions)
}

// Default returns the embedded question pool.
func Default() *Bank {
	b, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("quiz: embedded defaults are invalid: %v", err))
	}
	return b
}

// Load loads the question pool.
// Search order: customPath -> ~/.neblox/configs/questions.yaml -> ./configs/questions.yaml -> embedded default.
func Load(customPath string) (*Bank, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("quiz: failed to read %s: %w", customPath, err)
		}
		return Parse(data)
	}

	for _, path := range config.SearchPaths("questions.yaml") {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if b, err := Parse(data); err == nil {
			return b, nil
		}
	}

	return Default(), nil
}
