package stage

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/neblox/internal/config"
)

//go:embed defaults/stages.yaml
var defaultYAML []byte

type file struct {
	Stages []Stage `yaml:"stages"`
}

// Load loads the stage list.
// Search order: customPath -> ~/.neblox/configs/stages.yaml -> ./configs/stages.yaml -> embedded default.
func Load(customPath string) ([]Stage, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("stage: failed to read %s: %w", customPath, err)
		}
		stages, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("stage: %s: %w", customPath, err)
		}
		return stages, nil
	}

	for _, path := range config.SearchPaths("stages.yaml") {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if stages, err := Parse(data); err == nil {
			return stages, nil
		}
	}

	return Default(), nil
}

// Default returns the embedded stage list.
func Default() []Stage {
	stages, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("stage: embedded defaults are invalid: %v", err))
	}
	return stages
}

// Parse decodes and validates a stage file.
func Parse(data []byte) ([]Stage, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse stages: %w", err)
	}
	if len(f.Stages) == 0 {
		return nil, errors.New("no stages defined")
	}

	seen := make(map[string]bool, len(f.Stages))
	var errs []error
	for _, s := range f.Stages {
		if err := s.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if seen[s.ID] {
			errs = append(errs, fmt.Errorf("duplicate stage id %q", s.ID))
		}
		seen[s.ID] = true
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return f.Stages, nil
}
