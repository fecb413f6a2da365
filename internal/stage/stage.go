// Package stage defines stage layouts and loads them from YAML.
// A stage is everything the door transition replaces: spawn point,
// platforms, enemy patrols, key and door.
package stage

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/neblox/internal/core"
)

// Point is a position in world units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Box is a rectangle in world units as written in stage files.
type Box struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// AABB converts the box to a collision shape.
func (b Box) AABB() core.AABB {
	return core.Box(b.X, b.Y, b.W, b.H)
}

// Patrol is the initial state of one enemy.
type Patrol struct {
	Box   `yaml:",inline"`
	Dir   int     `yaml:"dir"`
	Speed float64 `yaml:"speed"`
	MinX  float64 `yaml:"min_x"`
	MaxX  float64 `yaml:"max_x"`
}

// Stage is one complete layout.
type Stage struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Spawn     Point    `yaml:"spawn"`
	Respawn   *Point   `yaml:"respawn,omitempty"` // defaults to Spawn
	Platforms []Box    `yaml:"platforms"`
	Enemies   []Patrol `yaml:"enemies"`
	Key       Box      `yaml:"key"`
	Door      Box      `yaml:"door"`
}

// RespawnPoint is where the player reappears after losing a life.
func (s Stage) RespawnPoint() Point {
	if s.Respawn != nil {
		return *s.Respawn
	}
	return s.Spawn
}

// Validate checks the stage for layouts the simulation cannot run.
func (s Stage) Validate() error {
	var errs []error
	if s.ID == "" {
		errs = append(errs, errors.New("missing id"))
	}
	if len(s.Platforms) == 0 {
		errs = append(errs, errors.New("no platforms"))
	}
	for i, p := range s.Platforms {
		if p.W <= 0 || p.H <= 0 {
			errs = append(errs, fmt.Errorf("platform %d: size must be positive", i))
		}
	}
	for i, e := range s.Enemies {
		if e.W <= 0 || e.H <= 0 {
			errs = append(errs, fmt.Errorf("enemy %d: size must be positive", i))
		}
		if e.Dir != 1 && e.Dir != -1 {
			errs = append(errs, fmt.Errorf("enemy %d: dir must be 1 or -1, got %d", i, e.Dir))
		}
		if e.Speed <= 0 {
			errs = append(errs, fmt.Errorf("enemy %d: speed must be positive", i))
		}
		if e.MinX > e.MaxX {
			errs = append(errs, fmt.Errorf("enemy %d: min_x %.1f > max_x %.1f", i, e.MinX, e.MaxX))
		}
	}
	if s.Key.W <= 0 || s.Key.H <= 0 {
		errs = append(errs, errors.New("key size must be positive"))
	}
	if s.Door.W <= 0 || s.Door.H <= 0 {
		errs = append(errs, errors.New("door size must be positive"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("stage %q: %w", s.ID, err)
	}
	return nil
}
