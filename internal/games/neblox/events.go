package neblox

import "github.com/vovakirdan/neblox/internal/core"

// EventKind identifies a side effect produced by a tick or a quiz answer.
type EventKind int

const (
	EventScore        EventKind = iota // Delta points were added
	EventLifeLost                      // Lives is the count left
	EventSound                         // Cue should be played
	EventQuizOpened                    // Question is waiting for an answer
	EventQuizPassed                    // key granted
	EventQuizFailed                    // wrong answer or cancel
	EventStageCleared                  // Stage was completed, Next is loaded
	EventGameOver                      // Score is final
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventScore:
		return "score"
	case EventLifeLost:
		return "life_lost"
	case EventSound:
		return "sound"
	case EventQuizOpened:
		return "quiz_opened"
	case EventQuizPassed:
		return "quiz_passed"
	case EventQuizFailed:
		return "quiz_failed"
	case EventStageCleared:
		return "stage_cleared"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is one side effect. Only the fields relevant to Kind are set.
type Event struct {
	Kind     EventKind
	Delta    int
	Lives    int
	Cue      core.Cue
	Question string
	Stage    int // 1-based stage that was cleared
	Next     int // 1-based stage now loaded
	Score    int
}

// StepResult is what every state-changing call returns.
type StepResult struct {
	HUD    HUD
	Events []Event
}

// Has reports whether the result contains an event of the given kind.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Cues returns the sound cues in the result, in order.
func (r StepResult) Cues() []core.Cue {
	var cues []core.Cue
	for _, e := range r.Events {
		if e.Kind == EventSound {
			cues = append(cues, e.Cue)
		}
	}
	return cues
}
