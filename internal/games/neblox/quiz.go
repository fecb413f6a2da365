package neblox

import (
	"github.com/vovakirdan/neblox/internal/core"
	"github.com/vovakirdan/neblox/internal/quiz"
)

// touchKey opens the quiz gate when the player reaches an untaken key.
// After a failed attempt the gate stays closed until the player steps
// off the key. It reports whether the gate opened.
func (g *Game) touchKey() bool {
	if g.key.Taken {
		return false
	}

	if !g.player.Box.Overlaps(g.key.Box) {
		g.gateArmed = true
		return false
	}
	if !g.gateArmed || g.pending != nil {
		return false
	}

	q := g.bank.Draw(g.rng)
	g.pending = &q
	g.gateArmed = false
	g.phase = PhaseAwaitingAnswer
	g.emit(Event{Kind: EventQuizOpened, Question: q.Text})
	return true
}

// Pending returns the question waiting for an answer, if any.
func (g *Game) Pending() (quiz.Question, bool) {
	if g.pending == nil {
		return quiz.Question{}, false
	}
	return *g.pending, true
}

// SubmitAnswer resolves the pending question and resumes play. A correct
// answer takes the key; a wrong one leaves it in place. It is a no-op
// unless a question is pending.
func (g *Game) SubmitAnswer(answer string) StepResult {
	g.events = nil
	if g.phase != PhaseAwaitingAnswer || g.pending == nil {
		return g.flush()
	}

	q := *g.pending
	g.pending = nil
	g.phase = PhaseRunning

	if !q.Accepts(answer) {
		g.emit(Event{Kind: EventQuizFailed, Question: q.Text})
		return g.flush()
	}

	g.key.Taken = true
	g.hasKey = true
	g.addScore(g.cfg.Scoring.Key)
	g.emit(Event{Kind: EventSound, Cue: core.CuePickup})
	g.emit(Event{Kind: EventQuizPassed, Question: q.Text})
	return g.flush()
}

// CancelQuiz dismisses the pending question. It counts as a failed attempt.
func (g *Game) CancelQuiz() StepResult {
	g.events = nil
	if g.phase != PhaseAwaitingAnswer || g.pending == nil {
		return g.flush()
	}

	q := *g.pending
	g.pending = nil
	g.phase = PhaseRunning
	g.emit(Event{Kind: EventQuizFailed, Question: q.Text})
	return g.flush()
}
