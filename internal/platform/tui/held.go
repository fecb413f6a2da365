package tui

import (
	"time"

	"github.com/vovakirdan/neblox/internal/config"
	"github.com/vovakirdan/neblox/internal/core"
)

// HeldKeys emulates key-up events, which terminals do not report.
//
// A press holds its action for a window. The first press gets a longer
// window that covers the delay before the terminal's auto-repeat starts;
// every repeat after that extends the hold by a short window, so releasing
// the key stops the player within a few frames.
type HeldKeys struct {
	hold       time.Duration
	firstHold  time.Duration
	jumpBuffer time.Duration
	until      map[core.Action]time.Time
}

// NewHeldKeys creates an empty set using the configured windows.
func NewHeldKeys(cfg config.Input) *HeldKeys {
	return &HeldKeys{
		hold:       time.Duration(cfg.HoldMS) * time.Millisecond,
		firstHold:  time.Duration(cfg.FirstHoldMS) * time.Millisecond,
		jumpBuffer: time.Duration(cfg.JumpBufferMS) * time.Millisecond,
		until:      make(map[core.Action]time.Time),
	}
}

// Press records a key press at now. Non-movement actions are ignored.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionJump:
		h.until[a] = now.Add(h.jumpBuffer)
		return
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	default:
		return
	}

	if until, ok := h.until[a]; ok && until.After(now) {
		ext := now.Add(h.hold)
		if ext.After(until) {
			h.until[a] = ext
		}
		return
	}
	h.until[a] = now.Add(h.firstHold)
}

// Frame returns the actions still held at now and forgets expired ones.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, until := range h.until {
		if until.After(now) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	return frame
}

// Clear drops every hold, e.g. when a prompt takes the keyboard.
func (h *HeldKeys) Clear() {
	clear(h.until)
}
