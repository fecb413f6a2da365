package core

// Cue names a sound the simulation asks for. Playback is up to the
// platform; a muted or missing sink changes nothing in the game.
type Cue string

const (
	CuePickup Cue = "pickup"
	CueStomp  Cue = "stomp"
	CueHit    Cue = "hit"
)
