package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/neblox/internal/core"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sweep is a sine whose frequency glides linearly from `from` to `to`.
type sweep struct {
	from, to float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewSweep creates a finite frequency glide.
func NewSweep(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, duration: rate.N(duration), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}
		progress := float64(s.position) / float64(s.duration)
		freq := s.from + (s.to-s.from)*progress

		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. math.Log2(0) is -Inf, so zero means silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Cue timings
const (
	pickupNote1   = 90 * time.Millisecond
	pickupNote2   = 180 * time.Millisecond
	pickupAttack  = 5 * time.Millisecond
	pickupRelease = 120 * time.Millisecond

	stompDuration = 120 * time.Millisecond
	stompAttack   = 2 * time.Millisecond
	stompRelease  = 80 * time.Millisecond

	hitDuration = 260 * time.Millisecond
	hitAttack   = 5 * time.Millisecond
	hitRelease  = 180 * time.Millisecond

	musicNote    = 200 * time.Millisecond
	musicAttack  = 10 * time.Millisecond
	musicRelease = 90 * time.Millisecond
	musicLevel   = 0.35
)

// pickupSound is a rising two-note chime (B5, E6).
func pickupSound(rate beep.SampleRate, vol float64) beep.Streamer {
	n1 := NewEnvelope(NewOscillator(987.77, pickupNote1, WaveSquare, rate), pickupNote1, pickupAttack, pickupNote1/2, rate)
	n2 := NewEnvelope(NewOscillator(1318.51, pickupNote2, WaveSquare, rate), pickupNote2, pickupAttack, pickupRelease, rate)
	return newVolume(beep.Seq(n1, n2), vol*0.5)
}

// stompSound is a short downward boing over a noise click.
func stompSound(rate beep.SampleRate, vol float64) beep.Streamer {
	boing := NewEnvelope(NewSweep(520, 180, stompDuration, rate), stompDuration, stompAttack, stompRelease, rate)
	click := NewEnvelope(NewOscillator(0, stompDuration/4, WaveNoise, rate), stompDuration/4, stompAttack, stompDuration/8, rate)
	return newVolume(beep.Mix(newVolume(boing, 0.8), newVolume(click, 0.2)), vol)
}

// hitSound is a low harsh buzz.
func hitSound(rate beep.SampleRate, vol float64) beep.Streamer {
	buzz := NewEnvelope(NewOscillator(100, hitDuration, WaveSaw, rate), hitDuration, hitAttack, hitRelease, rate)
	return newVolume(buzz, vol*0.6)
}

// CueSound returns a fresh streamer for cue, or nil for an unknown cue.
func CueSound(cue core.Cue, rate beep.SampleRate, vol float64) beep.Streamer {
	switch cue {
	case core.CuePickup:
		return pickupSound(rate, vol)
	case core.CueStomp:
		return stompSound(rate, vol)
	case core.CueHit:
		return hitSound(rate, vol)
	default:
		return nil
	}
}

// melody is one phrase of the background loop, in Hz (C major pentatonic).
var melody = []float64{
	523.25, 587.33, 659.25, 783.99, 659.25, 587.33, 523.25, 440.00,
	392.00, 440.00, 523.25, 587.33, 659.25, 587.33, 523.25, 523.25,
}

// musicPhrase plays the melody once.
func musicPhrase(rate beep.SampleRate, vol float64) beep.Streamer {
	notes := make([]beep.Streamer, len(melody))
	for i, f := range melody {
		notes[i] = NewEnvelope(NewOscillator(f, musicNote, WaveSine, rate), musicNote, musicAttack, musicRelease, rate)
	}
	return newVolume(beep.Seq(notes...), vol*musicLevel)
}

// MusicLoop repeats the melody forever.
func MusicLoop(rate beep.SampleRate, vol float64) beep.Streamer {
	return beep.Iterate(func() beep.Streamer {
		return musicPhrase(rate, vol)
	})
}
