package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/microgames/internal/core"
)

// Note is one pitch of a sound effect.
type Note struct {
	Freq float64
	Dur  time.Duration
}

// Effect is the sound played for an event kind.
type Effect struct {
	Wave  Wave
	Notes []Note
	Gain  float64
}

const ms = time.Millisecond

// Effects maps event kinds to sound effects. Kinds without an entry are
// silent.
var Effects = map[core.EventKind]Effect{
	core.EventStart:      {WaveSine, []Note{{660, 80 * ms}}, 0.5},
	core.EventBounce:     {WaveSquare, []Note{{440, 40 * ms}}, 0.25},
	core.EventPaddleHit:  {WaveSquare, []Note{{660, 50 * ms}}, 0.3},
	core.EventBrickBreak: {WaveSquare, []Note{{880, 60 * ms}}, 0.3},
	core.EventPoint:      {WaveSine, []Note{{523, 150 * ms}}, 0.5},
	core.EventFood:       {WaveSine, []Note{{1046, 60 * ms}}, 0.4},
	core.EventPieceLock:  {WaveSquare, []Note{{220, 40 * ms}}, 0.25},
	core.EventLineClear:  {WaveSine, []Note{{659, 80 * ms}, {988, 80 * ms}}, 0.5},
	core.EventPowerUp:    {WaveSine, []Note{{523, 60 * ms}, {784, 60 * ms}, {1046, 60 * ms}}, 0.5},
	core.EventLifeLost:   {WaveSaw, []Note{{330, 120 * ms}, {220, 160 * ms}}, 0.4},
	core.EventLevelUp:    {WaveSine, []Note{{523, 80 * ms}, {659, 80 * ms}, {784, 120 * ms}}, 0.5},
	core.EventGameOver:   {WaveSaw, []Note{{392, 150 * ms}, {262, 150 * ms}, {196, 300 * ms}}, 0.4},
	core.EventWin:        {WaveSine, []Note{{523, 100 * ms}, {659, 100 * ms}, {784, 100 * ms}, {1046, 250 * ms}}, 0.5},
}

// Duration returns the total length of the effect.
func (e Effect) Duration() time.Duration {
	var d time.Duration
	for _, n := range e.Notes {
		d += n.Dur
	}
	return d
}

// Streamer renders the effect at rate, scaled by master volume.
func (e Effect) Streamer(rate beep.SampleRate, master float64) beep.Streamer {
	parts := make([]beep.Streamer, len(e.Notes))
	for i, n := range e.Notes {
		parts[i] = newFade(newTone(n.Freq, n.Dur, e.Wave, rate), n.Dur, 5*ms, rate)
	}
	return withVolume(beep.Seq(parts...), e.Gain*master)
}
