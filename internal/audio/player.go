// Package audio plays short synthesized sound effects for game events.
package audio

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/microgames/internal/core"
)

// SampleRate is the output rate of the speaker.
const SampleRate = beep.SampleRate(44100)

// ErrNoSpeaker is returned by Start in builds without the sound tag.
var ErrNoSpeaker = errors.New("audio: built without speaker support (rebuild with -tags sound)")

// Player mixes event sounds into the speaker. The zero value is not
// usable; create one with New.
type Player struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	volume  float64
	mixer   *beep.Mixer
	started bool
	logger  *log.Logger

	// add hands a streamer to the output. It is replaced in tests.
	add func(beep.Streamer)
}

// New creates a player with master volume in [0, 1].
func New(volume float64) *Player {
	p := &Player{
		rate:   SampleRate,
		volume: max(min(volume, 1), 0),
		mixer:  &beep.Mixer{},
		logger: log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "arcade-audio",
		}),
	}
	p.add = p.addToSpeaker
	return p
}

// Start opens the speaker. Until it succeeds Play is a no-op.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := openSpeaker(p.rate, p.rate.N(100*time.Millisecond), p.mixer); err != nil {
		if errors.Is(err, ErrNoSpeaker) {
			return err
		}
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	p.started = true
	p.logger.Debug("speaker ready", "rate", int(p.rate))
	return nil
}

// Play queues one sound per distinct event kind in events.
func (p *Player) Play(events []core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	seen := make(map[core.EventKind]bool, len(events))
	for _, ev := range events {
		if seen[ev.Kind] {
			continue
		}
		seen[ev.Kind] = true
		if fx, ok := Effects[ev.Kind]; ok {
			p.add(fx.Streamer(p.rate, p.volume))
		}
	}
}

func (p *Player) addToSpeaker(s beep.Streamer) {
	lockSpeaker()
	p.mixer.Add(s)
	unlockSpeaker()
}

// Close silences and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	lockSpeaker()
	p.mixer.Clear()
	unlockSpeaker()
	closeSpeaker()
	p.started = false
}
