//go:build !sound

package audio

import (
	"errors"
	"testing"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/microgames/internal/core"
)

func TestStartWithoutSpeaker(t *testing.T) {
	p := New(0.5)
	var queued int
	p.add = func(beep.Streamer) { queued++ }

	if err := p.Start(); !errors.Is(err, ErrNoSpeaker) {
		t.Errorf("Start() error = %v, expected %v", err, ErrNoSpeaker)
	}
	p.Play([]core.Event{{Kind: core.EventPowerUp}})
	if queued != 0 {
		t.Errorf("queued = %d, expected 0 without a speaker", queued)
	}
	p.Close()
}
