//go:build sound

package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Built with -tags sound: the speaker is beep's oto backend, which needs
// cgo and ALSA headers on Linux.

func openSpeaker(rate beep.SampleRate, bufferSize int, s beep.Streamer) error {
	if err := speaker.Init(rate, bufferSize); err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}

func lockSpeaker()   { speaker.Lock() }
func unlockSpeaker() { speaker.Unlock() }
func closeSpeaker()  { speaker.Close() }
