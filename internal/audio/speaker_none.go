//go:build !sound

package audio

import "github.com/gopxl/beep"

func openSpeaker(beep.SampleRate, int, beep.Streamer) error {
	return ErrNoSpeaker
}

func lockSpeaker()   {}
func unlockSpeaker() {}
func closeSpeaker()  {}
