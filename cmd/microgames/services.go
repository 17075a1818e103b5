package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/microgames/internal/audio"
	"github.com/vovakirdan/microgames/internal/core"
	"github.com/vovakirdan/microgames/internal/platform/tui"
	"github.com/vovakirdan/microgames/internal/storage"
)

// openServices opens the score store and, with --sound, the speaker.
// Both are optional: failures print a warning and play continues.
// The returned func releases what was opened, then prints whatever the
// game logged while it owned the terminal.
func openServices() (tui.Services, func()) {
	var logs bytes.Buffer
	svc := tui.Services{
		APIURL: os.Getenv("ARCADE_API_URL"),
		Logger: log.NewWithOptions(&logs, log.Options{
			ReportTimestamp: true,
			Prefix:          "arcade",
		}),
	}
	closers := []func(){func() {
		//nolint:errcheck // Nothing left to report to
		os.Stderr.Write(logs.Bytes())
	}}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	} else {
		svc.Store = store
		closers = append(closers, func() { store.Close() })
	}

	if flagSound {
		player := audio.New(0.6)
		if err := player.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		} else {
			svc.Sound = player
			closers = append(closers, player.Close)
		}
	}

	return svc, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
