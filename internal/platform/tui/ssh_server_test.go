package tui

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/microgames/internal/storage"
)

func TestSSHServerShutdownStore(t *testing.T) {
	dir := t.TempDir()
	shared, err := storage.Open(filepath.Join(dir, "shared.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { shared.Close() })

	tests := []struct {
		name       string
		store      *storage.Store
		expectOpen bool
	}{
		{"shared store stays open", shared, true},
		{"owned store is closed", nil, false},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSSHServerConfig()
			cfg.Address = "127.0.0.1:0"
			cfg.HostKeyPath = filepath.Join(dir, "host_key")
			cfg.DBPath = filepath.Join(dir, "owned.db")
			cfg.Store = tt.store

			srv, err := NewSSHServer(cfg)
			if err != nil {
				t.Fatalf("NewSSHServer() error = %v", err)
			}
			store := srv.store
			if store == nil {
				t.Fatalf("case %d: server has no store", i)
			}
			if srv.services().Logger != srv.logger {
				t.Error("services() should carry the server logger")
			}

			if err := srv.Shutdown(); err != nil {
				t.Errorf("Shutdown() error = %v", err)
			}

			_, err = store.HighScore("snake")
			if got := err == nil; got != tt.expectOpen {
				t.Errorf("HighScore() after Shutdown() error = %v, expected open = %v", err, tt.expectOpen)
			}
			if srv.ownsStore {
				t.Error("ownsStore = true after Shutdown()")
			}
		})
	}
}
