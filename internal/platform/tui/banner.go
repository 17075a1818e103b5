package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Banner texts shown above the game list.
const (
	BannerConnecting    = "Connecting to backend..."
	BannerNotConfigured = "Backend API URL not configured."
	BannerNoMessage     = "Connected, but no message received."
	BannerFailed        = "Failed to connect to backend. Is the API server running?"
)

const bannerTimeout = 3 * time.Second

// bannerMsg carries the result of the backend check.
type bannerMsg struct {
	text string
}

// checkBackend returns a command that fetches baseURL/api/test once.
func checkBackend(client *http.Client, baseURL string) tea.Cmd {
	return func() tea.Msg {
		return bannerMsg{text: fetchBanner(client, baseURL)}
	}
}

// fetchBanner resolves the banner text for baseURL.
func fetchBanner(client *http.Client, baseURL string) string {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return BannerNotConfigured
	}
	if client == nil {
		client = http.DefaultClient
	}

	ctx, cancel := context.WithTimeout(context.Background(), bannerTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/test", http.NoBody)
	if err != nil {
		return BannerFailed
	}
	resp, err := client.Do(req)
	if err != nil {
		return BannerFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Sprintf("%s (HTTP %d)", BannerFailed, resp.StatusCode)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return BannerFailed
	}
	if body.Message == "" {
		return BannerNoMessage
	}
	return body.Message
}
