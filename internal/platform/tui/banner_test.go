package tui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchBanner(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
		prefix  bool
	}{
		{
			name: "message",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/test" {
					http.NotFound(w, r)
					return
				}
				w.Write([]byte(`{"message":"MicroGames API is running"}`))
			},
			want: "MicroGames API is running",
		},
		{
			name: "empty message",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(`{}`))
			},
			want: BannerNoMessage,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			want:   BannerFailed,
			prefix: true,
		},
		{
			name: "bad json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(`not json`))
			},
			want: BannerFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			got := fetchBanner(srv.Client(), srv.URL+"/")
			if tt.prefix {
				if !strings.HasPrefix(got, tt.want) {
					t.Errorf("fetchBanner() = %q, expected prefix %q", got, tt.want)
				}
				return
			}
			if got != tt.want {
				t.Errorf("fetchBanner() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestFetchBannerNotConfigured(t *testing.T) {
	if got := fetchBanner(nil, "  "); got != BannerNotConfigured {
		t.Errorf("fetchBanner() = %q, expected %q", got, BannerNotConfigured)
	}
}

func TestFetchBannerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if got := fetchBanner(nil, url); got != BannerFailed {
		t.Errorf("fetchBanner() = %q, expected %q", got, BannerFailed)
	}
}

func TestCheckBackendMsg(t *testing.T) {
	msg := checkBackend(nil, "")()
	bm, ok := msg.(bannerMsg)
	if !ok {
		t.Fatalf("checkBackend() returned %T, expected bannerMsg", msg)
	}
	if bm.text != BannerNotConfigured {
		t.Errorf("text = %q, expected %q", bm.text, BannerNotConfigured)
	}
}
