package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/microgames/internal/registry"
	"github.com/vovakirdan/microgames/internal/storage"
)

// Limits for GET /api/scores/:game.
const (
	defaultLimit = 10
	maxLimit     = 100
)

// TestMessage is returned by GET /api/test.
const TestMessage = "MicroGames API is running"

// GameResponse describes one game in GET /api/games.
type GameResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Best  int    `json:"best"`
}

// scoreRequest is the body of POST /api/scores/:game.
type scoreRequest struct {
	Score *int `json:"score" binding:"required"`
}

func (s *Server) handleTest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": TestMessage})
}

func (s *Server) handleGames(c *gin.Context) {
	best := map[string]int{}
	if s.store != nil {
		scores, err := s.store.BestScores()
		if err != nil {
			s.logger.Error("cannot load best scores", "error", err)
		} else {
			best = scores
		}
	}

	games := registry.List()
	out := make([]GameResponse, len(games))
	for i, g := range games {
		out[i] = GameResponse{ID: g.ID, Title: g.Title, Best: best[g.ID]}
	}
	c.JSON(http.StatusOK, gin.H{"games": out})
}

func (s *Server) handleTopScores(c *gin.Context) {
	gameID, ok := s.gameParam(c)
	if !ok {
		return
	}

	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			abortError(c, http.StatusBadRequest, fmt.Sprintf("invalid limit %q", raw))
			return
		}
		limit = min(n, maxLimit)
	}

	if !s.requireStore(c) {
		return
	}
	scores, err := s.store.TopScores(gameID, limit)
	if err != nil {
		s.logger.Error("cannot load scores", "game", gameID, "error", err)
		abortError(c, http.StatusInternalServerError, "cannot load scores")
		return
	}
	if scores == nil {
		scores = []storage.ScoreEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"game": gameID, "scores": scores})
}

func (s *Server) handleSaveScore(c *gin.Context) {
	gameID, ok := s.gameParam(c)
	if !ok {
		return
	}

	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "body must be {\"score\": <non-negative integer>}")
		return
	}
	if *req.Score < 0 {
		abortError(c, http.StatusBadRequest, "score must not be negative")
		return
	}

	if !s.requireStore(c) {
		return
	}
	entry, err := s.store.SaveScore(gameID, *req.Score)
	if err != nil {
		s.logger.Error("cannot save score", "game", gameID, "error", err)
		abortError(c, http.StatusInternalServerError, "cannot save score")
		return
	}

	best, err := s.store.HighScore(gameID)
	if err != nil {
		best = entry.Score
	}
	s.hub.PublishScore(gameID, entry.Score, max(best, entry.Score))

	c.JSON(http.StatusCreated, entry)
}

func (s *Server) handleStats(c *gin.Context) {
	if !s.requireStore(c) {
		return
	}
	stats, err := s.store.GetAllGamesStats()
	if err != nil {
		s.logger.Error("cannot load stats", "error", err)
		abortError(c, http.StatusInternalServerError, "cannot load stats")
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// gameParam resolves :game, answering 404 for unregistered IDs.
func (s *Server) gameParam(c *gin.Context) (string, bool) {
	id := c.Param("game")
	if !registry.Exists(id) {
		abortError(c, http.StatusNotFound, fmt.Sprintf("unknown game %q", id))
		return "", false
	}
	return id, true
}

// requireStore answers 503 when the server runs without storage.
func (s *Server) requireStore(c *gin.Context) bool {
	if s.store == nil {
		abortError(c, http.StatusServiceUnavailable, "score storage unavailable")
		return false
	}
	return true
}

func abortError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
