package controllers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mindevis/stitch-cafe/services"
)

// StatusController serves the read-only HTTP status surface of the bot
type StatusController struct {
	stats  services.StatsService
	logger *zap.Logger
}

// NewStatusController creates a new status controller
func NewStatusController(stats services.StatsService) *StatusController {
	return &StatusController{stats: stats, logger: zap.NewNop()}
}

// WithLogger attaches a logger to the controller
func (c *StatusController) WithLogger(logger *zap.Logger) *StatusController {
	c.logger = logger
	return c
}

// Healthz reports service health and the registered player count
func (c *StatusController) Healthz(w http.ResponseWriter, r *http.Request) {
	count, err := c.stats.PlayerCount(r.Context())
	if err != nil {
		c.logger.Error("health check failed", zap.Error(err))
		respondError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"players": count,
	})
}

// Top returns the top-10 leaderboard
func (c *StatusController) Top(w http.ResponseWriter, r *http.Request) {
	entries, err := c.stats.Leaderboard(r.Context(), 10)
	if err != nil {
		c.logger.Error("failed to build leaderboard", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to build leaderboard")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"leaderboard": entries,
	})
}

// Stats returns the full per-player statistics, including event progress
func (c *StatusController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.stats.FullStats(r.Context())
	if err != nil {
		c.logger.Error("failed to build stats", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to build stats")
		return
	}

	players := make([]map[string]interface{}, len(stats))
	for i, row := range stats {
		players[i] = map[string]interface{}{
			"user_id":      row.UserID,
			"first_name":   row.FirstName,
			"level":        row.Level,
			"total_orders": row.TotalOrders,
			"events": map[string]bool{
				"student":     row.Flags.Student,
				"critic":      row.Flags.Critic,
				"dirty_plate": row.Flags.DirtyPlate,
				"second_chef": row.Flags.SecondChef,
			},
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"players": players,
	})
}
