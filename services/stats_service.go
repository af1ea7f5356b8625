package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mindevis/stitch-cafe/game"
	"github.com/mindevis/stitch-cafe/models"
	"github.com/mindevis/stitch-cafe/repositories"
	"github.com/mindevis/stitch-cafe/userctx"
)

// StatsService interface defines player statistics and admin operations
type StatsService interface {
	FullStats(ctx context.Context) ([]models.PlayerStats, error)
	Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
	PlayerCount(ctx context.Context) (int, error)
	Reset(ctx context.Context) error
}

// statsService implements StatsService interface
type statsService struct {
	users  repositories.UserRepository
	audit  repositories.AuditRepository
	logger *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(users repositories.UserRepository, audit repositories.AuditRepository, logger *zap.Logger) StatsService {
	return &statsService{users: users, audit: audit, logger: logger}
}

// FullStats returns every player with their event progress, best first
func (s *statsService) FullStats(ctx context.Context) ([]models.PlayerStats, error) {
	users, err := s.users.AllByOrders(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]models.PlayerStats, len(users))
	for i, u := range users {
		stats[i] = models.PlayerStats{
			UserID:      u.ID,
			FirstName:   u.FirstName,
			Level:       u.Level,
			TotalOrders: u.TotalOrders,
			Flags:       u.Flags,
		}
	}
	return stats, nil
}

// Leaderboard returns the best players, most orders first
func (s *statsService) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("invalid leaderboard limit: %d", limit)
	}

	users, err := s.users.TopByOrders(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, len(users))
	for i, u := range users {
		entries[i] = models.LeaderboardEntry{
			Rank:        i + 1,
			UserID:      u.ID,
			FirstName:   u.FirstName,
			Level:       u.Level,
			LevelTitle:  game.TitleFor(u.Level),
			TotalOrders: u.TotalOrders,
		}
	}
	return entries, nil
}

// PlayerCount returns the number of registered players
func (s *statsService) PlayerCount(ctx context.Context) (int, error) {
	return s.users.Count(ctx)
}

// Reset wipes the player database. The action is recorded in the audit log
// with the acting admin from the context.
func (s *statsService) Reset(ctx context.Context) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return err
	}

	if err := s.users.ResetAll(ctx); err != nil {
		return err
	}

	actor := userctx.ActorLabel(ctx)
	entry := &models.AuditLogEntry{
		Actor:  actor,
		Action: "reset",
		Detail: fmt.Sprintf("wiped %d players", count),
	}
	if err := s.audit.Create(ctx, entry); err != nil {
		s.logger.Warn("failed to write audit entry", zap.Error(err))
	}

	s.logger.Warn("player database wiped",
		zap.String("actor", actor),
		zap.Int("players", count))

	return nil
}
