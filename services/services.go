package services

import (
	"go.uber.org/zap"

	"github.com/mindevis/stitch-cafe/game"
	"github.com/mindevis/stitch-cafe/repositories"
)

// Services holds all service instances
type Services struct {
	Game  GameService
	Stats StatsService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, gen *game.Generator, logger *zap.Logger) *Services {
	return &Services{
		Game:  NewGameService(repos.Users, gen, logger),
		Stats: NewStatsService(repos.Users, repos.Audit, logger),
	}
}
