package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mindevis/stitch-cafe/bot"
	"github.com/mindevis/stitch-cafe/config"
	"github.com/mindevis/stitch-cafe/controllers"
	"github.com/mindevis/stitch-cafe/database"
	"github.com/mindevis/stitch-cafe/game"
	"github.com/mindevis/stitch-cafe/logging"
	appmiddleware "github.com/mindevis/stitch-cafe/middleware"
	"github.com/mindevis/stitch-cafe/repositories"
	"github.com/mindevis/stitch-cafe/services"
)

func main() {
	// .env is optional; in containers the environment comes from the runtime
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogDir)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database
	if err := database.InitializeDatabase(cfg.DBPath); err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer database.CloseDB()

	db := database.GetDB()
	logger.Info("database initialized", zap.String("path", cfg.DBPath))

	// Initialize repositories, services and controllers
	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(repos, game.NewGenerator(), logger)
	ctrl := controllers.NewControllers(srvs)
	ctrl.Status.WithLogger(logger)

	// Connect to Telegram
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logger.Fatal("failed to connect to Telegram", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Status server
	server := &http.Server{
		Addr:    cfg.StatusAddr,
		Handler: setupRouter(ctrl, repos, cfg, logger),
	}
	go func() {
		logger.Info("status server listening", zap.String("addr", cfg.StatusAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("status server failed", zap.Error(err))
			stop()
		}
	}()

	// Telegram polling loop, blocks until the context is cancelled
	cafe := bot.New(api, cfg, srvs, logger)
	if err := cafe.Run(ctx); err != nil {
		logger.Error("bot stopped with error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("status server shutdown failed", zap.Error(err))
	}

	logger.Info("shutdown complete")
}

// setupRouter configures the status server routes
func setupRouter(ctrl *controllers.Controllers, repos *repositories.Repositories, cfg *config.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(appmiddleware.AuditLogger(repos.Audit, logger))

	r.Get("/healthz", ctrl.Status.Healthz)
	r.Get("/api/top", ctrl.Status.Top)

	// Full stats expose player IDs, keep them behind the token
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.RequireToken(cfg.StatusToken))
		r.Get("/api/stats", ctrl.Status.Stats)
	})

	return r
}
