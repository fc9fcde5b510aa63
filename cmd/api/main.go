package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"kazileo/config"
	waDelivery "kazileo/internal/dialogue/delivery/whatsapp"
	"kazileo/internal/dialogue/usecase"
	"kazileo/internal/httpserver"
	"kazileo/internal/provider"
	"kazileo/internal/session"
	sessionRepo "kazileo/internal/session/repository/postgre"
	"kazileo/pkg/gemini"
	"kazileo/pkg/log"
	"kazileo/pkg/whatsapp"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting KaziLeo...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Session store (Postgres)
	db, err := sql.Open("pgx", cfg.Postgres.URL)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database: %v", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to ping database: %v", err)
	}

	store := session.New(logger, sessionRepo.New(db, logger), cfg.Session.Timeout)

	// 4. Providers and AI collaborator
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	if cfg.Gemini.Model != "" {
		geminiClient.SetModel(cfg.Gemini.Model)
	}

	dialogueUC := usecase.New(
		logger,
		store,
		provider.NewJobs(),
		provider.NewTraining(),
		provider.NewMentorship(),
		provider.NewBusiness(),
		geminiClient,
		cfg.Gemini.Timeout,
	)

	// 5. WhatsApp delivery
	waClient := whatsapp.NewClient(cfg.WhatsApp.Token, cfg.WhatsApp.PhoneID)
	validator := waDelivery.NewSecurityValidator(waDelivery.SecurityConfig{
		AppSecret:       cfg.WhatsApp.AppSecret,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
	})
	waHandler := waDelivery.New(logger, dialogueUC, waClient, validator, cfg.WhatsApp.VerifyToken)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		WhatsAppHandler: waHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
