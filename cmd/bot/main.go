package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ravitejak/legal-assist-bot/internal/ai"
	"github.com/ravitejak/legal-assist-bot/internal/bot"
	"github.com/ravitejak/legal-assist-bot/internal/flow"
	"github.com/ravitejak/legal-assist-bot/internal/pdf"
	"github.com/ravitejak/legal-assist-bot/internal/places"
	"github.com/ravitejak/legal-assist-bot/internal/session"
	"github.com/ravitejak/legal-assist-bot/internal/storage"
	"github.com/ravitejak/legal-assist-bot/pkg/config"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	ctx := context.Background()

	// Initialize complaint archive
	var archive storage.Storage
	if cfg.Database.UseInMemory {
		logger.Info("Using in-memory complaint archive")
		archive = storage.NewMemoryStorage()
	} else {
		logger.Info("Using PostgreSQL complaint archive")
		dbConfig := storage.DatabaseConfig{
			Host:        cfg.Database.Host,
			Port:        cfg.Database.Port,
			User:        cfg.Database.User,
			Password:    cfg.Database.Password,
			DBName:      cfg.Database.DBName,
			SSLMode:     cfg.Database.SSLMode,
			UseInMemory: cfg.Database.UseInMemory,
		}
		archive, err = storage.NewPostgresStorage(dbConfig, logger)
		if err != nil {
			logger.Fatal("Failed to initialize storage", zap.Error(err))
		}
	}
	defer archive.Close()

	// Initialize AI generator
	gen, err := newGenerator(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize AI generator", zap.Error(err))
	}
	defer gen.Close()

	// Initialize places client (optional)
	var placesClient *places.Client
	if cfg.Maps.APIKey != "" {
		placesClient, err = places.NewClient(cfg.Maps.APIKey, cfg.Maps.RadiusMeters, logger)
		if err != nil {
			logger.Fatal("Failed to initialize maps client", zap.Error(err))
		}
	} else {
		logger.Info("No maps API key configured, location lookups use the static station table")
	}

	// Initialize conversation engine
	sessions := session.NewStore(time.Duration(cfg.Session.TTLMinutes) * time.Minute)
	renderer := pdf.NewRenderer(cfg.PDF.OutputDir)
	engine := flow.NewEngine(sessions, gen, renderer, archive, logger)

	// Initialize bot
	b, err := bot.New(cfg.Telegram.Token, engine, sessions, gen, placesClient, archive, logger)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	// Start the bot
	if err := b.Start(); err != nil {
		logger.Fatal("Bot error", zap.Error(err))
	}
}

func newGenerator(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ai.Generator, error) {
	switch cfg.AI.Provider {
	case "gemini":
		return ai.NewGeminiGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model,
			cfg.Gemini.MaxTokens, cfg.Gemini.Temperature, logger)
	case "openai":
		return ai.NewOpenAIGenerator(cfg.OpenAI.APIKey, cfg.OpenAI.Model,
			cfg.OpenAI.MaxTokens, cfg.OpenAI.Temperature, logger), nil
	default:
		return nil, fmt.Errorf("unknown ai provider: %q", cfg.AI.Provider)
	}
}
