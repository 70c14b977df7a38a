package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mythictome/mythic-tome/internal/clients/gamemaster"
	"github.com/mythictome/mythic-tome/internal/config"
	"github.com/mythictome/mythic-tome/internal/handlers/api"
	"github.com/mythictome/mythic-tome/internal/repositories/campaigns"
	"github.com/mythictome/mythic-tome/internal/services/game"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load .env file
	if err := godotenv.Load(); err == nil {
		log.Info().Msg("loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if level, parseErr := zerolog.ParseLevel(cfg.LogLevel); parseErr == nil {
		log = log.Level(level)
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	var repository campaigns.Repository
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if pingErr := redisClient.Ping(pingCtx).Err(); pingErr != nil {
			cancel()
			log.Warn().Err(pingErr).Str("addr", cfg.Redis.Addr).
				Msg("failed to connect to Redis, falling back to in-memory storage")
			redisClient = nil
		} else {
			cancel()
			log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")
			repository = campaigns.NewRedisRepository(&campaigns.RedisRepoConfig{
				Client: redisClient,
			})
		}
	}
	if repository == nil {
		repository = campaigns.NewInMemory()
		log.Info().Msg("using in-memory storage, campaigns will not survive a restart")
	}

	engine, err := gamemaster.New(&gamemaster.Config{
		APIKey:     cfg.Engine.APIKey,
		BaseURL:    cfg.Engine.BaseURL,
		Model:      cfg.Engine.Model,
		Timeout:    cfg.Engine.Timeout,
		MaxRetries: cfg.Engine.MaxRetries,
		Logger:     log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create narration engine client")
	}

	service, err := game.New(&game.Config{
		Repository: repository,
		Engine:     engine,
		Logger:     log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game service")
	}

	handler, err := api.New(&api.Config{
		Service: service,
		Logger:  log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create API handler")
	}

	router := api.NewRouter(log, cfg.Server.AllowedOrigins)
	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server listening")
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			log.Fatal().Err(serveErr).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("error closing Redis connection")
		}
	}
}
