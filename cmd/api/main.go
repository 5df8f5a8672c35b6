package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/botovelho/barbearia-api/internal/cache"
	"github.com/botovelho/barbearia-api/internal/config"
	"github.com/botovelho/barbearia-api/internal/middleware"
	"github.com/botovelho/barbearia-api/internal/routes"
	"github.com/botovelho/barbearia-api/internal/store"
)

func main() {

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Logger()

	_ = godotenv.Load()
	cfg := config.Load()

	st, err := store.New(cfg.DataFile, cfg.AdminPassword, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open data file")
	}

	availabilityCache := cache.New(
		cfg.RedisAddr,
		cfg.RedisPassword,
		time.Duration(cfg.CacheTTLSec)*time.Second,
		logger,
	)
	if availabilityCache.Enabled() {
		logger.Info().Str("addr", cfg.RedisAddr).Msg("availability cache enabled")
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, st, availabilityCache, cfg, logger)

	logger.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
