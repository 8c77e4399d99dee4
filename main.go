package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ojeshwigautam/Port-Kart-Server/config"
	"github.com/ojeshwigautam/Port-Kart-Server/middleware"
	"github.com/ojeshwigautam/Port-Kart-Server/routes"
	"github.com/ojeshwigautam/Port-Kart-Server/supa"
)

func main() {
	cfg := config.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
		logger.Fatal().Msg("SUPABASE_URL and SUPABASE_KEY must be set")
	}

	client := supa.NewClient(cfg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))

	r.Use(cors.New(corsConfig(cfg)))

	routes.SetupRoutes(r, client, client, cfg.SellerSecret, logger)

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func corsConfig(cfg config.Config) cors.Config {
	allowed := []string{"*"}
	if cfg.FrontendURL != "" {
		allowed = []string{cfg.FrontendURL}
	}
	return cors.Config{
		AllowOrigins:     allowed,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: cfg.FrontendURL != "",
		MaxAge:           12 * time.Hour,
	}
}
