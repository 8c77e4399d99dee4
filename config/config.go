package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port         string
	FrontendURL  string
	SellerSecret string
	SupabaseURL  string
	SupabaseKey  string
}

// Load reads a .env file if present, then the process environment.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:         os.Getenv("PORT"),
		FrontendURL:  os.Getenv("FRONTEND_URL"),
		SellerSecret: os.Getenv("SELLER_SECRET"),
		SupabaseURL:  os.Getenv("SUPABASE_URL"),
		SupabaseKey:  os.Getenv("SUPABASE_KEY"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg
}
