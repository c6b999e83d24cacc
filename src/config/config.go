package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	// watsonx.ai text generation
	WatsonxAPIKey    string
	WatsonxProjectID string
	WatsonxURL       string

	// Hugging Face inference API (sentiment classification)
	HFAPIToken string

	// GenerationEnabled is resolved once at load time so tests can build a
	// Config with it toggled instead of poking at the environment.
	GenerationEnabled bool
}

func Load() Config {
	// Load .env file if present
	_ = godotenv.Load()

	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		WatsonxAPIKey:    getEnv("WATSONX_API_KEY", ""),
		WatsonxProjectID: getEnv("WATSONX_PROJECT_ID", ""),
		WatsonxURL:       getEnv("WATSONX_URL", "https://us-south.ml.cloud.ibm.com"),
		HFAPIToken:       getEnv("HF_API_TOKEN", ""),
	}

	cfg.GenerationEnabled = cfg.WatsonxAPIKey != ""

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
