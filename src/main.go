package main

import (
	"context"
	"log"
	"net/http"

	"finchat-server/src/api"
	"finchat-server/src/config"
	"finchat-server/src/db"
	"finchat-server/src/llm"
	"finchat-server/src/nlu"
)

func main() {
	cfg := config.Load()

	// Connect to database
	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	db.InitSentimentCache()

	classifier := nlu.NewClassifier(cfg)
	generator := llm.NewClient(cfg)
	if !cfg.GenerationEnabled {
		log.Println("INFO: No generation credential configured, serving fallback responses")
	}

	// Router
	router := api.NewRouter(pool, classifier, generator, cfg.JWTSecret)

	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
