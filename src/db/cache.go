package db

import (
	"log"

	"github.com/dgraph-io/ristretto"

	"finchat-server/src/models"
)

// Classification is deterministic for identical text and model version, so
// results are cached keyed by the raw input text. The cache is optional:
// lookups and stores no-op when InitSentimentCache was never called (tests).
var sentimentCache *ristretto.Cache

func InitSentimentCache() {
	var err error
	sentimentCache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize sentiment cache: %v", err)
	}
}

func GetSentiment(text string) (models.SentimentAnalysis, bool) {
	if sentimentCache == nil {
		return models.SentimentAnalysis{}, false
	}
	value, found := sentimentCache.Get(text)
	if !found {
		return models.SentimentAnalysis{}, false
	}
	analysis, ok := value.(models.SentimentAnalysis)
	return analysis, ok
}

func SetSentiment(text string, analysis models.SentimentAnalysis) {
	if sentimentCache == nil {
		return
	}
	sentimentCache.Set(text, analysis, 1)
}
