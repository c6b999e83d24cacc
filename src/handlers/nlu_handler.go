package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"finchat-server/src/db"
	"finchat-server/src/models"
)

func AnalyzeText(classifier Classifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.NLURequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode nlu request body: %v", err)
			WriteError(w, http.StatusUnprocessableEntity, "invalid request body")
			return
		}

		if strings.TrimSpace(req.Text) == "" {
			WriteError(w, http.StatusUnprocessableEntity, "text must not be empty")
			return
		}

		if analysis, ok := db.GetSentiment(req.Text); ok {
			RespondJSON(w, http.StatusOK, map[string]interface{}{"analysis": analysis})
			return
		}

		ctx, cancel := upstreamContext(r)
		defer cancel()

		analysis, err := classifier.Classify(ctx, req.Text)
		if err != nil {
			log.Printf("ERROR: Failed to classify text: %v", err)
			WriteError(w, http.StatusBadGateway, "text analysis failed")
			return
		}

		db.SetSentiment(req.Text, analysis)

		RespondJSON(w, http.StatusOK, map[string]interface{}{"analysis": analysis})
	}
}
