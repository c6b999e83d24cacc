package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"finchat-server/src/models"
	"finchat-server/src/util"
)

func GenerateAdvice(generator AdviceGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode generate request body: %v", err)
			WriteError(w, http.StatusUnprocessableEntity, "invalid request body")
			return
		}

		if strings.TrimSpace(req.Question) == "" {
			WriteError(w, http.StatusUnprocessableEntity, "question must not be empty")
			return
		}
		// Validation runs before any model call: a bad persona must never
		// reach the generator.
		if !util.ValidatePersona(req.Persona) {
			WriteError(w, http.StatusUnprocessableEntity, "persona must be student or professional")
			return
		}

		ctx, cancel := upstreamContext(r)
		defer cancel()

		advice, err := generator.GenerateFinancialAdvice(ctx, req.Question, req.Persona)
		if err != nil {
			log.Printf("ERROR: Failed to generate advice for persona %s: %v", req.Persona, err)
			WriteError(w, http.StatusBadGateway, "advice generation failed")
			return
		}

		RespondJSON(w, http.StatusOK, map[string]interface{}{"response": advice})
	}
}
