package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finchat-server/src/models"
)

type fakeClassifier struct {
	result models.SentimentAnalysis
	err    error
	calls  int
}

func (f *fakeClassifier) Classify(ctx context.Context, text string) (models.SentimentAnalysis, error) {
	f.calls++
	return f.result, f.err
}

type fakeGenerator struct {
	advice   string
	summary  string
	insights string
	err      error
	calls    int
}

func (f *fakeGenerator) GenerateFinancialAdvice(ctx context.Context, question, persona string) (string, error) {
	f.calls++
	return f.advice, f.err
}

func (f *fakeGenerator) GenerateBudgetSummary(ctx context.Context, req models.BudgetSummaryRequest) (string, error) {
	f.calls++
	return f.summary, f.err
}

func (f *fakeGenerator) GenerateSpendingInsights(ctx context.Context, req models.SpendingInsightsRequest) (string, error) {
	f.calls++
	return f.insights, f.err
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not valid JSON: %v\n%s", err, rec.Body.String())
	}
	return payload
}

func assertErrorEnvelope(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int) {
	t.Helper()
	if rec.Code != wantStatus {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, wantStatus, rec.Body.String())
	}
	payload := decodeBody(t, rec)
	if payload["error"] == "" || payload["error"] == nil {
		t.Error("error envelope missing error message")
	}
	if success, ok := payload["success"].(bool); !ok || success {
		t.Errorf("success = %v, want false", payload["success"])
	}
}

func TestAnalyzeText(t *testing.T) {
	t.Run("returns analysis", func(t *testing.T) {
		clf := &fakeClassifier{result: models.SentimentAnalysis{
			Label:      "negative",
			Confidence: 0.81,
			Keywords:   []string{"rent", "save"},
		}}

		rec := postJSON(t, AnalyzeText(clf), `{"text":"my rent is too high to save anything"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}

		payload := decodeBody(t, rec)
		analysis, ok := payload["analysis"].(map[string]interface{})
		if !ok {
			t.Fatalf("missing analysis object: %v", payload)
		}
		if analysis["label"] != "negative" {
			t.Errorf("label = %v, want negative", analysis["label"])
		}
		if analysis["confidence"] != 0.81 {
			t.Errorf("confidence = %v, want 0.81", analysis["confidence"])
		}
	})

	t.Run("rejects empty text before calling the model", func(t *testing.T) {
		clf := &fakeClassifier{}
		rec := postJSON(t, AnalyzeText(clf), `{"text":"   "}`)
		assertErrorEnvelope(t, rec, http.StatusUnprocessableEntity)
		if clf.calls != 0 {
			t.Errorf("classifier called %d times for invalid input", clf.calls)
		}
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		rec := postJSON(t, AnalyzeText(&fakeClassifier{}), `{"text":`)
		assertErrorEnvelope(t, rec, http.StatusUnprocessableEntity)
	})

	t.Run("maps model failure to bad gateway", func(t *testing.T) {
		clf := &fakeClassifier{err: errors.New("model loading")}
		rec := postJSON(t, AnalyzeText(clf), `{"text":"how should I budget"}`)
		assertErrorEnvelope(t, rec, http.StatusBadGateway)
	})
}

func TestGenerateAdvice(t *testing.T) {
	t.Run("returns generated advice", func(t *testing.T) {
		gen := &fakeGenerator{advice: "Save 20% of your income."}
		rec := postJSON(t, GenerateAdvice(gen), `{"question":"How do I save?","persona":"student"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		if payload := decodeBody(t, rec); payload["response"] != "Save 20% of your income." {
			t.Errorf("response = %v", payload["response"])
		}
	})

	t.Run("rejects empty question", func(t *testing.T) {
		gen := &fakeGenerator{}
		rec := postJSON(t, GenerateAdvice(gen), `{"question":"","persona":"student"}`)
		assertErrorEnvelope(t, rec, http.StatusUnprocessableEntity)
		if gen.calls != 0 {
			t.Errorf("generator called %d times for invalid input", gen.calls)
		}
	})

	t.Run("rejects unknown persona before calling the model", func(t *testing.T) {
		gen := &fakeGenerator{}
		rec := postJSON(t, GenerateAdvice(gen), `{"question":"How do I save?","persona":"astronaut"}`)
		assertErrorEnvelope(t, rec, http.StatusUnprocessableEntity)
		if gen.calls != 0 {
			t.Errorf("generator called %d times for invalid persona", gen.calls)
		}
	})

	t.Run("maps generation failure to bad gateway", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("quota exceeded")}
		rec := postJSON(t, GenerateAdvice(gen), `{"question":"How do I save?","persona":"student"}`)
		assertErrorEnvelope(t, rec, http.StatusBadGateway)
	})
}

const validBudgetBody = `{
	"income": 3500,
	"expenses": {"rent": 1200, "groceries": 400},
	"savings_goal": 500,
	"currency_symbol": "$",
	"user_type": "student"
}`

func TestBudgetSummary(t *testing.T) {
	t.Run("returns summary with expense breakdown", func(t *testing.T) {
		gen := &fakeGenerator{summary: "You spend most on rent."}
		rec := postJSON(t, BudgetSummary(gen, nil), validBudgetBody)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}

		payload := decodeBody(t, rec)
		if payload["summary"] != "You spend most on rent." {
			t.Errorf("summary = %v", payload["summary"])
		}
		breakdown, ok := payload["breakdown"].(map[string]interface{})
		if !ok {
			t.Fatalf("missing breakdown: %v", payload)
		}
		if rent, _ := breakdown["rent"].(float64); math.Abs(rent-75) > 1e-9 {
			t.Errorf("rent share = %v, want 75", breakdown["rent"])
		}
		if groceries, _ := breakdown["groceries"].(float64); math.Abs(groceries-25) > 1e-9 {
			t.Errorf("groceries share = %v, want 25", breakdown["groceries"])
		}
	})

	t.Run("rejects negative income before calling the model", func(t *testing.T) {
		gen := &fakeGenerator{}
		rec := postJSON(t, BudgetSummary(gen, nil), `{"income":-1,"expenses":{},"user_type":"student"}`)
		assertErrorEnvelope(t, rec, http.StatusUnprocessableEntity)
		if gen.calls != 0 {
			t.Errorf("generator called %d times for invalid budget", gen.calls)
		}
	})

	t.Run("maps generation failure to bad gateway", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("quota exceeded")}
		rec := postJSON(t, BudgetSummary(gen, nil), validBudgetBody)
		assertErrorEnvelope(t, rec, http.StatusBadGateway)
	})
}

func TestSpendingInsights(t *testing.T) {
	t.Run("returns insights", func(t *testing.T) {
		gen := &fakeGenerator{insights: "Your laptop goal is on track."}
		body := `{
			"income": 3500,
			"expenses": {"rent": 1200},
			"savings_goal": 500,
			"currency_symbol": "$",
			"user_type": "professional",
			"goals": [{"name": "New laptop", "amount": 1200, "timeframe_months": 6}]
		}`
		rec := postJSON(t, SpendingInsights(gen, nil), body)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		if payload := decodeBody(t, rec); payload["insights"] != "Your laptop goal is on track." {
			t.Errorf("insights = %v", payload["insights"])
		}
	})

	t.Run("rejects zero-month goal before calling the model", func(t *testing.T) {
		gen := &fakeGenerator{}
		body := `{
			"income": 3500,
			"expenses": {"rent": 1200},
			"user_type": "student",
			"goals": [{"name": "New laptop", "amount": 1200, "timeframe_months": 0}]
		}`
		rec := postJSON(t, SpendingInsights(gen, nil), body)
		assertErrorEnvelope(t, rec, http.StatusUnprocessableEntity)
		if gen.calls != 0 {
			t.Errorf("generator called %d times for invalid goals", gen.calls)
		}
	})
}
