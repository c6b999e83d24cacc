package models

// SentimentAnalysis is the wire shape returned under "analysis" by POST /nlu.
// Label is one of positive, negative, neutral; Confidence is in [0, 1].
type SentimentAnalysis struct {
	Label      string   `json:"label"`
	Confidence float64  `json:"confidence"`
	Keywords   []string `json:"keywords"`
}
