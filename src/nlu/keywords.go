package nlu

import "strings"

// financialTerms is the fixed lexicon scanned for keyword extraction. Order
// matters: matches are returned in lexicon order so output is deterministic.
var financialTerms = []string{
	"budget",
	"credit",
	"debt",
	"emergency fund",
	"expenses",
	"income",
	"insurance",
	"interest",
	"invest",
	"investment",
	"loan",
	"mortgage",
	"pension",
	"rent",
	"retirement",
	"salary",
	"save",
	"savings",
	"spending",
	"stock",
	"tax",
	"taxes",
}

// ExtractFinancialTerms returns the lexicon terms present in text. Matching
// is case-insensitive and respects word boundaries, so "rent" does not match
// inside "current".
func ExtractFinancialTerms(text string) []string {
	lowered := strings.ToLower(text)
	keywords := []string{}
	for _, term := range financialTerms {
		if containsTerm(lowered, term) {
			keywords = append(keywords, term)
		}
	}
	return keywords
}

func containsTerm(text, term string) bool {
	for start := 0; ; {
		idx := strings.Index(text[start:], term)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(term)
		if (idx == 0 || !isWordChar(text[idx-1])) && (end == len(text) || !isWordChar(text[end])) {
			return true
		}
		start = idx + 1
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}
