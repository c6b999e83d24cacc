package llm

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"finchat-server/src/models"
)

// Prompts must be deterministic for identical input, so expense categories
// are rendered in sorted order (map iteration order is randomized).

func buildAdvicePrompt(question, persona string) string {
	return fmt.Sprintf(`You are a financial advisor helping a %s.
The user asks: %q

Provide clear, actionable advice in 3-5 bullet points.`, persona, question)
}

func buildBudgetSummaryPrompt(req models.BudgetSummaryRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a budget summary for a %s with:\n", req.UserType)
	fmt.Fprintf(&b, "- Monthly income: %s%s\n", req.CurrencySymbol, formatAmount(req.Income))
	b.WriteString("- Monthly expenses:\n")
	for _, category := range sortedCategories(req.Expenses) {
		fmt.Fprintf(&b, "  - %s: %s%s\n", category, req.CurrencySymbol, formatAmount(req.Expenses[category]))
	}
	fmt.Fprintf(&b, "- Monthly savings goal: %s%s\n", req.CurrencySymbol, formatAmount(req.SavingsGoal))
	b.WriteString(`
Provide:
1. Total expenses
2. Disposable income
3. Savings progress
4. Top 3 expense categories
5. 2-3 recommendations for improvement`)
	return b.String()
}

func buildSpendingInsightsPrompt(req models.SpendingInsightsRequest) string {
	var total float64
	for _, amount := range req.Expenses {
		total += amount
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze spending patterns for a %s with:\n", req.UserType)
	fmt.Fprintf(&b, "- Monthly income: %s%s\n", req.CurrencySymbol, formatAmount(req.Income))
	fmt.Fprintf(&b, "- Monthly expenses totaling: %s%s\n", req.CurrencySymbol, formatAmount(total))
	fmt.Fprintf(&b, "- Monthly savings goal: %s%s\n", req.CurrencySymbol, formatAmount(req.SavingsGoal))
	b.WriteString("- Financial goals:\n")
	for _, goal := range req.Goals {
		fmt.Fprintf(&b, "  - %s: %s%s in %d months\n", goal.Name, req.CurrencySymbol, formatAmount(goal.Amount), goal.TimeframeMonths)
	}
	b.WriteString(`
Provide:
1. Current spending analysis
2. Goal feasibility assessment
3. Potential budget optimizations
4. Timeline projections for goals
5. Risk factors to watch`)
	return b.String()
}

func sortedCategories(expenses map[string]float64) []string {
	categories := make([]string, 0, len(expenses))
	for category := range expenses {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
