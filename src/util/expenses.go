package util

// SumExpenses returns the total of all expense amounts.
func SumExpenses(expenses map[string]float64) float64 {
	var total float64
	for _, amount := range expenses {
		total += amount
	}
	return total
}

// CalculatePercentages returns each category's share of total expenses as a
// percentage. An all-zero expense map yields an empty breakdown rather than
// dividing by zero.
func CalculatePercentages(expenses map[string]float64) map[string]float64 {
	total := SumExpenses(expenses)
	breakdown := make(map[string]float64, len(expenses))
	if total == 0 {
		return breakdown
	}
	for category, amount := range expenses {
		breakdown[category] = amount / total * 100
	}
	return breakdown
}
