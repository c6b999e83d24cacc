package models

type Goal struct {
	Name            string  `json:"name"`
	Amount          float64 `json:"amount"`
	TimeframeMonths int     `json:"timeframe_months"`
}
