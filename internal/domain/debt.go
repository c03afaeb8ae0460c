package domain

// DebtCategory buckets the accumulated sleep debt.
// @Description Sleep-debt severity category.
type DebtCategory string

const (
	DebtCategoryLow      DebtCategory = "low"
	DebtCategoryModerate DebtCategory = "moderate"
	DebtCategoryHigh     DebtCategory = "high"
	DebtCategoryCritical DebtCategory = "critical"
)

// DailyDebtEntry is one day's contribution to the rolling debt.
// @Description Per-day sleep-debt breakdown entry, newest first.
type DailyDebtEntry struct {
	// Calendar date (YYYY-MM-DD)
	Date string `json:"date" example:"2024-01-15"`
	// Actual total sleep time in hours (imputed to need when missing)
	TST float64 `json:"tst" example:"6.4"`
	// Sleep need in hours for that day
	Need float64 `json:"need" example:"7.8"`
	// Need minus actual; positive is a deficit
	Deviation float64 `json:"deviation" example:"1.4"`
	// Exponential recency weight, 1.0 for yesterday
	Weight float64 `json:"weight" example:"0.61"`
	// Weighted deficit contribution (0 for surplus nights)
	WeightedDebt float64 `json:"weighted_debt" example:"0.85"`
	// True when no sleep data existed and the day was imputed as neutral
	Imputed bool `json:"imputed,omitempty"`
}

// SleepDebtResult is the rolling sleep-debt accounting.
// @Description Exponentially weighted rolling sleep debt over the recent window.
type SleepDebtResult struct {
	// Accumulated debt in hours, never negative
	TotalDebt float64 `json:"total_debt" example:"3.2"`
	// Severity category
	Category DebtCategory `json:"category" example:"moderate"`
	// Nights of +1h sleep needed to repay the debt
	PaybackNights int `json:"payback_nights" example:"4"`
	// Per-day breakdown, index 0 = yesterday
	DailyBreakdown []DailyDebtEntry `json:"daily_breakdown"`
	// Need baseline the debt was computed against
	SleepNeed float64 `json:"sleep_need" example:"7.8"`
}
