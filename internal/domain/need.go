package domain

// NeedMethod identifies which strategy produced a sleep-need figure.
// @Description Method used to derive the personalized sleep need.
type NeedMethod string

const (
	// NeedMethodHistoricalMedian uses the median free-day total sleep time.
	NeedMethodHistoricalMedian NeedMethod = "historical_median"
	// NeedMethodSatiationPoint uses the lowest sleep duration at which
	// recovery scores stop improving.
	NeedMethodSatiationPoint NeedMethod = "satiation_point"
	// NeedMethodDefault is the population default.
	NeedMethodDefault NeedMethod = "default"
)

// SleepNeedProfile is the personalized nightly sleep-need baseline.
// @Description Personalized sleep need in hours with derivation metadata.
type SleepNeedProfile struct {
	// Nightly need in hours, clamped to [6.0, 10.0]
	CalculatedNeed float64 `json:"calculated_need" example:"7.8"`
	// Confidence grade
	Confidence Confidence `json:"confidence" example:"medium"`
	// Number of entries the figure is based on
	BasedOnDays int `json:"based_on_days" example:"9"`
	// Derivation method
	Method NeedMethod `json:"method" example:"historical_median"`
}

// NeedContext carries the day-specific inputs of a dynamic need
// decomposition.
// @Description Inputs used for today's dynamic sleep-need decomposition.
type NeedContext struct {
	// Yesterday's training-load score
	TrainingLoadYesterday float64 `json:"training_load_yesterday" example:"320"`
	// Rolling average training load
	TrainingLoadAverage float64 `json:"training_load_average" example:"250"`
	// Current accumulated sleep debt in hours
	CurrentDebtHours float64 `json:"current_debt_hours" example:"2.4"`
	// Nap minutes already taken today
	NapMinutesToday float64 `json:"nap_minutes_today" example:"30"`
	// Most recent recovery score, 0 if absent
	PriorRecoveryScore float64 `json:"prior_recovery_score" example:"68"`
}

// DailyNeedBreakdown decomposes today's total sleep need.
// @Description Per-day sleep-need decomposition: baseline + strain + debt - naps.
type DailyNeedBreakdown struct {
	// Personalized baseline need in hours
	Baseline float64 `json:"baseline" example:"7.8"`
	// Extra need from yesterday's training strain (capped at 0.75h)
	StrainAddition float64 `json:"strain_addition" example:"0.25"`
	// Extra need from accumulated debt (capped at 2.0h)
	DebtAddition float64 `json:"debt_addition" example:"1.2"`
	// Need already met by today's naps (uncapped)
	NapSubtraction float64 `json:"nap_subtraction" example:"0.5"`
	// Total for tonight, never below the 6h biological floor
	TotalNeed float64 `json:"total_need" example:"8.75"`
	// Inputs the decomposition was computed from
	Context NeedContext `json:"context"`
}
