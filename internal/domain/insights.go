package domain

// LLMInsightsOutput contains the structured output from the LLM.
// @Description LLM-generated circadian insights.
type LLMInsightsOutput struct {
	// Summary of the user's current sleep balance (2-3 sentences)
	Summary string `json:"summary" example:"Your sleep debt has grown over the past week..."`
	// Observations about the circadian profile and debt (3-6 items)
	Observations []string `json:"observations" example:"[\"Your melatonin window opens around 21:30\"]"`
	// Actionable, non-medical guidance (3-5 items)
	Guidance []string `json:"guidance" example:"[\"Aim for lights out before 23:00 to repay debt\"]"`
}

// InsightsContext is the engine output bundle sent to the LLM.
// @Description Context data for LLM insights generation.
type InsightsContext struct {
	Chronotype *ChronotypeProfile `json:"chronotype,omitempty"`
	SleepNeed  SleepNeedProfile   `json:"sleep_need"`
	SleepDebt  SleepDebtResult    `json:"sleep_debt"`
	Energy     *EnergySummary     `json:"energy,omitempty"`
}

// EnergySummary is the compact curve description given to the LLM in
// place of the full 96-point curve.
// @Description Compact summary of the predicted-energy curve.
type EnergySummary struct {
	CurrentEnergy    float64     `json:"current_energy"`
	CurrentZone      EnergyZone  `json:"current_zone"`
	NextPeak         string      `json:"next_peak,omitempty"`
	NextDip          string      `json:"next_dip,omitempty"`
	MelatoninWindow  ClockWindow `json:"melatonin_window"`
	SleepDebtPenalty float64     `json:"sleep_debt_penalty"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Complete circadian insights response.
type InsightsResponse struct {
	// Circadian profile (absent when history is insufficient)
	Chronotype *ChronotypeProfile `json:"chronotype,omitempty"`
	// Personalized sleep need
	SleepNeed SleepNeedProfile `json:"sleep_need"`
	// Rolling sleep debt
	SleepDebt SleepDebtResult `json:"sleep_debt"`
	// LLM-generated insights
	Insights LLMInsightsOutput `json:"insights"`
	// Trace ID for feedback (present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty"`
}
