package domain

import "time"

// DayType labels a weekday as alarm-driven or alarm-free.
// @Description Inferred day type: workday (alarm-driven) or freeday.
type DayType string

const (
	DayTypeWorkday DayType = "workday"
	DayTypeFreeday DayType = "freeday"
)

// DayClassification maps every weekday (time.Sunday..time.Saturday) to
// its inferred day type. Always covers all 7 weekdays; gaps are filled
// by the calendar fallback.
type DayClassification map[time.Weekday]DayType

// DayOfWeekStats holds the per-weekday wake-time statistics behind a
// classification decision.
// @Description Per-weekday wake-time statistics (0 = Sunday).
type DayOfWeekStats struct {
	// Weekday index, 0 = Sunday
	Weekday int `json:"weekday" example:"1"`
	// Mean wake time as fractional hours after midnight
	MeanWakeHour float64 `json:"mean_wake_hour" example:"6.75"`
	// Sample standard deviation of wake time, in minutes
	VarianceMinutes float64 `json:"variance_minutes" example:"18.5"`
	// Number of wake samples for this weekday
	SampleCount int `json:"sample_count" example:"8"`
	// Inferred day type
	InferredDayType DayType `json:"inferred_day_type" example:"workday"`
}

// DayClassificationResult is the full classifier output.
// @Description Weekday classification map with supporting statistics.
type DayClassificationResult struct {
	// Map from weekday index (0 = Sunday) to day type; always 7 entries
	Days DayClassification `json:"days"`
	// Per-weekday statistics for weekdays with enough samples
	Stats []DayOfWeekStats `json:"stats"`
	// Advisory data-sufficiency check
	Readiness ClassificationReadiness `json:"readiness"`
}

// ClassificationReadiness reports whether enough history exists for a
// variance-based classification. Advisory only; the classifier always
// returns a complete map regardless.
// @Description Advisory check on classification data sufficiency.
type ClassificationReadiness struct {
	Sufficient       bool   `json:"sufficient" example:"true"`
	TotalSamples     int    `json:"total_samples" example:"34"`
	DistinctWeekdays int    `json:"distinct_weekdays" example:"7"`
	Recommendation   string `json:"recommendation,omitempty" example:"Log at least 21 nights covering 6 different weekdays for automatic detection."`
}
