package domain

// Chronotype is an individual's natural sleep-wake timing classification.
// @Description Chronotype classification derived from median wake time.
type Chronotype string

const (
	ChronotypeEarly        Chronotype = "early"
	ChronotypeIntermediate Chronotype = "intermediate"
	ChronotypeLate         Chronotype = "late"
)

// Confidence grades how well-supported a derived profile is.
// @Description Confidence grade based on the number of valid days used.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// ClockWindow is a window between two local clock times, possibly
// wrapping midnight.
// @Description Local clock-time window (may cross midnight).
type ClockWindow struct {
	// Window start (HH:MM)
	Start string `json:"start" example:"21:30"`
	// Window end (HH:MM)
	End string `json:"end" example:"23:30"`
	// Start as fractional hours after midnight
	StartHour float64 `json:"start_hour" example:"21.5"`
	// End as fractional hours after midnight
	EndHour float64 `json:"end_hour" example:"23.5"`
}

// ChronotypeProfile is the derived circadian profile for a user.
// Recomputed on demand from recent history; never cached.
// @Description Personal circadian profile: chronotype, nadir, acrophase, melatonin window.
type ChronotypeProfile struct {
	// Median wake time as a local clock time (HH:MM)
	AverageWakeTime string `json:"average_wake_time" example:"07:15"`
	// Median bedtime as a local clock time (HH:MM)
	AverageSleepTime string `json:"average_sleep_time" example:"23:30"`
	// Median wake time as fractional hours after midnight
	WakeHour float64 `json:"wake_hour" example:"7.25"`
	// Median bedtime as fractional hours after midnight
	SleepHour float64 `json:"sleep_hour" example:"23.5"`
	// Time of minimum alertness (~2h before natural wake)
	CircadianNadir string `json:"circadian_nadir" example:"05:15"`
	// Nadir as fractional hours after midnight
	NadirHour float64 `json:"nadir_hour" example:"5.25"`
	// Time of maximum alertness (nadir + 12h)
	CircadianAcrophase string `json:"circadian_acrophase" example:"17:15"`
	// Acrophase as fractional hours after midnight
	AcrophaseHour float64 `json:"acrophase_hour" example:"17.25"`
	// Evening melatonin-onset window ending at the median bedtime
	MelatoninWindow ClockWindow `json:"melatonin_window"`
	// Chronotype classification
	Chronotype Chronotype `json:"chronotype" example:"intermediate"`
	// Number of valid days the profile is based on
	BasedOnDays int `json:"based_on_days" example:"14"`
	// Confidence grade
	Confidence Confidence `json:"confidence" example:"high"`
}

// InsufficientData is the typed "need more data" result. It is a normal
// 200 response, never an error: missing history is the expected state
// for new users.
// @Description Returned when too few valid days exist to derive a result.
type InsufficientData struct {
	Status string `json:"status" example:"insufficient_data"`
	Detail string `json:"detail" example:"at least 7 valid days of sleep data are required"`
}

// NewInsufficientData builds the sentinel payload.
func NewInsufficientData(detail string) InsufficientData {
	return InsufficientData{Status: "insufficient_data", Detail: detail}
}
