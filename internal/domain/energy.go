package domain

// EnergyZone labels a segment of the predicted-energy curve.
// @Description Energy zone for a point on the 24h curve.
type EnergyZone string

const (
	ZonePeak     EnergyZone = "peak"
	ZoneRising   EnergyZone = "rising"
	ZoneDip      EnergyZone = "dip"
	ZoneWindDown EnergyZone = "wind-down"
	ZoneSleep    EnergyZone = "sleep"
)

// CircadianPoint is one 15-minute sample of the predicted-energy curve.
// @Description One 15-minute point of the 24h predicted-energy curve.
type CircadianPoint struct {
	// Local clock time (HH:MM)
	Time string `json:"time" example:"14:30"`
	// Fractional hours after midnight
	Hour float64 `json:"hour" example:"14.5"`
	// Homeostatic sleep pressure, 0-1
	ProcessS float64 `json:"process_s" example:"0.42"`
	// Circadian oscillator output, 0-1
	ProcessC float64 `json:"process_c" example:"0.81"`
	// Predicted energy after debt adjustment, 0-100
	Energy float64 `json:"energy" example:"63.5"`
	// Zone classification
	Zone EnergyZone `json:"zone" example:"rising"`
}

// EnergyCurve is the full 24-hour prediction: 96 points at 15-minute
// spacing starting at local midnight, plus markers for "now".
// @Description 24-hour predicted-energy curve with current state and next extrema.
type EnergyCurve struct {
	// Exactly 96 points at 15-minute spacing from local midnight
	Points []CircadianPoint `json:"points"`
	// Energy at the point nearest the current time
	CurrentEnergy float64 `json:"current_energy" example:"58.2"`
	// Zone at the point nearest the current time
	CurrentZone EnergyZone `json:"current_zone" example:"rising"`
	// Next local energy maximum after now (HH:MM), if any
	NextPeak string `json:"next_peak,omitempty" example:"17:15"`
	// Next local energy minimum after now (HH:MM), if any
	NextDip string `json:"next_dip,omitempty" example:"14:00"`
	// Evening melatonin window from the chronotype profile
	MelatoninWindow ClockWindow `json:"melatonin_window"`
	// Natural wake time the curve is anchored to (HH:MM)
	WakeTime string `json:"wake_time" example:"07:15"`
	// Energy penalty applied for accumulated sleep debt, percent
	SleepDebtPenalty float64 `json:"sleep_debt_penalty" example:"9.6"`
}
