// Package sleep implements the sleep-science computation engine: a
// stateless set of pure functions that turn a user's daily vitals
// history into a circadian profile, a personalized sleep-need baseline,
// a rolling sleep debt, and a 24-hour predicted-energy curve.
//
// Every entry point is deterministic over its explicit arguments. The
// package does no I/O, reads no globals, and never caches results, so
// any number of computations may run concurrently without coordination.
package sleep

// Config carries every tunable of the engine. All functions take it
// explicitly; DefaultConfig returns the standard values.
type Config struct {
	// Chronotype analyzer
	ChronotypeWindowDays int     // most recent valid days considered
	MinChronotypeDays    int     // below this the analyzer reports insufficient data
	NadirOffsetHours     float64 // nadir = median wake - offset
	MelatoninWindowHours float64 // window length ending at median bedtime
	EarlyWakeHour        float64 // wake before this = early chronotype
	LateWakeHour         float64 // wake after this = late chronotype

	// Day classifier
	LowVarianceMinutes    float64 // below this + early wake = workday
	HighVarianceMinutes   float64 // above this + late wake = freeday
	MinWeekdaySamples     int     // per-weekday minimum for variance analysis
	MinClassifySamples    int     // advisory: total wake samples wanted
	MinClassifyWeekdays   int     // advisory: distinct weekdays wanted

	// Sleep-need calculator
	DefaultSleepNeed      float64 // population default, hours
	MinSleepNeed          float64 // biological floor, hours
	MaxSleepNeed          float64 // clamp ceiling, hours
	MinNeedEntries        int     // below this the default is returned
	MinFreeDaySamples     int     // Method 1 minimum
	MinSatiationEntries   int     // Method 2 minimum paired entries
	SatiationBucketHours  float64 // TST bucket width
	SatiationMinPerBucket int     // points required per bucket
	SatiationRecoveryMin  float64 // mean recovery threshold, percent

	// Sleep-debt engine
	DebtWindowDays  int     // rolling window length
	DebtDecayLambda float64 // weight = exp(-lambda * dayIndex)

	// Two-process model
	TauRise          float64   // Process S rise time constant, hours awake
	TauDecay         float64   // Process S decay time constant, hours asleep
	MorningPressure  float64   // Process S immediately after a full night
	Harmonics        []float64 // Process C harmonic amplitudes, fundamental first
	EnergyBase       float64   // energy = base + circadianGain*C - pressureGain*S
	CircadianGain    float64
	PressureGain     float64
	PeakEnergy       float64 // zone thresholds on adjusted energy
	DipEnergy        float64
	DebtPenaltyRate  float64 // penalty percent per debt hour
	DebtPenaltyMax   float64 // penalty ceiling, percent
	CurveStepMinutes int     // curve resolution

	// Dynamic daily need
	StrainMinutesPerLoad float64 // minutes of extra need per excess load point
	MaxStrainAddition    float64 // hours
	MaxDebtAddition      float64 // hours
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		ChronotypeWindowDays: 14,
		MinChronotypeDays:    7,
		NadirOffsetHours:     2.0,
		MelatoninWindowHours: 2.0,
		EarlyWakeHour:        6.0,
		LateWakeHour:         8.0,

		LowVarianceMinutes:  20,
		HighVarianceMinutes: 45,
		MinWeekdaySamples:   3,
		MinClassifySamples:  21,
		MinClassifyWeekdays: 6,

		DefaultSleepNeed:      8.25,
		MinSleepNeed:          6.0,
		MaxSleepNeed:          10.0,
		MinNeedEntries:        7,
		MinFreeDaySamples:     4,
		MinSatiationEntries:   15,
		SatiationBucketHours:  0.5,
		SatiationMinPerBucket: 2,
		SatiationRecoveryMin:  70,

		DebtWindowDays:  14,
		DebtDecayLambda: 0.5,

		TauRise:          18.2,
		TauDecay:         4.2,
		MorningPressure:  0.1,
		Harmonics:        []float64{0.97, 0.22, 0.07, 0.03, 0.001},
		EnergyBase:       40,
		CircadianGain:    60,
		PressureGain:     35,
		PeakEnergy:       70,
		DipEnergy:        40,
		DebtPenaltyRate:  3,
		DebtPenaltyMax:   30,
		CurveStepMinutes: 15,

		StrainMinutesPerLoad: 3.0,
		MaxStrainAddition:    0.75,
		MaxDebtAddition:      2.0,
	}
}
