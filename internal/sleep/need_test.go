package sleep

import (
	"testing"
	"time"

	"github.com/noctura/circadian-api/internal/domain"
)

// needHistory builds entries from 2024-01-01 (a Monday) onward, one per
// day, with per-day TST and recovery chosen by the fill function.
func needHistory(days int, fill func(date time.Time) (tst, recovery float64)) []domain.DailyVitals {
	start, _ := time.Parse(domain.DateLayout, "2024-01-01")
	var history []domain.DailyVitals
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		tst, recovery := fill(day)
		v := vitalsDay(day.Format(domain.DateLayout), 23, 7, tst)
		v.RecoveryScore = recovery
		history = append(history, v)
	}
	return history
}

func isFreeProxy(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Friday || wd == time.Saturday || wd == time.Sunday
}

func TestCalculateSleepNeed_DefaultBelowMinimumEntries(t *testing.T) {
	cfg := DefaultConfig()
	history := vitalsRun("2024-01-06", 5, 23, 7, 7.5)

	got := CalculateSleepNeed(history, cfg)

	if got.CalculatedNeed != cfg.DefaultSleepNeed {
		t.Errorf("CalculatedNeed = %v, want default %v", got.CalculatedNeed, cfg.DefaultSleepNeed)
	}
	if got.Method != domain.NeedMethodDefault {
		t.Errorf("Method = %q, want %q", got.Method, domain.NeedMethodDefault)
	}
	if got.Confidence != domain.ConfidenceLow {
		t.Errorf("Confidence = %q, want low", got.Confidence)
	}
	if got.BasedOnDays != 5 {
		t.Errorf("BasedOnDays = %d, want 5", got.BasedOnDays)
	}
}

func TestCalculateSleepNeed_FreeDayMedian(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name           string
		days           int
		wantFreeDays   int
		wantConfidence domain.Confidence
	}{
		{name: "twelve free days is high", days: 28, wantFreeDays: 12, wantConfidence: domain.ConfidenceHigh},
		{name: "six free days is medium", days: 14, wantFreeDays: 6, wantConfidence: domain.ConfidenceMedium},
		{name: "four free days is low", days: 12, wantFreeDays: 4, wantConfidence: domain.ConfidenceLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := needHistory(tt.days, func(day time.Time) (float64, float64) {
				if isFreeProxy(day) {
					return 8.2, 0
				}
				return 7.0, 0
			})

			got := CalculateSleepNeed(history, cfg)

			if got.Method != domain.NeedMethodHistoricalMedian {
				t.Fatalf("Method = %q, want %q", got.Method, domain.NeedMethodHistoricalMedian)
			}
			if got.CalculatedNeed != 8.2 {
				t.Errorf("CalculatedNeed = %v, want 8.2", got.CalculatedNeed)
			}
			if got.BasedOnDays != tt.wantFreeDays {
				t.Errorf("BasedOnDays = %d, want %d free days", got.BasedOnDays, tt.wantFreeDays)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %q, want %q", got.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestCalculateSleepNeed_FreeDayMedianWinsOverSatiation(t *testing.T) {
	// History qualifies for both methods; the fixed order means the
	// free-day median is used regardless of recovery data quality.
	cfg := DefaultConfig()
	history := needHistory(28, func(day time.Time) (float64, float64) {
		if isFreeProxy(day) {
			return 8.2, 82
		}
		return 7.0, 75
	})

	got := CalculateSleepNeed(history, cfg)
	if got.Method != domain.NeedMethodHistoricalMedian {
		t.Errorf("Method = %q, want %q", got.Method, domain.NeedMethodHistoricalMedian)
	}
}

func TestCalculateSleepNeed_SatiationPoint(t *testing.T) {
	cfg := DefaultConfig()

	// Mon-Thu only (no free-day proxy dates), 16 paired entries across
	// four TST buckets. Recovery first clears 70% in the 7.5-8.0h
	// bucket, so the need is its midpoint plus a quarter hour.
	byWeekday := map[time.Weekday]struct{ tst, recovery float64 }{
		time.Monday:    {6.2, 55},
		time.Tuesday:   {6.8, 62},
		time.Wednesday: {7.6, 74},
		time.Thursday:  {8.1, 81},
	}

	start, _ := time.Parse(domain.DateLayout, "2024-01-01")
	var history []domain.DailyVitals
	for i := 0; i < 28; i++ {
		day := start.AddDate(0, 0, i)
		spec, ok := byWeekday[day.Weekday()]
		if !ok {
			continue
		}
		v := vitalsDay(day.Format(domain.DateLayout), 23, 7, spec.tst)
		v.RecoveryScore = spec.recovery
		history = append(history, v)
	}

	got := CalculateSleepNeed(history, cfg)

	if got.Method != domain.NeedMethodSatiationPoint {
		t.Fatalf("Method = %q, want %q", got.Method, domain.NeedMethodSatiationPoint)
	}
	if got.CalculatedNeed != 8.0 {
		t.Errorf("CalculatedNeed = %v, want 8.0", got.CalculatedNeed)
	}
	if got.BasedOnDays != 16 {
		t.Errorf("BasedOnDays = %d, want 16", got.BasedOnDays)
	}
	if got.Confidence != domain.ConfidenceLow {
		t.Errorf("Confidence = %q, want low below %d paired entries", got.Confidence, 2*cfg.MinSatiationEntries)
	}
}

func TestCalculateSleepNeed_AllDaysMedianFallback(t *testing.T) {
	cfg := DefaultConfig()

	// Mon-Thu only and no recovery scores: neither method 1 nor 2 can
	// run, so the all-days median applies at low confidence.
	start, _ := time.Parse(domain.DateLayout, "2024-01-01")
	var history []domain.DailyVitals
	for i := 0; i < 14; i++ {
		day := start.AddDate(0, 0, i)
		if isFreeProxy(day) {
			continue
		}
		tst := 7.0
		if day.Weekday() == time.Wednesday || day.Weekday() == time.Thursday {
			tst = 7.2
		}
		history = append(history, vitalsDay(day.Format(domain.DateLayout), 23, 7, tst))
	}

	got := CalculateSleepNeed(history, cfg)

	if got.Method != domain.NeedMethodDefault {
		t.Errorf("Method = %q, want %q", got.Method, domain.NeedMethodDefault)
	}
	if got.CalculatedNeed != 7.1 {
		t.Errorf("CalculatedNeed = %v, want 7.1", got.CalculatedNeed)
	}
	if got.Confidence != domain.ConfidenceLow {
		t.Errorf("Confidence = %q, want low", got.Confidence)
	}
}

func TestCalculateSleepNeed_ClampedToBiologicalRange(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name    string
		freeTST float64
		want    float64
	}{
		{name: "excessive sleep clamps to ceiling", freeTST: 11.0, want: cfg.MaxSleepNeed},
		{name: "short sleep clamps to floor", freeTST: 4.5, want: cfg.MinSleepNeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := needHistory(28, func(day time.Time) (float64, float64) {
				if isFreeProxy(day) {
					return tt.freeTST, 0
				}
				return 7.0, 0
			})

			got := CalculateSleepNeed(history, cfg)
			if got.CalculatedNeed != tt.want {
				t.Errorf("CalculatedNeed = %v, want clamped %v", got.CalculatedNeed, tt.want)
			}
		})
	}
}
