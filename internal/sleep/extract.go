package sleep

import (
	"sort"

	"github.com/noctura/circadian-api/internal/domain"
)

// Extraction helpers. Malformed entries (missing timestamps, negative
// durations, unparseable dates) are filtered here, shrinking the sample
// rather than failing the computation.

// hasValidSleepWindow reports whether the entry carries a usable
// sleep start/end pair.
func hasValidSleepWindow(v domain.DailyVitals) bool {
	return v.SleepStart.Valid() && v.SleepEnd.Valid() && v.SleepEnd > v.SleepStart
}

// wakeClockMinutes returns the wake time as local minutes after
// midnight.
func wakeClockMinutes(v domain.DailyVitals) (float64, bool) {
	if !v.SleepEnd.Valid() {
		return 0, false
	}
	t := v.SleepEnd.Time().In(v.Location())
	return float64(t.Hour()*60+t.Minute()) + float64(t.Second())/60, true
}

// bedClockMinutes returns the sleep onset as local minutes after
// midnight.
func bedClockMinutes(v domain.DailyVitals) (float64, bool) {
	if !v.SleepStart.Valid() {
		return 0, false
	}
	t := v.SleepStart.Time().In(v.Location())
	return float64(t.Hour()*60+t.Minute()) + float64(t.Second())/60, true
}

// totalSleepHours computes the day's total sleep time: the sum of the
// scored stage minutes when present, otherwise the raw window duration.
// ok is false when neither source yields a positive, sane value.
func totalSleepHours(v domain.DailyVitals) (float64, bool) {
	stages := v.DeepMinutes + v.RemMinutes + v.LightMinutes
	if stages > 0 {
		h := stages / 60
		if h <= 24 {
			return h, true
		}
		return 0, false
	}
	if hasValidSleepWindow(v) {
		h := v.SleepEnd.Time().Sub(v.SleepStart.Time()).Hours()
		if h > 0 && h <= 24 {
			return h, true
		}
	}
	return 0, false
}

// sortedByDateDesc returns a copy of the history ordered most recent
// first. Entries with malformed dates sort last. YYYY-MM-DD compares
// correctly as a plain string.
func sortedByDateDesc(history []domain.DailyVitals) []domain.DailyVitals {
	sorted := make([]domain.DailyVitals, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	return sorted
}
