package sleep

import (
	"math"
	"time"

	"github.com/noctura/circadian-api/internal/domain"
)

// needEntry is one valid day considered by the need calculator.
type needEntry struct {
	hours    float64
	recovery float64
	freeDay  bool
}

// CalculateSleepNeed derives the personalized nightly sleep need. Three
// methods are tried in a fixed order; the order is deliberate and must
// not be reordered by confidence, because free-day sleep duration is
// the most physiologically meaningful signal regardless of sample size:
//
//  1. historical_median — median total sleep time on free days
//     (Friday/Saturday/Sunday nights as a proxy for alarm-free sleep).
//  2. satiation_point — the shortest sleep duration at which mean
//     recovery clears the target, from TST-bucketed recovery scores.
//  3. median TST across all valid days, at low confidence.
//
// With fewer than MinNeedEntries valid days the population default is
// returned at low confidence.
func CalculateSleepNeed(history []domain.DailyVitals, cfg Config) domain.SleepNeedProfile {
	var entries []needEntry
	for _, v := range history {
		hours, ok := totalSleepHours(v)
		if !ok {
			continue
		}
		entries = append(entries, needEntry{
			hours:    hours,
			recovery: v.RecoveryScore,
			freeDay:  isFreeDayProxy(v),
		})
	}

	if len(entries) < cfg.MinNeedEntries {
		return domain.SleepNeedProfile{
			CalculatedNeed: cfg.DefaultSleepNeed,
			Confidence:     domain.ConfidenceLow,
			BasedOnDays:    len(entries),
			Method:         domain.NeedMethodDefault,
		}
	}

	// Method 1: free-day historical median.
	var freeDayTST []float64
	for _, e := range entries {
		if e.freeDay {
			freeDayTST = append(freeDayTST, e.hours)
		}
	}
	if len(freeDayTST) >= cfg.MinFreeDaySamples {
		confidence := domain.ConfidenceLow
		switch {
		case len(freeDayTST) >= 12:
			confidence = domain.ConfidenceHigh
		case len(freeDayTST) >= 6:
			confidence = domain.ConfidenceMedium
		}
		return domain.SleepNeedProfile{
			CalculatedNeed: clampNeed(Median(freeDayTST), cfg),
			Confidence:     confidence,
			BasedOnDays:    len(freeDayTST),
			Method:         domain.NeedMethodHistoricalMedian,
		}
	}

	// Method 2: satiation point from recovery scores.
	var paired []needEntry
	for _, e := range entries {
		if e.recovery > 0 {
			paired = append(paired, e)
		}
	}
	if len(paired) >= cfg.MinSatiationEntries {
		if need, ok := satiationPoint(paired, cfg); ok {
			confidence := domain.ConfidenceLow
			if len(paired) >= 2*cfg.MinSatiationEntries {
				confidence = domain.ConfidenceMedium
			}
			return domain.SleepNeedProfile{
				CalculatedNeed: need,
				Confidence:     confidence,
				BasedOnDays:    len(paired),
				Method:         domain.NeedMethodSatiationPoint,
			}
		}
	}

	// Method 3: median across all valid days.
	var allTST []float64
	for _, e := range entries {
		allTST = append(allTST, e.hours)
	}
	return domain.SleepNeedProfile{
		CalculatedNeed: clampNeed(Median(allTST), cfg),
		Confidence:     domain.ConfidenceLow,
		BasedOnDays:    len(allTST),
		Method:         domain.NeedMethodDefault,
	}
}

// satiationPoint buckets TST into fixed-width bins, averages recovery
// per bin, and picks the lowest bin whose mean recovery clears the
// target. The need is the bin midpoint plus a quarter hour.
func satiationPoint(entries []needEntry, cfg Config) (float64, bool) {
	type bucket struct {
		sum   float64
		count int
	}
	buckets := make(map[int]*bucket)
	for _, e := range entries {
		idx := int(math.Floor(e.hours / cfg.SatiationBucketHours))
		b := buckets[idx]
		if b == nil {
			b = &bucket{}
			buckets[idx] = b
		}
		b.sum += e.recovery
		b.count++
	}

	best := -1
	for idx, b := range buckets {
		if b.count < cfg.SatiationMinPerBucket {
			continue
		}
		if b.sum/float64(b.count) >= cfg.SatiationRecoveryMin {
			if best == -1 || idx < best {
				best = idx
			}
		}
	}
	if best == -1 {
		return 0, false
	}

	midpoint := (float64(best) + 0.5) * cfg.SatiationBucketHours
	return clampNeed(midpoint+0.25, cfg), true
}

// isFreeDayProxy reports whether the entry's date is a Friday, Saturday
// or Sunday: the night into a free morning, the standing proxy for
// alarm-free sleep.
func isFreeDayProxy(v domain.DailyVitals) bool {
	day, ok := v.Day()
	if !ok {
		return false
	}
	wd := day.Weekday()
	return wd == time.Friday || wd == time.Saturday || wd == time.Sunday
}

func clampNeed(hours float64, cfg Config) float64 {
	return RoundTo(Clamp(hours, cfg.MinSleepNeed, cfg.MaxSleepNeed), 1)
}
