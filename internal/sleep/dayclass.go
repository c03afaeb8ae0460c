package sleep

import (
	"fmt"
	"time"

	"github.com/noctura/circadian-api/internal/domain"
)

// ClassifyDays infers a workday/freeday label for every weekday from
// the wake-time variance pattern: alarm-driven mornings are early and
// tightly clustered, free mornings are later and spread out. Weekdays
// without enough samples, or with an ambiguous pattern, fall back to
// the calendar (Saturday/Sunday = freeday).
//
// The returned map always covers all 7 weekdays.
func ClassifyDays(history []domain.DailyVitals, cfg Config) domain.DayClassificationResult {
	// Wake samples grouped by the weekday of the calendar date. The
	// weekday comes from the date string, not the wake timestamp, so a
	// wake just past local midnight cannot land on the wrong day.
	samples := make(map[time.Weekday][]float64)
	for _, v := range history {
		day, ok := v.Day()
		if !ok || !hasValidSleepWindow(v) {
			continue
		}
		w, ok := wakeClockMinutes(v)
		if !ok {
			continue
		}
		samples[day.Weekday()] = append(samples[day.Weekday()], w/60)
	}

	// Global mean wake hour across all weekdays with enough samples.
	var allMeans []float64
	for _, hours := range samples {
		if len(hours) >= cfg.MinWeekdaySamples {
			allMeans = append(allMeans, Mean(hours))
		}
	}
	globalMean := Mean(allMeans)

	result := domain.DayClassificationResult{
		Days:      make(domain.DayClassification, 7),
		Readiness: classificationReadiness(samples, cfg),
	}

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		hours := samples[wd]
		if len(hours) < cfg.MinWeekdaySamples {
			result.Days[wd] = calendarFallback(wd)
			continue
		}

		meanWake := Mean(hours)
		spreadMinutes := StdDev(hours) * 60

		dayType := calendarFallback(wd)
		if len(allMeans) > 0 {
			switch {
			case spreadMinutes < cfg.LowVarianceMinutes && meanWake < globalMean:
				dayType = domain.DayTypeWorkday
			case spreadMinutes > cfg.HighVarianceMinutes && meanWake > globalMean:
				dayType = domain.DayTypeFreeday
			}
		}

		result.Days[wd] = dayType
		result.Stats = append(result.Stats, domain.DayOfWeekStats{
			Weekday:         int(wd),
			MeanWakeHour:    RoundTo(meanWake, 2),
			VarianceMinutes: RoundTo(spreadMinutes, 1),
			SampleCount:     len(hours),
			InferredDayType: dayType,
		})
	}

	return result
}

// HasEnoughDataForClassification reports whether the history can
// support a variance-based classification: at least the configured
// number of wake samples spanning most weekdays. Advisory only.
func HasEnoughDataForClassification(history []domain.DailyVitals, cfg Config) domain.ClassificationReadiness {
	samples := make(map[time.Weekday][]float64)
	for _, v := range history {
		day, ok := v.Day()
		if !ok || !hasValidSleepWindow(v) {
			continue
		}
		if w, ok := wakeClockMinutes(v); ok {
			samples[day.Weekday()] = append(samples[day.Weekday()], w/60)
		}
	}
	return classificationReadiness(samples, cfg)
}

func classificationReadiness(samples map[time.Weekday][]float64, cfg Config) domain.ClassificationReadiness {
	total := 0
	for _, hours := range samples {
		total += len(hours)
	}

	r := domain.ClassificationReadiness{
		TotalSamples:     total,
		DistinctWeekdays: len(samples),
		Sufficient:       total >= cfg.MinClassifySamples && len(samples) >= cfg.MinClassifyWeekdays,
	}
	if !r.Sufficient {
		r.Recommendation = fmt.Sprintf(
			"Log at least %d nights covering %d different weekdays so work and free days can be detected automatically; calendar weekends are assumed until then.",
			cfg.MinClassifySamples, cfg.MinClassifyWeekdays)
	}
	return r
}

// calendarFallback is the default when the data cannot decide:
// weekends free, weekdays working.
func calendarFallback(wd time.Weekday) domain.DayType {
	if wd == time.Saturday || wd == time.Sunday {
		return domain.DayTypeFreeday
	}
	return domain.DayTypeWorkday
}
