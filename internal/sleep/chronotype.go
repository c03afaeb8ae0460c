package sleep

import (
	"github.com/noctura/circadian-api/internal/domain"
)

// AnalyzeChronotype derives the user's circadian profile from their
// vitals history, following the MCTQ-style protocol: median wake and
// sleep clock times over the most recent valid days, a nadir two hours
// before natural wake, the acrophase opposite the nadir, and a
// melatonin window ending at the median bedtime.
//
// Returns nil when fewer than minDays valid wake or sleep samples
// exist. That is the only failure mode and it is not an error: callers
// must treat nil as "insufficient data".
func AnalyzeChronotype(history []domain.DailyVitals, minDays int, cfg Config) *domain.ChronotypeProfile {
	if minDays <= 0 {
		minDays = cfg.MinChronotypeDays
	}

	var wakeMinutes, bedMinutes []float64
	for _, v := range sortedByDateDesc(history) {
		if len(wakeMinutes) >= cfg.ChronotypeWindowDays && len(bedMinutes) >= cfg.ChronotypeWindowDays {
			break
		}
		if !hasValidSleepWindow(v) {
			continue
		}
		if w, ok := wakeClockMinutes(v); ok && len(wakeMinutes) < cfg.ChronotypeWindowDays {
			wakeMinutes = append(wakeMinutes, w)
		}
		if b, ok := bedClockMinutes(v); ok && len(bedMinutes) < cfg.ChronotypeWindowDays {
			bedMinutes = append(bedMinutes, b)
		}
	}

	if len(wakeMinutes) < minDays || len(bedMinutes) < minDays {
		return nil
	}

	wakeHour := MedianClockMinutes(wakeMinutes) / 60
	sleepHour := MedianClockMinutes(bedMinutes) / 60

	nadirHour := WrapHour(wakeHour - cfg.NadirOffsetHours)
	acrophaseHour := WrapHour(nadirHour + 12)
	melatoninStart := WrapHour(sleepHour - cfg.MelatoninWindowHours)

	basedOn := len(wakeMinutes)
	if len(bedMinutes) < basedOn {
		basedOn = len(bedMinutes)
	}

	return &domain.ChronotypeProfile{
		AverageWakeTime:    FormatClock(wakeHour),
		AverageSleepTime:   FormatClock(sleepHour),
		WakeHour:           wakeHour,
		SleepHour:          sleepHour,
		CircadianNadir:     FormatClock(nadirHour),
		NadirHour:          nadirHour,
		CircadianAcrophase: FormatClock(acrophaseHour),
		AcrophaseHour:      acrophaseHour,
		MelatoninWindow: domain.ClockWindow{
			Start:     FormatClock(melatoninStart),
			End:       FormatClock(sleepHour),
			StartHour: melatoninStart,
			EndHour:   sleepHour,
		},
		Chronotype:  classifyChronotype(wakeHour, cfg),
		BasedOnDays: basedOn,
		Confidence:  chronotypeConfidence(basedOn, minDays),
	}
}

// classifyChronotype maps the median wake hour onto the chronotype
// bands. Boundaries come from the config, not call sites.
func classifyChronotype(wakeHour float64, cfg Config) domain.Chronotype {
	switch {
	case wakeHour < cfg.EarlyWakeHour:
		return domain.ChronotypeEarly
	case wakeHour > cfg.LateWakeHour:
		return domain.ChronotypeLate
	default:
		return domain.ChronotypeIntermediate
	}
}

// chronotypeConfidence grades the profile by sample count. The low
// branch is unreachable behind AnalyzeChronotype's nil gate but stays
// defined for callers reusing the helper with a lower minimum.
func chronotypeConfidence(basedOnDays, minDays int) domain.Confidence {
	switch {
	case basedOnDays >= 2*minDays:
		return domain.ConfidenceHigh
	case basedOnDays >= minDays:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}
