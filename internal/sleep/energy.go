package sleep

import (
	"math"
	"time"

	"github.com/noctura/circadian-api/internal/domain"
)

// Two-process model of sleep regulation (Borbély): Process S is the
// homeostatic sleep pressure that builds during wakefulness and drains
// during sleep; Process C is the ~24h circadian oscillator. Predicted
// energy combines the two, with circadian phase setting the ceiling and
// sleep pressure eroding it.

// ProcessS returns the homeostatic pressure after hoursAwake of
// wakefulness, rising asymptotically from s0 toward 1.
func ProcessS(hoursAwake, s0 float64, cfg Config) float64 {
	if hoursAwake < 0 {
		hoursAwake = 0
	}
	s := 1 - (1-s0)*math.Exp(-hoursAwake/cfg.TauRise)
	return Clamp(s, 0, 1)
}

// ProcessSDecay returns the pressure after hoursAsleep of sleep,
// decaying exponentially from s0.
func ProcessSDecay(hoursAsleep, s0 float64, cfg Config) float64 {
	if hoursAsleep < 0 {
		hoursAsleep = 0
	}
	return Clamp(s0*math.Exp(-hoursAsleep/cfg.TauDecay), 0, 1)
}

// ProcessC evaluates the circadian oscillator at the given local hour,
// phase-shifted so the waveform's minimum falls on nadirHour, and
// normalized to [0, 1].
func ProcessC(hour, nadirHour float64, cfg Config) float64 {
	phase := circadianPhase(nadirHour, cfg)
	raw := circadianRaw(hour+phase, cfg)

	amplitude := 0.0
	for _, a := range cfg.Harmonics {
		amplitude += a
	}
	if amplitude == 0 {
		return 0.5
	}
	return Clamp((raw/amplitude+1)/2, 0, 1)
}

// circadianRaw is the unshifted 5-harmonic sum at hour t.
func circadianRaw(t float64, cfg Config) float64 {
	sum := 0.0
	for k, a := range cfg.Harmonics {
		sum += a * math.Sin(2*math.Pi*float64(k+1)/24*t)
	}
	return sum
}

// circadianPhase solves for the shift that puts the waveform's minimum
// exactly on the nadir. The unshifted argmin is located by a fine scan
// (the harmonic sum has no closed-form minimum); the phase is then the
// offset between that argmin and the requested nadir.
func circadianPhase(nadirHour float64, cfg Config) float64 {
	const step = 1.0 / 60 // one-minute resolution

	argmin := 0.0
	minVal := math.Inf(1)
	for t := 0.0; t < 24; t += step {
		if v := circadianRaw(t, cfg); v < minVal {
			minVal = v
			argmin = t
		}
	}
	return WrapHour(argmin - nadirHour)
}

// Energy synthesizes predicted energy from the two processes, clamped
// to [0, 100].
func Energy(s, c float64, cfg Config) float64 {
	return Clamp(cfg.EnergyBase+cfg.CircadianGain*c-cfg.PressureGain*s, 0, 100)
}

// DebtPenalty converts accumulated debt hours into a percentage energy
// penalty, capped.
func DebtPenalty(debtHours float64, cfg Config) float64 {
	if debtHours < 0 {
		debtHours = 0
	}
	return math.Min(debtHours*cfg.DebtPenaltyRate, cfg.DebtPenaltyMax)
}

// Nap is a declared or detected daytime sleep episode on the curve's
// day, in local fractional hours.
type Nap struct {
	StartHour float64
	EndHour   float64
}

// GenerateEnergyCurve produces the 24-hour predicted-energy curve for
// the day containing now: 96 points at 15-minute spacing from local
// midnight. The curve is anchored to the profile's natural wake time;
// naps reduce Process S for every point after they end.
func GenerateEnergyCurve(profile domain.ChronotypeProfile, debtHours float64, now time.Time, naps []Nap, cfg Config) domain.EnergyCurve {
	step := float64(cfg.CurveStepMinutes) / 60
	pointCount := int(24 / step)

	penalty := DebtPenalty(debtHours, cfg)
	points := make([]domain.CircadianPoint, 0, pointCount)

	// Base walk: pressure accumulates from the natural wake time.
	sValues := make([]float64, pointCount)
	for i := 0; i < pointCount; i++ {
		hour := float64(i) * step
		sValues[i] = ProcessS(hour-profile.WakeHour, cfg.MorningPressure, cfg)
	}

	// Nap overlay: decay S across each nap, then re-walk every point
	// after nap end as if wakefulness resumed from the reduced value.
	for _, nap := range naps {
		if nap.EndHour <= nap.StartHour {
			continue
		}
		startIdx := int(math.Ceil(nap.StartHour / step))
		if startIdx < 0 {
			startIdx = 0
		}
		if startIdx >= pointCount {
			continue
		}

		sAtNapStart := sValues[startIdx]
		for i := startIdx; i < pointCount; i++ {
			hour := float64(i) * step
			switch {
			case hour < nap.EndHour:
				sValues[i] = ProcessSDecay(hour-nap.StartHour, sAtNapStart, cfg)
			default:
				postNap := ProcessSDecay(nap.EndHour-nap.StartHour, sAtNapStart, cfg)
				sValues[i] = ProcessS(hour-nap.EndHour, postNap, cfg)
			}
		}
	}

	for i := 0; i < pointCount; i++ {
		hour := float64(i) * step
		c := ProcessC(hour, profile.NadirHour, cfg)
		energy := Energy(sValues[i], c, cfg)
		adjusted := energy * (1 - penalty/100)

		points = append(points, domain.CircadianPoint{
			Time:     FormatClock(hour),
			Hour:     hour,
			ProcessS: RoundTo(sValues[i], 4),
			ProcessC: RoundTo(c, 4),
			Energy:   RoundTo(adjusted, 1),
			Zone:     classifyZone(hour, adjusted, profile, cfg),
		})
	}

	nowHour := float64(now.Hour()) + float64(now.Minute())/60
	currentIdx := nearestPointIndex(nowHour, step, pointCount)

	curve := domain.EnergyCurve{
		Points:           points,
		CurrentEnergy:    points[currentIdx].Energy,
		CurrentZone:      points[currentIdx].Zone,
		MelatoninWindow:  profile.MelatoninWindow,
		WakeTime:         profile.AverageWakeTime,
		SleepDebtPenalty: RoundTo(penalty, 1),
	}

	if peak, ok := nextExtremum(points, currentIdx, true); ok {
		curve.NextPeak = peak
	}
	if dip, ok := nextExtremum(points, currentIdx, false); ok {
		curve.NextDip = dip
	}

	return curve
}

// classifyZone applies the zone rules in precedence order: the sleep
// window wins over everything, then peak, dip, melatonin wind-down,
// and finally rising.
func classifyZone(hour, energy float64, profile domain.ChronotypeProfile, cfg Config) domain.EnergyZone {
	if inClockWindow(hour, profile.SleepHour, profile.WakeHour) {
		return domain.ZoneSleep
	}
	if energy >= cfg.PeakEnergy {
		return domain.ZonePeak
	}
	if energy <= cfg.DipEnergy {
		return domain.ZoneDip
	}
	if inClockWindow(hour, profile.MelatoninWindow.StartHour, profile.MelatoninWindow.EndHour) {
		return domain.ZoneWindDown
	}
	return domain.ZoneRising
}

// inClockWindow reports whether hour lies in [start, end), treating
// start > end as a window that wraps midnight.
func inClockWindow(hour, start, end float64) bool {
	if start == end {
		return false
	}
	if start < end {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}

// nearestPointIndex locates the curve point closest to the given hour.
func nearestPointIndex(hour, step float64, pointCount int) int {
	idx := int(math.Round(hour / step))
	if idx < 0 {
		idx = 0
	}
	if idx >= pointCount {
		idx = pointCount - 1
	}
	return idx
}

// nextExtremum scans strictly after the current point for the first
// local maximum (or minimum): a point higher (lower) than both
// neighbors. When no strict extremum exists in the remaining window it
// falls back to the global max (min) of that window.
func nextExtremum(points []domain.CircadianPoint, currentIdx int, findMax bool) (string, bool) {
	if currentIdx >= len(points)-2 {
		return "", false
	}

	for i := currentIdx + 1; i < len(points)-1; i++ {
		prev, cur, next := points[i-1].Energy, points[i].Energy, points[i+1].Energy
		if findMax && cur > prev && cur > next {
			return points[i].Time, true
		}
		if !findMax && cur < prev && cur < next {
			return points[i].Time, true
		}
	}

	bestIdx := currentIdx + 1
	for i := currentIdx + 1; i < len(points); i++ {
		if findMax && points[i].Energy > points[bestIdx].Energy {
			bestIdx = i
		}
		if !findMax && points[i].Energy < points[bestIdx].Energy {
			bestIdx = i
		}
	}
	return points[bestIdx].Time, true
}
