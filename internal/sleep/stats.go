package sleep

import (
	"fmt"
	"math"
	"sort"
)

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Median returns the median, or 0 for an empty slice.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// StdDev returns the sample standard deviation, or 0 for fewer than
// two values.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	avg := Mean(values)
	sumSquares := 0.0
	for _, v := range values {
		diff := v - avg
		sumSquares += diff * diff
	}
	return math.Sqrt(sumSquares / float64(len(values)-1))
}

// Midnight-straddle detection bounds, in minutes after midnight.
// A sample set straddles midnight when some values fall before 03:00
// and others after 21:00.
const (
	earlyBandMinutes = 3 * 60
	lateBandMinutes  = 21 * 60
)

// MedianClockMinutes computes the median of clock times expressed as
// minutes after midnight, handling sets that straddle midnight. Early
// morning values are shifted by +24h before the median is taken, then
// the result is wrapped back into [0, 1440). Without the shift a set
// like {23:30, 00:15, 23:45} would yield a spurious midday median.
func MedianClockMinutes(minutes []float64) float64 {
	if len(minutes) == 0 {
		return 0
	}

	hasEarly := false
	hasLate := false
	for _, m := range minutes {
		if m < earlyBandMinutes {
			hasEarly = true
		}
		if m > lateBandMinutes {
			hasLate = true
		}
	}

	if !(hasEarly && hasLate) {
		return Median(minutes)
	}

	shifted := make([]float64, len(minutes))
	for i, m := range minutes {
		if m < earlyBandMinutes {
			m += 24 * 60
		}
		shifted[i] = m
	}
	return WrapClockMinutes(Median(shifted))
}

// WrapClockMinutes wraps a minutes-after-midnight value into [0, 1440).
func WrapClockMinutes(m float64) float64 {
	m = math.Mod(m, 24*60)
	if m < 0 {
		m += 24 * 60
	}
	return m
}

// WrapHour wraps a fractional hour into [0, 24).
func WrapHour(h float64) float64 {
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	return h
}

// ExpWeight returns the recency weight exp(-lambda*index) used by the
// debt engine; index 0 (yesterday) weighs 1.0.
func ExpWeight(lambda float64, index int) float64 {
	return math.Exp(-lambda * float64(index))
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}

// FormatClock renders a fractional hour as HH:MM, wrapping into a day.
func FormatClock(hour float64) string {
	minutes := int(math.Round(WrapHour(hour) * 60))
	minutes = ((minutes % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
