package sleep

import (
	"math"
	"time"

	"github.com/noctura/circadian-api/internal/domain"
)

// CalculateSleepDebt accumulates the rolling sleep debt over the most
// recent DebtWindowDays, exponentially weighted so yesterday counts
// most. Two modeling rules are deliberate and must be preserved:
//
//   - Only deficits accumulate. Surplus nights appear in the breakdown
//     with their negative deviation but contribute zero to the total —
//     extra sleep does not bank against future debt.
//   - Days without sleep data are imputed as exactly meeting the need,
//     contributing zero deviation either way.
//
// The window is anchored to the day before the most recent entry date
// (index 0 = yesterday).
func CalculateSleepDebt(history []domain.DailyVitals, sleepNeed float64, cfg Config) domain.SleepDebtResult {
	byDate := make(map[string]domain.DailyVitals, len(history))
	latest := ""
	for _, v := range history {
		if _, ok := v.Day(); !ok {
			continue
		}
		byDate[v.Date] = v
		if v.Date > latest {
			latest = v.Date
		}
	}

	result := domain.SleepDebtResult{
		SleepNeed:      sleepNeed,
		DailyBreakdown: make([]domain.DailyDebtEntry, 0, cfg.DebtWindowDays),
	}

	if latest == "" {
		result.Category = debtCategory(0)
		return result
	}

	anchor, _ := time.Parse(domain.DateLayout, latest)

	total := 0.0
	for i := 0; i < cfg.DebtWindowDays; i++ {
		date := anchor.AddDate(0, 0, -i).Format(domain.DateLayout)
		weight := ExpWeight(cfg.DebtDecayLambda, i)

		entry := domain.DailyDebtEntry{
			Date:   date,
			Need:   sleepNeed,
			Weight: RoundTo(weight, 4),
		}

		tst, ok := 0.0, false
		if v, exists := byDate[date]; exists {
			tst, ok = totalSleepHours(v)
		}
		if !ok {
			// Neutral imputation: the day neither adds nor repays debt.
			entry.TST = sleepNeed
			entry.Deviation = 0
			entry.Imputed = true
		} else {
			entry.TST = RoundTo(tst, 2)
			entry.Deviation = RoundTo(sleepNeed-tst, 2)
		}

		if entry.Deviation > 0 {
			entry.WeightedDebt = RoundTo(entry.Deviation*weight, 3)
			total += entry.Deviation * weight
		}

		result.DailyBreakdown = append(result.DailyBreakdown, entry)
	}

	if total < 0 {
		total = 0
	}
	result.TotalDebt = RoundTo(total, 1)
	result.Category = debtCategory(result.TotalDebt)
	result.PaybackNights = int(math.Ceil(result.TotalDebt))
	return result
}

// CalculateSleepDebtWithPersonalizedNeed is the simplified variant:
// when no need is supplied it derives one from the same history first.
func CalculateSleepDebtWithPersonalizedNeed(history []domain.DailyVitals, personalizedNeed *float64, cfg Config) domain.SleepDebtResult {
	need := 0.0
	if personalizedNeed != nil && *personalizedNeed > 0 {
		need = *personalizedNeed
	} else {
		need = CalculateSleepNeed(history, cfg).CalculatedNeed
	}
	return CalculateSleepDebt(history, need, cfg)
}

// Category thresholds in hours of weighted debt. Payback assumes one
// extra hour of sleep per night.
func debtCategory(totalDebt float64) domain.DebtCategory {
	switch {
	case totalDebt <= 2:
		return domain.DebtCategoryLow
	case totalDebt <= 5:
		return domain.DebtCategoryModerate
	case totalDebt <= 8:
		return domain.DebtCategoryHigh
	default:
		return domain.DebtCategoryCritical
	}
}
