package sleep

import (
	"math"

	"github.com/noctura/circadian-api/internal/domain"
)

// CalculateDailyNeed decomposes tonight's total sleep need:
//
//	total = max(floor, baseline + strain + debt - naps)
//
// Strain converts yesterday's excess training load into extra need,
// capped at MaxStrainAddition. The debt addition reuses the debt
// engine's weighted-deficit figure (passed in via the context), capped
// at MaxDebtAddition. Nap minutes already taken subtract uncapped —
// they can push the total below baseline but never below the 6h
// biological floor.
func CalculateDailyNeed(baseline float64, needCtx domain.NeedContext, cfg Config) domain.DailyNeedBreakdown {
	if baseline <= 0 {
		baseline = cfg.DefaultSleepNeed
	}

	strain := 0.0
	if excess := needCtx.TrainingLoadYesterday - needCtx.TrainingLoadAverage; excess > 0 {
		strain = math.Min(excess*cfg.StrainMinutesPerLoad/60, cfg.MaxStrainAddition)
	}

	debtAdd := math.Min(math.Max(needCtx.CurrentDebtHours, 0), cfg.MaxDebtAddition)

	napSub := 0.0
	if needCtx.NapMinutesToday > 0 {
		napSub = needCtx.NapMinutesToday / 60
	}

	total := math.Max(cfg.MinSleepNeed, baseline+strain+debtAdd-napSub)

	return domain.DailyNeedBreakdown{
		Baseline:       RoundTo(baseline, 2),
		StrainAddition: RoundTo(strain, 2),
		DebtAddition:   RoundTo(debtAdd, 2),
		NapSubtraction: RoundTo(napSub, 2),
		TotalNeed:      RoundTo(total, 2),
		Context:        needCtx,
	}
}
