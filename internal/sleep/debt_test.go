package sleep

import (
	"testing"
	"time"

	"github.com/noctura/circadian-api/internal/domain"
)

func TestCalculateSleepDebt_EmptyHistory(t *testing.T) {
	cfg := DefaultConfig()
	got := CalculateSleepDebt(nil, 8.0, cfg)

	if got.TotalDebt != 0 {
		t.Errorf("TotalDebt = %v, want 0", got.TotalDebt)
	}
	if got.Category != domain.DebtCategoryLow {
		t.Errorf("Category = %q, want low", got.Category)
	}
	if len(got.DailyBreakdown) != 0 {
		t.Errorf("DailyBreakdown has %d entries, want 0", len(got.DailyBreakdown))
	}
}

func TestCalculateSleepDebt_SurplusNeverBanks(t *testing.T) {
	// Fourteen nights of 9h against an 8h need: every deviation is
	// negative and none of it may offset anything.
	cfg := DefaultConfig()
	history := vitalsRun("2024-03-20", 14, 23, 8, 9.0)

	got := CalculateSleepDebt(history, 8.0, cfg)

	if got.TotalDebt != 0 {
		t.Errorf("TotalDebt = %v, want 0 for all-surplus history", got.TotalDebt)
	}
	if got.PaybackNights != 0 {
		t.Errorf("PaybackNights = %d, want 0", got.PaybackNights)
	}
	for _, e := range got.DailyBreakdown {
		if e.Deviation >= 0 {
			t.Errorf("day %s Deviation = %v, want negative surplus", e.Date, e.Deviation)
		}
		if e.WeightedDebt != 0 {
			t.Errorf("day %s WeightedDebt = %v, want 0", e.Date, e.WeightedDebt)
		}
	}
}

func TestCalculateSleepDebt_AlternatingDeficitNights(t *testing.T) {
	// 6.0h and 8.5h on alternating nights against a 7.25h need. Only the
	// short nights accumulate: 1.25h weighted by recency.
	cfg := DefaultConfig()
	anchor, _ := time.Parse(domain.DateLayout, "2024-03-20")

	var history []domain.DailyVitals
	for i := 0; i < 14; i++ {
		tst := 8.5
		if i%2 == 0 {
			tst = 6.0
		}
		date := anchor.AddDate(0, 0, -i).Format(domain.DateLayout)
		history = append(history, vitalsDay(date, 23, 7, tst))
	}

	got := CalculateSleepDebt(history, 7.25, cfg)

	if got.TotalDebt != 2.0 {
		t.Errorf("TotalDebt = %v, want 2.0", got.TotalDebt)
	}
	if got.Category != domain.DebtCategoryLow {
		t.Errorf("Category = %q, want low", got.Category)
	}
	if got.PaybackNights != 2 {
		t.Errorf("PaybackNights = %d, want 2", got.PaybackNights)
	}
	if len(got.DailyBreakdown) != cfg.DebtWindowDays {
		t.Fatalf("DailyBreakdown has %d entries, want %d", len(got.DailyBreakdown), cfg.DebtWindowDays)
	}

	for i := 1; i < len(got.DailyBreakdown); i++ {
		if got.DailyBreakdown[i].Weight >= got.DailyBreakdown[i-1].Weight {
			t.Errorf("weight at index %d (%v) not below index %d (%v)",
				i, got.DailyBreakdown[i].Weight, i-1, got.DailyBreakdown[i-1].Weight)
		}
	}
	if got.DailyBreakdown[0].Date != "2024-03-20" {
		t.Errorf("breakdown[0].Date = %q, want the most recent entry date", got.DailyBreakdown[0].Date)
	}
}

func TestCalculateSleepDebt_MissingDaysImputedNeutral(t *testing.T) {
	cfg := DefaultConfig()
	anchor, _ := time.Parse(domain.DateLayout, "2024-03-20")

	history := []domain.DailyVitals{
		vitalsDay(anchor.Format(domain.DateLayout), 23, 7, 6.0),
		vitalsDay(anchor.AddDate(0, 0, -3).Format(domain.DateLayout), 23, 7, 6.5),
		vitalsDay(anchor.AddDate(0, 0, -5).Format(domain.DateLayout), 23, 7, 9.0),
	}

	got := CalculateSleepDebt(history, 8.0, cfg)

	if len(got.DailyBreakdown) != cfg.DebtWindowDays {
		t.Fatalf("DailyBreakdown has %d entries, want %d", len(got.DailyBreakdown), cfg.DebtWindowDays)
	}

	imputed := 0
	for _, e := range got.DailyBreakdown {
		if !e.Imputed {
			continue
		}
		imputed++
		if e.Deviation != 0 {
			t.Errorf("imputed day %s Deviation = %v, want 0", e.Date, e.Deviation)
		}
		if e.WeightedDebt != 0 {
			t.Errorf("imputed day %s WeightedDebt = %v, want 0", e.Date, e.WeightedDebt)
		}
		if e.TST != 8.0 {
			t.Errorf("imputed day %s TST = %v, want imputed need 8.0", e.Date, e.TST)
		}
	}
	if imputed != cfg.DebtWindowDays-3 {
		t.Errorf("imputed %d days, want %d", imputed, cfg.DebtWindowDays-3)
	}
	if got.TotalDebt <= 0 {
		t.Errorf("TotalDebt = %v, want positive from the two short nights", got.TotalDebt)
	}
}

func TestCalculateSleepDebt_MonotonicInDeficit(t *testing.T) {
	cfg := DefaultConfig()

	shallow := CalculateSleepDebt(vitalsRun("2024-03-20", 14, 23, 7, 7.0), 8.0, cfg)
	deep := CalculateSleepDebt(vitalsRun("2024-03-20", 14, 23, 7, 5.5), 8.0, cfg)

	if deep.TotalDebt <= shallow.TotalDebt {
		t.Errorf("deeper deficit debt %v not above shallower %v", deep.TotalDebt, shallow.TotalDebt)
	}
}

func TestDebtCategoryThresholds(t *testing.T) {
	tests := []struct {
		debt float64
		want domain.DebtCategory
	}{
		{debt: 0, want: domain.DebtCategoryLow},
		{debt: 2.0, want: domain.DebtCategoryLow},
		{debt: 2.1, want: domain.DebtCategoryModerate},
		{debt: 5.0, want: domain.DebtCategoryModerate},
		{debt: 5.1, want: domain.DebtCategoryHigh},
		{debt: 8.0, want: domain.DebtCategoryHigh},
		{debt: 8.1, want: domain.DebtCategoryCritical},
	}

	for _, tt := range tests {
		if got := debtCategory(tt.debt); got != tt.want {
			t.Errorf("debtCategory(%v) = %q, want %q", tt.debt, got, tt.want)
		}
	}
}

func TestCalculateSleepDebtWithPersonalizedNeed(t *testing.T) {
	cfg := DefaultConfig()
	history := vitalsRun("2024-03-20", 20, 23, 7, 7.0)

	explicit := 9.0
	withNeed := CalculateSleepDebtWithPersonalizedNeed(history, &explicit, cfg)
	if withNeed.SleepNeed != 9.0 {
		t.Errorf("SleepNeed = %v, want the supplied 9.0", withNeed.SleepNeed)
	}
	if withNeed.TotalDebt <= 0 {
		t.Errorf("TotalDebt = %v, want positive against a 9h need", withNeed.TotalDebt)
	}

	derived := CalculateSleepDebtWithPersonalizedNeed(history, nil, cfg)
	if derived.SleepNeed <= 0 {
		t.Errorf("derived SleepNeed = %v, want positive", derived.SleepNeed)
	}
}
