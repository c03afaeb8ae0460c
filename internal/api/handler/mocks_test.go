package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/noctura/circadian-api/internal/domain"
	"github.com/noctura/circadian-api/internal/sleep"
)

// MockVitalsService is a mock implementation of VitalsService
type MockVitalsService struct {
	upsertFunc    func(ctx context.Context, userID uuid.UUID, req *domain.UpsertVitalsRequest) (*domain.VitalsEntry, error)
	getByDateFunc func(ctx context.Context, userID uuid.UUID, date string) (*domain.VitalsEntry, error)
	listFunc      func(ctx context.Context, userID uuid.UUID, filter domain.VitalsFilter) (*domain.VitalsListResponse, error)
}

func (m *MockVitalsService) Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertVitalsRequest) (*domain.VitalsEntry, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, userID, req)
	}
	return &domain.VitalsEntry{
		ID:           uuid.New(),
		UserID:       userID,
		Date:         req.Date,
		LightMinutes: req.LightMinutes,
		Timezone:     "UTC",
		UpdatedAt:    time.Now(),
	}, nil
}

func (m *MockVitalsService) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.VitalsEntry, error) {
	if m.getByDateFunc != nil {
		return m.getByDateFunc(ctx, userID, date)
	}
	return nil, domain.ErrNotFound
}

func (m *MockVitalsService) List(ctx context.Context, userID uuid.UUID, filter domain.VitalsFilter) (*domain.VitalsListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.VitalsListResponse{
		Data:       []domain.VitalsResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockVitalsService) History(ctx context.Context, userID uuid.UUID, days int) ([]domain.DailyVitals, error) {
	return nil, nil
}

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	chronotypeFunc     func(ctx context.Context, userID uuid.UUID, minDays int) (*domain.ChronotypeProfile, error)
	classificationFunc func(ctx context.Context, userID uuid.UUID) (*domain.DayClassificationResult, error)
}

func (m *MockProfileService) Chronotype(ctx context.Context, userID uuid.UUID, minDays int) (*domain.ChronotypeProfile, error) {
	if m.chronotypeFunc != nil {
		return m.chronotypeFunc(ctx, userID, minDays)
	}
	return sampleChronotype(), nil
}

func (m *MockProfileService) DayClassification(ctx context.Context, userID uuid.UUID) (*domain.DayClassificationResult, error) {
	if m.classificationFunc != nil {
		return m.classificationFunc(ctx, userID)
	}
	days := make(domain.DayClassification, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if wd == time.Saturday || wd == time.Sunday {
			days[wd] = domain.DayTypeFreeday
		} else {
			days[wd] = domain.DayTypeWorkday
		}
	}
	return &domain.DayClassificationResult{
		Days:      days,
		Readiness: domain.ClassificationReadiness{Sufficient: true, TotalSamples: 28, DistinctWeekdays: 7},
	}, nil
}

// MockBalanceService is a mock implementation of BalanceService
type MockBalanceService struct {
	needFunc  func(ctx context.Context, userID uuid.UUID) (*domain.SleepNeedProfile, error)
	debtFunc  func(ctx context.Context, userID uuid.UUID) (*domain.SleepDebtResult, error)
	todayFunc func(ctx context.Context, userID uuid.UUID, needCtx domain.NeedContext) (*domain.DailyNeedBreakdown, error)
}

func (m *MockBalanceService) SleepNeed(ctx context.Context, userID uuid.UUID) (*domain.SleepNeedProfile, error) {
	if m.needFunc != nil {
		return m.needFunc(ctx, userID)
	}
	return &domain.SleepNeedProfile{
		CalculatedNeed: 7.8,
		Confidence:     domain.ConfidenceMedium,
		BasedOnDays:    9,
		Method:         domain.NeedMethodHistoricalMedian,
	}, nil
}

func (m *MockBalanceService) SleepDebt(ctx context.Context, userID uuid.UUID) (*domain.SleepDebtResult, error) {
	if m.debtFunc != nil {
		return m.debtFunc(ctx, userID)
	}
	return &domain.SleepDebtResult{
		TotalDebt: 1.2,
		Category:  domain.DebtCategoryLow,
		SleepNeed: 7.8,
	}, nil
}

func (m *MockBalanceService) TodayNeed(ctx context.Context, userID uuid.UUID, needCtx domain.NeedContext) (*domain.DailyNeedBreakdown, error) {
	if m.todayFunc != nil {
		return m.todayFunc(ctx, userID, needCtx)
	}
	return &domain.DailyNeedBreakdown{
		Baseline:  7.8,
		TotalNeed: 7.8,
		Context:   needCtx,
	}, nil
}

// MockEnergyService is a mock implementation of EnergyService
type MockEnergyService struct {
	curveFunc func(ctx context.Context, userID uuid.UUID, now time.Time, naps []sleep.Nap) (*domain.EnergyCurve, error)
	lastNaps  []sleep.Nap
}

func (m *MockEnergyService) Curve(ctx context.Context, userID uuid.UUID, now time.Time, naps []sleep.Nap) (*domain.EnergyCurve, error) {
	m.lastNaps = naps
	if m.curveFunc != nil {
		return m.curveFunc(ctx, userID, now, naps)
	}
	return sampleCurve(), nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
	feedbackFunc func(ctx context.Context, traceID string, score float64, comment string) error
	feedbacks    int
}

func (m *MockInsightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return &domain.InsightsResponse{
		Chronotype: sampleChronotype(),
		SleepNeed:  domain.SleepNeedProfile{CalculatedNeed: 7.8, Method: domain.NeedMethodHistoricalMedian},
		SleepDebt:  domain.SleepDebtResult{TotalDebt: 1.2, Category: domain.DebtCategoryLow},
		Insights: domain.LLMInsightsOutput{
			Summary:      "Your sleep balance is steady.",
			Observations: []string{"Consistent wake times around 06:30."},
			Guidance:     []string{"Keep the current schedule."},
		},
	}, nil
}

func (m *MockInsightsService) Feedback(ctx context.Context, traceID string, score float64, comment string) error {
	m.feedbacks++
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, traceID, score, comment)
	}
	return nil
}

// withURLParams attaches chi URL params to a test request.
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func sampleChronotype() *domain.ChronotypeProfile {
	return &domain.ChronotypeProfile{
		AverageWakeTime:    "06:30",
		AverageSleepTime:   "23:00",
		WakeHour:           6.5,
		SleepHour:          23.0,
		CircadianNadir:     "04:30",
		NadirHour:          4.5,
		CircadianAcrophase: "16:30",
		AcrophaseHour:      16.5,
		Chronotype:         domain.ChronotypeIntermediate,
		BasedOnDays:        14,
		Confidence:         domain.ConfidenceHigh,
	}
}

func sampleCurve() *domain.EnergyCurve {
	points := make([]domain.CircadianPoint, 96)
	for i := range points {
		points[i] = domain.CircadianPoint{Hour: float64(i) * 0.25, Energy: 50, Zone: domain.ZoneRising}
	}
	return &domain.EnergyCurve{
		Points:        points,
		CurrentEnergy: 50,
		CurrentZone:   domain.ZoneRising,
		WakeTime:      "06:30",
	}
}
