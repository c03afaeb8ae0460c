package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/noctura/circadian-api/internal/domain"
	"github.com/noctura/circadian-api/internal/repository"
	"github.com/noctura/circadian-api/internal/sleep"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// BalanceService computes the sleep balance figures: personalized need,
// rolling debt, and tonight's adjusted need.
type BalanceService interface {
	SleepNeed(ctx context.Context, userID uuid.UUID) (*domain.SleepNeedProfile, error)
	SleepDebt(ctx context.Context, userID uuid.UUID) (*domain.SleepDebtResult, error)
	// TodayNeed decomposes tonight's need. When the context carries no
	// debt figure the current rolling debt is filled in.
	TodayNeed(ctx context.Context, userID uuid.UUID, needCtx domain.NeedContext) (*domain.DailyNeedBreakdown, error)
}

type balanceService struct {
	vitals    VitalsService
	userRepo  repository.UserRepository
	engineCfg sleep.Config
}

func NewBalanceService(vitals VitalsService, userRepo repository.UserRepository, engineCfg sleep.Config) BalanceService {
	return &balanceService{
		vitals:    vitals,
		userRepo:  userRepo,
		engineCfg: engineCfg,
	}
}

func (s *balanceService) SleepNeed(ctx context.Context, userID uuid.UUID) (*domain.SleepNeedProfile, error) {
	tracer := otel.Tracer("circadian-api/balance")
	ctx, span := tracer.Start(ctx, "BalanceService.SleepNeed",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	history, err := s.history(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := sleep.CalculateSleepNeed(history, s.engineCfg)
	span.SetAttributes(
		attribute.Float64("need.hours", profile.CalculatedNeed),
		attribute.String("need.method", string(profile.Method)),
		attribute.String("need.confidence", string(profile.Confidence)),
	)

	return &profile, nil
}

func (s *balanceService) SleepDebt(ctx context.Context, userID uuid.UUID) (*domain.SleepDebtResult, error) {
	tracer := otel.Tracer("circadian-api/balance")
	ctx, span := tracer.Start(ctx, "BalanceService.SleepDebt",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	history, err := s.history(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := sleep.CalculateSleepDebtWithPersonalizedNeed(history, nil, s.engineCfg)
	span.SetAttributes(
		attribute.Float64("debt.total_hours", result.TotalDebt),
		attribute.String("debt.category", string(result.Category)),
	)

	return &result, nil
}

func (s *balanceService) TodayNeed(ctx context.Context, userID uuid.UUID, needCtx domain.NeedContext) (*domain.DailyNeedBreakdown, error) {
	tracer := otel.Tracer("circadian-api/balance")
	ctx, span := tracer.Start(ctx, "BalanceService.TodayNeed",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	history, err := s.history(ctx, userID)
	if err != nil {
		return nil, err
	}

	needProfile := sleep.CalculateSleepNeed(history, s.engineCfg)

	if needCtx.CurrentDebtHours <= 0 {
		debt := sleep.CalculateSleepDebt(history, needProfile.CalculatedNeed, s.engineCfg)
		needCtx.CurrentDebtHours = debt.TotalDebt
	}

	breakdown := sleep.CalculateDailyNeed(needProfile.CalculatedNeed, needCtx, s.engineCfg)
	span.SetAttributes(attribute.Float64("need.today_hours", breakdown.TotalNeed))

	return &breakdown, nil
}

func (s *balanceService) history(ctx context.Context, userID uuid.UUID) ([]domain.DailyVitals, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return s.vitals.History(ctx, userID, HistoryWindowDays)
}
