package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/noctura/circadian-api/internal/domain"
	"github.com/noctura/circadian-api/internal/repository"
	"github.com/noctura/circadian-api/internal/sleep"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// EnergyService generates the 24-hour predicted-energy curve.
type EnergyService interface {
	// Curve builds the curve for the day containing now, in the user's
	// timezone. A nil curve with a nil error means the chronotype
	// history is too short to anchor the model.
	Curve(ctx context.Context, userID uuid.UUID, now time.Time, naps []sleep.Nap) (*domain.EnergyCurve, error)
}

type energyService struct {
	vitals    VitalsService
	profile   ProfileService
	userRepo  repository.UserRepository
	engineCfg sleep.Config
	minDays   int
}

func NewEnergyService(vitals VitalsService, profile ProfileService, userRepo repository.UserRepository, engineCfg sleep.Config, minDays int) EnergyService {
	if minDays <= 0 {
		minDays = engineCfg.MinChronotypeDays
	}
	return &energyService{
		vitals:    vitals,
		profile:   profile,
		userRepo:  userRepo,
		engineCfg: engineCfg,
		minDays:   minDays,
	}
}

func (s *energyService) Curve(ctx context.Context, userID uuid.UUID, now time.Time, naps []sleep.Nap) (*domain.EnergyCurve, error) {
	tracer := otel.Tracer("circadian-api/energy")
	ctx, span := tracer.Start(ctx, "EnergyService.Curve",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("naps.count", len(naps)),
		),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profile.Chronotype(ctx, userID, s.minDays)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		span.SetAttributes(attribute.Bool("energy.insufficient_data", true))
		return nil, nil
	}

	history, err := s.vitals.History(ctx, userID, HistoryWindowDays)
	if err != nil {
		return nil, err
	}
	debt := sleep.CalculateSleepDebtWithPersonalizedNeed(history, nil, s.engineCfg)

	// Local wall clock decides which curve point is "now".
	loc := time.UTC
	if user.Timezone != "" {
		if l, err := time.LoadLocation(user.Timezone); err == nil {
			loc = l
		}
	}
	curve := sleep.GenerateEnergyCurve(*profile, debt.TotalDebt, now.In(loc), naps, s.engineCfg)

	span.SetAttributes(
		attribute.Float64("energy.current", curve.CurrentEnergy),
		attribute.String("energy.zone", string(curve.CurrentZone)),
		attribute.Float64("energy.debt_penalty", curve.SleepDebtPenalty),
	)

	return &curve, nil
}
