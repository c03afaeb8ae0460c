package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/noctura/circadian-api/internal/domain"
	"github.com/noctura/circadian-api/internal/repository"
	"github.com/noctura/circadian-api/internal/sleep"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ProfileService computes the circadian profile: chronotype markers and
// the workday/freeday classification.
type ProfileService interface {
	// Chronotype analyzes the user's recent history. A nil profile with
	// a nil error means the history is too short; callers present that
	// as an insufficient-data payload, not a failure.
	Chronotype(ctx context.Context, userID uuid.UUID, minDays int) (*domain.ChronotypeProfile, error)
	// DayClassification infers a day type for every weekday.
	DayClassification(ctx context.Context, userID uuid.UUID) (*domain.DayClassificationResult, error)
}

type profileService struct {
	vitals    VitalsService
	userRepo  repository.UserRepository
	engineCfg sleep.Config
}

func NewProfileService(vitals VitalsService, userRepo repository.UserRepository, engineCfg sleep.Config) ProfileService {
	return &profileService{
		vitals:    vitals,
		userRepo:  userRepo,
		engineCfg: engineCfg,
	}
}

func (s *profileService) Chronotype(ctx context.Context, userID uuid.UUID, minDays int) (*domain.ChronotypeProfile, error) {
	tracer := otel.Tracer("circadian-api/profile")
	ctx, span := tracer.Start(ctx, "ProfileService.Chronotype",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("chronotype.min_days", minDays),
		),
	)
	defer span.End()

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	history, err := s.vitals.History(ctx, userID, HistoryWindowDays)
	if err != nil {
		return nil, err
	}

	profile := sleep.AnalyzeChronotype(history, minDays, s.engineCfg)
	if profile == nil {
		span.SetAttributes(attribute.Bool("chronotype.insufficient_data", true))
		return nil, nil
	}

	span.SetAttributes(
		attribute.String("chronotype.type", string(profile.Chronotype)),
		attribute.Int("chronotype.based_on_days", profile.BasedOnDays),
	)
	if outputJSON, err := json.Marshal(profile); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return profile, nil
}

func (s *profileService) DayClassification(ctx context.Context, userID uuid.UUID) (*domain.DayClassificationResult, error) {
	tracer := otel.Tracer("circadian-api/profile")
	ctx, span := tracer.Start(ctx, "ProfileService.DayClassification",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	history, err := s.vitals.History(ctx, userID, HistoryWindowDays)
	if err != nil {
		return nil, err
	}

	result := sleep.ClassifyDays(history, s.engineCfg)
	span.SetAttributes(
		attribute.Int("classification.total_samples", result.Readiness.TotalSamples),
		attribute.Bool("classification.sufficient", result.Readiness.Sufficient),
	)

	return &result, nil
}
