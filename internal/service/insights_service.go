package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/noctura/circadian-api/internal/domain"
	"github.com/noctura/circadian-api/internal/langfuse"
	"github.com/noctura/circadian-api/internal/llm"
	"github.com/noctura/circadian-api/internal/repository"
	"github.com/noctura/circadian-api/internal/sleep"
)

// InsightsService bundles the engine outputs and turns them into
// LLM-generated guidance.
type InsightsService interface {
	// Generate creates circadian insights for a user.
	Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
	// Feedback attaches a user rating to a previously returned trace.
	Feedback(ctx context.Context, traceID string, score float64, comment string) error
}

type insightsService struct {
	profileService ProfileService
	balanceService BalanceService
	energyService  EnergyService
	llmClient      llm.InsightsLLM
	langfuseClient langfuse.Client
	userRepo       repository.UserRepository
	engineCfg      sleep.Config
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(
	profileService ProfileService,
	balanceService BalanceService,
	energyService EnergyService,
	llmClient llm.InsightsLLM,
	langfuseClient langfuse.Client,
	userRepo repository.UserRepository,
	engineCfg sleep.Config,
) InsightsService {
	return &insightsService{
		profileService: profileService,
		balanceService: balanceService,
		energyService:  energyService,
		llmClient:      llmClient,
		langfuseClient: langfuseClient,
		userRepo:       userRepo,
		engineCfg:      engineCfg,
	}
}

func (s *insightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	// Chronotype may legitimately be nil for new users; the remaining
	// figures still carry signal, so generation proceeds without it.
	chronotype, err := s.profileService.Chronotype(ctx, userID, s.engineCfg.MinChronotypeDays)
	if err != nil {
		return nil, err
	}

	need, err := s.balanceService.SleepNeed(ctx, userID)
	if err != nil {
		return nil, err
	}

	debt, err := s.balanceService.SleepDebt(ctx, userID)
	if err != nil {
		return nil, err
	}

	var energySummary *domain.EnergySummary
	if chronotype != nil {
		curve, err := s.energyService.Curve(ctx, userID, time.Now(), nil)
		if err != nil {
			return nil, err
		}
		if curve != nil {
			energySummary = &domain.EnergySummary{
				CurrentEnergy:    curve.CurrentEnergy,
				CurrentZone:      curve.CurrentZone,
				NextPeak:         curve.NextPeak,
				NextDip:          curve.NextDip,
				MelatoninWindow:  curve.MelatoninWindow,
				SleepDebtPenalty: curve.SleepDebtPenalty,
			}
		}
	}

	insightsCtx := &domain.InsightsContext{
		Chronotype: chronotype,
		SleepNeed:  *need,
		SleepDebt:  *debt,
		Energy:     energySummary,
	}

	llmOutput, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	response := &domain.InsightsResponse{
		Chronotype: chronotype,
		SleepNeed:  *need,
		SleepDebt:  *debt,
		Insights:   *llmOutput,
	}

	// Record the full exchange in Langfuse; the returned trace ID lets
	// the feedback endpoint attach a score later.
	if s.langfuseClient != nil && s.langfuseClient.IsEnabled() {
		traceID, err := s.langfuseClient.CreateTrace(ctx, langfuse.TraceInput{
			UserID: userID.String(),
			Name:   "circadian-insights",
			Input:  insightsCtx,
			Output: llmOutput,
			Tags:   []string{"circadian-api", "insights"},
		})
		if err == nil {
			response.TraceID = traceID
		}
	}

	return response, nil
}

func (s *insightsService) Feedback(ctx context.Context, traceID string, score float64, comment string) error {
	if s.langfuseClient == nil || !s.langfuseClient.IsEnabled() {
		return nil
	}
	return s.langfuseClient.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: traceID,
		Name:    "user_rating",
		Value:   score,
		Comment: comment,
	})
}
