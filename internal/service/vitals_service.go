package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/noctura/circadian-api/internal/domain"
	"github.com/noctura/circadian-api/internal/repository"
	"github.com/noctura/circadian-api/pkg/pagination"
)

// HistoryWindowDays caps how much history the engine endpoints load.
// The debt window is 14 days and the need calculator benefits from
// more, so two months covers every consumer.
const HistoryWindowDays = 60

// VitalsService ingests and serves daily vitals entries.
type VitalsService interface {
	Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertVitalsRequest) (*domain.VitalsEntry, error)
	GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.VitalsEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.VitalsFilter) (*domain.VitalsListResponse, error)
	// History returns the engine's input: recent entries converted to
	// DailyVitals, newest first.
	History(ctx context.Context, userID uuid.UUID, days int) ([]domain.DailyVitals, error)
}

type vitalsService struct {
	vitalsRepo repository.VitalsRepository
	userRepo   repository.UserRepository
}

func NewVitalsService(vitalsRepo repository.VitalsRepository, userRepo repository.UserRepository) VitalsService {
	return &vitalsService{
		vitalsRepo: vitalsRepo,
		userRepo:   userRepo,
	}
}

func (s *vitalsService) Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertVitalsRequest) (*domain.VitalsEntry, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	timezone := user.Timezone
	if req.Timezone != nil && *req.Timezone != "" {
		timezone = *req.Timezone
	}

	entry := &domain.VitalsEntry{
		ID:            uuid.New(),
		UserID:        userID,
		Date:          req.Date,
		SleepStart:    int64(req.SleepStart),
		SleepEnd:      int64(req.SleepEnd),
		DeepMinutes:   req.DeepMinutes,
		RemMinutes:    req.RemMinutes,
		LightMinutes:  req.LightMinutes,
		AwakeMinutes:  req.AwakeMinutes,
		SleepScore:    req.SleepScore,
		RecoveryScore: req.RecoveryScore,
		Timezone:      timezone,
	}

	if err := s.vitalsRepo.Upsert(ctx, entry); err != nil {
		return nil, err
	}

	// The upsert may have kept the existing row's ID; read it back so
	// the response carries the stored identity.
	stored, err := s.vitalsRepo.GetByDate(ctx, userID, req.Date)
	if err != nil {
		return entry, nil
	}
	return stored, nil
}

func (s *vitalsService) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.VitalsEntry, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return s.vitalsRepo.GetByDate(ctx, userID, date)
}

func (s *vitalsService) List(ctx context.Context, userID uuid.UUID, filter domain.VitalsFilter) (*domain.VitalsListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	entries, err := s.vitalsRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(entries) > limit
	if hasMore {
		entries = entries[:limit]
	}

	resp := &domain.VitalsListResponse{
		Data: make([]domain.VitalsResponse, 0, len(entries)),
	}
	for i := range entries {
		resp.Data = append(resp.Data, entries[i].ToResponse())
	}
	resp.Pagination.HasMore = hasMore

	if hasMore && len(entries) > 0 {
		last := entries[len(entries)-1]
		cursor := pagination.Cursor{ID: last.ID, Date: last.Date}
		resp.Pagination.NextCursor = cursor.Encode()
	}

	return resp, nil
}

func (s *vitalsService) History(ctx context.Context, userID uuid.UUID, days int) ([]domain.DailyVitals, error) {
	if days <= 0 {
		days = HistoryWindowDays
	}

	entries, err := s.vitalsRepo.ListRecent(ctx, userID, days)
	if err != nil {
		return nil, err
	}

	history := make([]domain.DailyVitals, 0, len(entries))
	for i := range entries {
		history = append(history, entries[i].ToDailyVitals())
	}
	return history, nil
}
