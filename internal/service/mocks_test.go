package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/noctura/circadian-api/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

// MockVitalsRepository is a mock implementation of VitalsRepository
type MockVitalsRepository struct {
	entries map[uuid.UUID]map[string]*domain.VitalsEntry
	err     error
}

func NewMockVitalsRepository() *MockVitalsRepository {
	return &MockVitalsRepository{
		entries: make(map[uuid.UUID]map[string]*domain.VitalsEntry),
	}
}

func (m *MockVitalsRepository) Upsert(ctx context.Context, entry *domain.VitalsEntry) error {
	if m.err != nil {
		return m.err
	}
	byDate, ok := m.entries[entry.UserID]
	if !ok {
		byDate = make(map[string]*domain.VitalsEntry)
		m.entries[entry.UserID] = byDate
	}
	if existing, ok := byDate[entry.Date]; ok {
		entry.ID = existing.ID
	} else if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.UpdatedAt = time.Now()
	byDate[entry.Date] = entry
	return nil
}

func (m *MockVitalsRepository) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.VitalsEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	entry, ok := m.entries[userID][date]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

func (m *MockVitalsRepository) sortedDesc(userID uuid.UUID) []domain.VitalsEntry {
	var result []domain.VitalsEntry
	for _, entry := range m.entries[userID] {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date > result[j].Date
	})
	return result
}

func (m *MockVitalsRepository) List(ctx context.Context, userID uuid.UUID, filter domain.VitalsFilter) ([]domain.VitalsEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.VitalsEntry
	for _, entry := range m.sortedDesc(userID) {
		if filter.From != "" && entry.Date < filter.From {
			continue
		}
		if filter.To != "" && entry.Date > filter.To {
			continue
		}
		result = append(result, entry)
	}
	return result, nil
}

func (m *MockVitalsRepository) ListByDateRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.VitalsEntry, error) {
	return m.List(ctx, userID, domain.VitalsFilter{From: from, To: to})
}

func (m *MockVitalsRepository) ListRecent(ctx context.Context, userID uuid.UUID, days int) ([]domain.VitalsEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := m.sortedDesc(userID)
	if len(result) > days {
		result = result[:days]
	}
	return result, nil
}

// MockInsightsLLM is a mock implementation of llm.InsightsLLM
type MockInsightsLLM struct {
	output     *domain.LLMInsightsOutput
	err        error
	lastInput  *domain.InsightsContext
	callCount  int
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	m.callCount++
	m.lastInput = insightsCtx
	if m.err != nil {
		return nil, m.err
	}
	if m.output != nil {
		return m.output, nil
	}
	return &domain.LLMInsightsOutput{
		Summary:      "Sleep balance looks stable.",
		Observations: []string{"Debt is low."},
		Guidance:     []string{"Keep the current schedule."},
	}, nil
}
