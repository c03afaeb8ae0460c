package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/noctura/circadian-api/internal/domain"
)

func TestCircadianHandler_GetChronotype(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		userID         string
		query          string
		mockService    *MockProfileService
		wantStatusCode int
	}{
		{
			name:           "profile available",
			userID:         userID.String(),
			mockService:    &MockProfileService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid user ID",
			userID:         "nope",
			mockService:    &MockProfileService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "min_days out of range",
			userID:         userID.String(),
			query:          "?min_days=400",
			mockService:    &MockProfileService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:   "unknown user",
			userID: userID.String(),
			mockService: &MockProfileService{
				chronotypeFunc: func(ctx context.Context, id uuid.UUID, minDays int) (*domain.ChronotypeProfile, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCircadianHandler(tt.mockService, 7)

			req := httptest.NewRequest(http.MethodGet,
				"/v1/users/"+tt.userID+"/circadian/chronotype"+tt.query, nil)
			req = withURLParams(req, map[string]string{"userId": tt.userID})
			rec := httptest.NewRecorder()

			handler.GetChronotype(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("GetChronotype() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestCircadianHandler_GetChronotype_InsufficientData(t *testing.T) {
	userID := uuid.New()
	mockService := &MockProfileService{
		chronotypeFunc: func(ctx context.Context, id uuid.UUID, minDays int) (*domain.ChronotypeProfile, error) {
			return nil, nil
		},
	}
	handler := NewCircadianHandler(mockService, 7)

	req := httptest.NewRequest(http.MethodGet, "/v1/users/"+userID.String()+"/circadian/chronotype", nil)
	req = withURLParams(req, map[string]string{"userId": userID.String()})
	rec := httptest.NewRecorder()

	handler.GetChronotype(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GetChronotype() status = %d, want 200 for insufficient data", rec.Code)
	}
	var payload domain.InsufficientData
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if payload.Status != "insufficient_data" {
		t.Errorf("payload.Status = %q, want insufficient_data", payload.Status)
	}
}

func TestCircadianHandler_GetChronotype_MinDaysPassedThrough(t *testing.T) {
	userID := uuid.New()
	var gotMinDays int
	mockService := &MockProfileService{
		chronotypeFunc: func(ctx context.Context, id uuid.UUID, minDays int) (*domain.ChronotypeProfile, error) {
			gotMinDays = minDays
			return sampleChronotype(), nil
		},
	}
	handler := NewCircadianHandler(mockService, 7)

	req := httptest.NewRequest(http.MethodGet, "/v1/users/"+userID.String()+"/circadian/chronotype?min_days=14", nil)
	req = withURLParams(req, map[string]string{"userId": userID.String()})
	rec := httptest.NewRecorder()

	handler.GetChronotype(rec, req)

	if gotMinDays != 14 {
		t.Errorf("service received min_days = %d, want 14", gotMinDays)
	}
}

func TestCircadianHandler_GetDayClassification(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		userID         string
		mockService    *MockProfileService
		wantStatusCode int
	}{
		{
			name:           "classification available",
			userID:         userID.String(),
			mockService:    &MockProfileService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid user ID",
			userID:         "nope",
			mockService:    &MockProfileService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:   "unknown user",
			userID: userID.String(),
			mockService: &MockProfileService{
				classificationFunc: func(ctx context.Context, id uuid.UUID) (*domain.DayClassificationResult, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewCircadianHandler(tt.mockService, 7)

			req := httptest.NewRequest(http.MethodGet,
				"/v1/users/"+tt.userID+"/circadian/day-classification", nil)
			req = withURLParams(req, map[string]string{"userId": tt.userID})
			rec := httptest.NewRecorder()

			handler.GetDayClassification(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("GetDayClassification() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}

			if tt.wantStatusCode == http.StatusOK {
				var result domain.DayClassificationResult
				if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if len(result.Days) != 7 {
					t.Errorf("classification covers %d weekdays, want 7", len(result.Days))
				}
			}
		})
	}
}
