package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/noctura/circadian-api/internal/api/validation"
	"github.com/noctura/circadian-api/internal/domain"
	"github.com/noctura/circadian-api/internal/service"
	"github.com/noctura/circadian-api/pkg/problem"
)

// VitalsHandler handles daily vitals ingestion and retrieval.
type VitalsHandler struct {
	service service.VitalsService
}

func NewVitalsHandler(service service.VitalsService) *VitalsHandler {
	return &VitalsHandler{service: service}
}

// Upsert handles PUT /v1/users/{userId}/vitals
// @Summary Ingest a day of vitals
// @Description Store one calendar day of sleep vitals. Re-submitting a date replaces the stored day.
// @Tags vitals
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.UpsertVitalsRequest true "Day of vitals"
// @Success 200 {object} domain.VitalsResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/vitals [put]
func (h *VitalsHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.UpsertVitalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, err := h.service.Upsert(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to store vitals").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry.ToResponse())
}

// GetByDate handles GET /v1/users/{userId}/vitals/{date}
// @Summary Get vitals for a date
// @Description Get the stored day of vitals for a calendar date
// @Tags vitals
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param date path string true "Calendar date" example(2024-01-15)
// @Success 200 {object} domain.VitalsResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/vitals/{date} [get]
func (h *VitalsHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	date := chi.URLParam(r, "date")
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		problem.BadRequest("date must be a calendar date in YYYY-MM-DD format").Write(w)
		return
	}

	entry, err := h.service.GetByDate(r.Context(), userID, date)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No vitals stored for that date").Write(w)
			return
		}
		problem.InternalError("Failed to get vitals").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry.ToResponse())
}

// List handles GET /v1/users/{userId}/vitals
// @Summary List vitals entries
// @Description List stored vitals entries newest first, with cursor pagination and an optional date range.
// @Tags vitals
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param from query string false "Inclusive range start" example(2024-01-01)
// @Param to query string false "Inclusive range end" example(2024-01-31)
// @Param limit query integer false "Page size" default(30) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} domain.VitalsListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/vitals [get]
func (h *VitalsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter := domain.VitalsFilter{
		From:   r.URL.Query().Get("from"),
		To:     r.URL.Query().Get("to"),
		Limit:  parseIntParam(r, "limit", 0),
		Cursor: r.URL.Query().Get("cursor"),
	}
	for _, d := range []string{filter.From, filter.To} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(domain.DateLayout, d); err != nil {
			problem.BadRequest("from/to must be calendar dates in YYYY-MM-DD format").Write(w)
			return
		}
	}

	resp, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list vitals").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
