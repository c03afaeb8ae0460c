package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/noctura/circadian-api/internal/domain"
	"github.com/noctura/circadian-api/internal/service"
	"github.com/noctura/circadian-api/pkg/problem"
)

// BalanceHandler handles the sleep-need and sleep-debt endpoints.
type BalanceHandler struct {
	balanceService service.BalanceService
}

func NewBalanceHandler(balanceService service.BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceService: balanceService}
}

// GetSleepNeed handles GET /v1/users/{userId}/sleep-need
// @Summary Get personalized sleep need
// @Description Derive the nightly sleep-need baseline from history, falling back to the population default for new users.
// @Tags balance
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.SleepNeedProfile
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-need [get]
func (h *BalanceHandler) GetSleepNeed(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	need, err := h.balanceService.SleepNeed(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute sleep need").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(need)
}

// GetSleepDebt handles GET /v1/users/{userId}/sleep-debt
// @Summary Get rolling sleep debt
// @Description Compute the exponentially weighted 14-day sleep debt with a per-day breakdown.
// @Tags balance
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.SleepDebtResult
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-debt [get]
func (h *BalanceHandler) GetSleepDebt(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	debt, err := h.balanceService.SleepDebt(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute sleep debt").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(debt)
}

// TodayNeed handles GET and POST /v1/users/{userId}/sleep-need/today
// @Summary Get tonight's adjusted sleep need
// @Description Decompose tonight's need from the baseline plus training strain, debt and naps. GET takes the inputs as query parameters, POST as a JSON body; both are optional and missing inputs fall back to history.
// @Tags balance
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param training_load_yesterday query number false "Yesterday's training load"
// @Param training_load_average query number false "Rolling average training load"
// @Param current_debt_hours query number false "Known current debt in hours"
// @Param nap_minutes_today query number false "Nap minutes already taken"
// @Param body body domain.NeedContext false "Day-specific inputs (POST only)"
// @Success 200 {object} domain.DailyNeedBreakdown
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-need/today [get]
func (h *BalanceHandler) TodayNeed(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var needCtx domain.NeedContext
	if r.Method == http.MethodGet {
		needCtx, err = needContextFromQuery(r)
		if err != nil {
			problem.BadRequest(err.Error()).Write(w)
			return
		}
	} else if err := json.NewDecoder(r.Body).Decode(&needCtx); err != nil && !errors.Is(err, io.EOF) {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}
	if needCtx.TrainingLoadYesterday < 0 || needCtx.TrainingLoadAverage < 0 ||
		needCtx.CurrentDebtHours < 0 || needCtx.NapMinutesToday < 0 {
		problem.BadRequest("Context values must not be negative").Write(w)
		return
	}

	breakdown, err := h.balanceService.TodayNeed(r.Context(), userID, needCtx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute today's need").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(breakdown)
}

// needContextFromQuery reads the NeedContext fields from query params.
func needContextFromQuery(r *http.Request) (domain.NeedContext, error) {
	var needCtx domain.NeedContext
	fields := []struct {
		name string
		dst  *float64
	}{
		{"training_load_yesterday", &needCtx.TrainingLoadYesterday},
		{"training_load_average", &needCtx.TrainingLoadAverage},
		{"current_debt_hours", &needCtx.CurrentDebtHours},
		{"nap_minutes_today", &needCtx.NapMinutesToday},
		{"prior_recovery_score", &needCtx.PriorRecoveryScore},
	}
	for _, f := range fields {
		val := r.URL.Query().Get(f.name)
		if val == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return needCtx, errors.New(f.name + " must be a number")
		}
		*f.dst = parsed
	}
	return needCtx, nil
}
