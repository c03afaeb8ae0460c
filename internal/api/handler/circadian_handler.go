package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/noctura/circadian-api/internal/domain"
	"github.com/noctura/circadian-api/internal/service"
	"github.com/noctura/circadian-api/pkg/problem"
)

// CircadianHandler handles the circadian profile endpoints.
type CircadianHandler struct {
	profileService service.ProfileService
	defaultMinDays int
}

func NewCircadianHandler(profileService service.ProfileService, defaultMinDays int) *CircadianHandler {
	return &CircadianHandler{
		profileService: profileService,
		defaultMinDays: defaultMinDays,
	}
}

// GetChronotype handles GET /v1/users/{userId}/circadian/chronotype
// @Summary Get user chronotype
// @Description Derive the circadian profile from recent sleep history. Too little history yields an insufficient_data payload, not an error.
// @Tags circadian
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param min_days query integer false "Minimum valid days required" default(7) minimum(1) maximum(60)
// @Success 200 {object} domain.ChronotypeProfile "Circadian profile, or insufficient_data payload"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/circadian/chronotype [get]
func (h *CircadianHandler) GetChronotype(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	minDays := parseIntParam(r, "min_days", h.defaultMinDays)
	if minDays < 1 || minDays > 60 {
		problem.BadRequest("min_days must be between 1 and 60").Write(w)
		return
	}

	profile, err := h.profileService.Chronotype(r.Context(), userID, minDays)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute chronotype").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if profile == nil {
		json.NewEncoder(w).Encode(domain.NewInsufficientData(
			"at least " + strconv.Itoa(minDays) + " valid days of sleep data are required"))
		return
	}
	json.NewEncoder(w).Encode(profile)
}

// GetDayClassification handles GET /v1/users/{userId}/circadian/day-classification
// @Summary Get workday/freeday classification
// @Description Infer a day type for every weekday from wake-time variance, falling back to the Mon-Fri calendar when the pattern is unclear.
// @Tags circadian
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.DayClassificationResult "Per-weekday classification"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/circadian/day-classification [get]
func (h *CircadianHandler) GetDayClassification(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.profileService.DayClassification(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to classify days").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultValue int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
