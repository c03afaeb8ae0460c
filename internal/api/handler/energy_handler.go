package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/noctura/circadian-api/internal/domain"
	"github.com/noctura/circadian-api/internal/service"
	"github.com/noctura/circadian-api/internal/sleep"
	"github.com/noctura/circadian-api/pkg/problem"
)

// EnergyHandler handles the predicted-energy curve endpoint.
type EnergyHandler struct {
	energyService service.EnergyService
	now           func() time.Time
}

func NewEnergyHandler(energyService service.EnergyService) *EnergyHandler {
	return &EnergyHandler{
		energyService: energyService,
		now:           time.Now,
	}
}

// GetCurve handles GET /v1/users/{userId}/energy-curve
// @Summary Get the 24-hour predicted-energy curve
// @Description Generate today's energy curve from the two-process model anchored on the user's chronotype. Naps already taken are passed as repeated nap_start/nap_end pairs in fractional hours.
// @Tags energy
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param at query string false "Generate the curve as of this RFC 3339 instant instead of now" example(2024-03-21T10:00:00Z)
// @Param nap_start query number false "Nap start, fractional hours after midnight" example(13.0)
// @Param nap_end query number false "Nap end, fractional hours after midnight" example(13.5)
// @Success 200 {object} domain.EnergyCurve "Energy curve, or insufficient_data payload"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/energy-curve [get]
func (h *EnergyHandler) GetCurve(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	naps, err := parseNaps(r)
	if err != nil {
		problem.BadRequest(err.Error()).Write(w)
		return
	}

	at := h.now()
	if v := r.URL.Query().Get("at"); v != "" {
		at, err = time.Parse(time.RFC3339, v)
		if err != nil {
			problem.BadRequest("at must be an RFC 3339 timestamp").Write(w)
			return
		}
	}

	curve, err := h.energyService.Curve(r.Context(), userID, at, naps)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to generate energy curve").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if curve == nil {
		json.NewEncoder(w).Encode(domain.NewInsufficientData(
			"a chronotype profile is required to anchor the energy model"))
		return
	}
	json.NewEncoder(w).Encode(curve)
}

// parseNaps reads repeated nap_start/nap_end query pairs.
func parseNaps(r *http.Request) ([]sleep.Nap, error) {
	starts := r.URL.Query()["nap_start"]
	ends := r.URL.Query()["nap_end"]
	if len(starts) != len(ends) {
		return nil, errors.New("nap_start and nap_end must come in pairs")
	}

	naps := make([]sleep.Nap, 0, len(starts))
	for i := range starts {
		start, err := strconv.ParseFloat(starts[i], 64)
		if err != nil {
			return nil, errors.New("nap_start must be a number of hours")
		}
		end, err := strconv.ParseFloat(ends[i], 64)
		if err != nil {
			return nil, errors.New("nap_end must be a number of hours")
		}
		if start < 0 || end > 24 || end <= start {
			return nil, errors.New("naps must satisfy 0 <= nap_start < nap_end <= 24")
		}
		naps = append(naps, sleep.Nap{StartHour: start, EndHour: end})
	}
	return naps, nil
}
