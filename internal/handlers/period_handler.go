package handlers

import (
	"errors"
	"net/http"

	"ecoleludique/internal/repository"
	"ecoleludique/internal/service"
	"ecoleludique/internal/utils"
)

// PeriodHandler serves the school period API
type PeriodHandler struct {
	roster *service.RosterService
}

// NewPeriodHandler creates a new period handler
func NewPeriodHandler(roster *service.RosterService) *PeriodHandler {
	return &PeriodHandler{roster: roster}
}

type periodView struct {
	Number int  `json:"number"`
	Active bool `json:"active"`
}

// ListPeriods handles GET /api/periods
func (h *PeriodHandler) ListPeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := h.roster.ListPeriods()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list periods", "Error listing periods", err)
		return
	}

	views := make([]periodView, 0, len(periods))
	for _, p := range periods {
		views = append(views, periodView{Number: p.Number, Active: p.Active})
	}
	writeJSON(w, http.StatusOK, views)
}

// ActivatePeriod handles POST /api/periods/activate
func (h *PeriodHandler) ActivatePeriod(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Number int `json:"number"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.roster.ActivatePeriod(req.Number)
	if err != nil {
		var verr utils.ValidationError
		switch {
		case errors.As(err, &verr):
			respondWithError(w, http.StatusBadRequest, verr.Error(), "", nil)
		case errors.Is(err, repository.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "period not found", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "failed to activate period", "Error activating period", err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
