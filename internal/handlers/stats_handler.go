package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"ecoleludique/internal/models"
	"ecoleludique/internal/repository"
	"ecoleludique/internal/service"
	"ecoleludique/internal/utils"
)

// StatsHandler serves the dashboard statistics API
type StatsHandler struct {
	stats *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

type gameStatsView struct {
	Game           string  `json:"game"`
	Name           string  `json:"name"`
	CorrectCount   int     `json:"correctCount"`
	IncorrectCount int     `json:"incorrectCount"`
	Note           float64 `json:"note"`
}

type subjectStatsView struct {
	Subject string          `json:"subject"`
	Games   []gameStatsView `json:"games"`
	Average float64         `json:"average"`
}

func newSubjectStatsView(s *models.SubjectStats) subjectStatsView {
	view := subjectStatsView{Subject: s.Subject, Average: s.Average}
	for _, g := range s.Games {
		view.Games = append(view.Games, gameStatsView{
			Game:           g.Game,
			Name:           g.GameName,
			CorrectCount:   g.CorrectCount,
			IncorrectCount: g.IncorrectCount,
			Note:           g.Note,
		})
	}
	return view
}

// GetSubjectStats handles GET /api/students/{id}/stats?period=N&subject=S
func (h *StatsHandler) GetSubjectStats(w http.ResponseWriter, r *http.Request) {
	period, err := strconv.Atoi(r.URL.Query().Get("period"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid period", "", nil)
		return
	}
	subject := r.URL.Query().Get("subject")
	if subject == "" {
		respondWithError(w, http.StatusBadRequest, "subject is required", "", nil)
		return
	}

	stats, err := h.stats.SubjectStats(r.Context(), r.PathValue("id"), period, subject)
	if err != nil {
		var verr utils.ValidationError
		switch {
		case errors.As(err, &verr):
			respondWithError(w, http.StatusBadRequest, verr.Error(), "", nil)
		case errors.Is(err, repository.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "student not found", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "failed to compute stats", "Error computing stats", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, newSubjectStatsView(stats))
}
