package handlers

import (
	"errors"
	"net/http"

	"ecoleludique/internal/game"
	"ecoleludique/internal/repository"
	"ecoleludique/internal/service"
)

// PlayHandler serves the play API: starting sessions, applying moves and
// submitting answers
type PlayHandler struct {
	play *service.PlayService
}

// NewPlayHandler creates a new play handler
func NewPlayHandler(play *service.PlayService) *PlayHandler {
	return &PlayHandler{play: play}
}

type gameView struct {
	Subject string `json:"subject"`
	ID      string `json:"id"`
	Name    string `json:"name"`
}

// ListGames handles GET /api/games
func (h *PlayHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	games := h.play.Games()
	views := make([]gameView, 0, len(games))
	for _, g := range games {
		views = append(views, gameView{Subject: g.Subject, ID: g.ID, Name: g.Name})
	}
	writeJSON(w, http.StatusOK, views)
}

// StartSession handles POST /api/play
func (h *PlayHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudentID string `json:"studentId"`
		Subject   string `json:"subject"`
		Game      string `json:"game"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	view, err := h.play.Start(req.StudentID, req.Subject, req.Game)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "student not found", "", nil)
		case errors.Is(err, service.ErrUnknownGame):
			respondWithError(w, http.StatusNotFound, "unknown game", "", nil)
		case errors.Is(err, service.ErrNoActivePeriod):
			respondWithError(w, http.StatusConflict, "no active period", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "failed to start session", "Error starting session", err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, newStateView(view))
}

// GetState handles GET /api/play/{id}
func (h *PlayHandler) GetState(w http.ResponseWriter, r *http.Request) {
	view, err := h.play.State(r.PathValue("id"))
	if err != nil {
		h.respondPlayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newStateView(view))
}

// Move handles POST /api/play/{id}/move
func (h *PlayHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Src      string `json:"src"`
		Dst      string `json:"dst"`
		ItemID   string `json:"itemId"`
		Position *int   `json:"position"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	pos := -1
	if req.Position != nil {
		pos = *req.Position
	}

	view, err := h.play.Move(r.PathValue("id"), req.Src, req.Dst, req.ItemID, pos)
	if err != nil {
		h.respondPlayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newStateView(view))
}

// SetText handles POST /api/play/{id}/text
func (h *PlayHandler) SetText(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Slot string `json:"slot"`
		Text string `json:"text"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	view, err := h.play.SetText(r.PathValue("id"), req.Slot, req.Text)
	if err != nil {
		h.respondPlayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newStateView(view))
}

// Connect handles POST /api/play/{id}/connect
func (h *PlayHandler) Connect(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Left  string `json:"left"`
		Right string `json:"right"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	view, err := h.play.Connect(r.PathValue("id"), req.Left, req.Right)
	if err != nil {
		h.respondPlayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newStateView(view))
}

// ClearConnections handles DELETE /api/play/{id}/connections
func (h *PlayHandler) ClearConnections(w http.ResponseWriter, r *http.Request) {
	view, err := h.play.ClearPairs(r.PathValue("id"))
	if err != nil {
		h.respondPlayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newStateView(view))
}

// Submit handles POST /api/play/{id}/submit
func (h *PlayHandler) Submit(w http.ResponseWriter, r *http.Request) {
	view, err := h.play.Submit(r.Context(), r.PathValue("id"))
	if err != nil {
		var malformed *game.MalformedInputError
		if errors.As(err, &malformed) {
			// The session stays playable; the view carries the message to
			// show the student.
			writeJSON(w, http.StatusUnprocessableEntity, newStateView(view))
			return
		}
		h.respondPlayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newStateView(view))
}

// EndSession handles DELETE /api/play/{id}
func (h *PlayHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	if err := h.play.End(r.PathValue("id")); err != nil {
		h.respondPlayError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PlayHandler) respondPlayError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		respondWithError(w, http.StatusNotFound, "session not found", "", nil)
	case errors.Is(err, game.ErrNotAcceptingInput):
		respondWithError(w, http.StatusConflict, "session is not accepting input", "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, "play request failed", "Error handling play request", err)
	}
}
