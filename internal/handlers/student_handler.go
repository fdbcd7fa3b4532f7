package handlers

import (
	"errors"
	"net/http"

	"ecoleludique/internal/models"
	"ecoleludique/internal/repository"
	"ecoleludique/internal/service"
	"ecoleludique/internal/utils"
)

// StudentHandler serves the class roster API
type StudentHandler struct {
	roster *service.RosterService
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(roster *service.RosterService) *StudentHandler {
	return &StudentHandler{roster: roster}
}

type studentView struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	// Password is only present on creation and regeneration; it is never
	// readable afterwards.
	Password string `json:"password,omitempty"`
}

func newStudentView(s *models.Student, password string) studentView {
	return studentView{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Password:  password,
	}
}

// CreateStudent handles POST /api/students
func (h *StudentHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	student, password, err := h.roster.CreateStudent(req.FirstName, req.LastName)
	if err != nil {
		var verr utils.ValidationError
		if errors.As(err, &verr) {
			respondWithError(w, http.StatusBadRequest, verr.Error(), "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to create student", "Error creating student", err)
		return
	}

	writeJSON(w, http.StatusCreated, newStudentView(student, password))
}

// ListStudents handles GET /api/students
func (h *StudentHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.roster.ListStudents()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list students", "Error listing students", err)
		return
	}

	views := make([]studentView, 0, len(students))
	for i := range students {
		views = append(views, newStudentView(&students[i], ""))
	}
	writeJSON(w, http.StatusOK, views)
}

// GetStudent handles GET /api/students/{id}
func (h *StudentHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	student, err := h.roster.GetStudent(r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		respondWithError(w, http.StatusNotFound, "student not found", "", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to get student", "Error getting student", err)
		return
	}
	writeJSON(w, http.StatusOK, newStudentView(student, ""))
}

// UpdateStudent handles PUT /api/students/{id}
func (h *StudentHandler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.roster.UpdateStudent(r.PathValue("id"), req.FirstName, req.LastName)
	if err != nil {
		var verr utils.ValidationError
		switch {
		case errors.As(err, &verr):
			respondWithError(w, http.StatusBadRequest, verr.Error(), "", nil)
		case errors.Is(err, repository.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "student not found", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "failed to update student", "Error updating student", err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RegeneratePassword handles POST /api/students/{id}/password
func (h *StudentHandler) RegeneratePassword(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	password, err := h.roster.RegeneratePassword(id)
	if errors.Is(err, repository.ErrNotFound) {
		respondWithError(w, http.StatusNotFound, "student not found", "", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to regenerate password", "Error regenerating password", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id, "password": password})
}

// DeleteStudent handles DELETE /api/students/{id}
func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	err := h.roster.DeleteStudent(r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		respondWithError(w, http.StatusNotFound, "student not found", "", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to delete student", "Error deleting student", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
