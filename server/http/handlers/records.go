// Thin record endpoints backing the review UI: list/create coaches, list the
// registry, log a visit. The duplicate and import flows live in their feature
// packages.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"coachtrack/internal/storage"
)

type Records struct {
	Coaches    storage.CoachRepositoryInterface
	Schools    storage.SchoolRepositoryInterface
	Attendance storage.AttendanceRepositoryInterface
	Log        zerolog.Logger
}

func NewRecords(coaches storage.CoachRepositoryInterface, schools storage.SchoolRepositoryInterface, attendance storage.AttendanceRepositoryInterface, logger zerolog.Logger) *Records {
	return &Records{Coaches: coaches, Schools: schools, Attendance: attendance, Log: logger}
}

func (h *Records) ListSchools(w http.ResponseWriter, r *http.Request) {
	schools, err := h.Schools.ListAll()
	if err != nil {
		h.Log.Error().Err(err).Msg("list schools")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"schools": schools})
}

func (h *Records) ListCoaches(w http.ResponseWriter, r *http.Request) {
	var (
		coaches []storage.Coach
		err     error
	)
	if q := r.URL.Query().Get("school_id"); q != "" {
		id, perr := strconv.ParseUint(q, 10, 64)
		if perr != nil {
			writeError(w, http.StatusBadRequest, "bad school_id")
			return
		}
		coaches, err = h.Coaches.ListBySchool(uint(id))
	} else {
		coaches, err = h.Coaches.ListAll()
	}
	if err != nil {
		h.Log.Error().Err(err).Msg("list coaches")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"coaches": coaches})
}

// CreateCoach is the on-the-fly logging path: a parent spots a coach not yet
// in the roster and adds them directly.
func (h *Records) CreateCoach(w http.ResponseWriter, r *http.Request) {
	var coach storage.Coach
	if err := json.NewDecoder(r.Body).Decode(&coach); err != nil {
		writeError(w, http.StatusBadRequest, "bad request body: "+err.Error())
		return
	}
	if strings.TrimSpace(coach.FirstName) == "" || strings.TrimSpace(coach.LastName) == "" {
		writeError(w, http.StatusBadRequest, "first and last name are required")
		return
	}
	if coach.SchoolID == 0 {
		writeError(w, http.StatusBadRequest, "school_id is required")
		return
	}
	coach.ID = 0
	if err := h.Coaches.Create(&coach); err != nil {
		h.Log.Error().Err(err).Msg("create coach")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, coach)
}

type attendanceRequest struct {
	GameID  string `json:"game_id"`
	CoachID uint   `json:"coach_id"`
}

// LogAttendance records one coach sighting at one game. A repeat sighting of
// the same coach at the same game is a conflict, not a second row.
func (h *Records) LogAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.GameID) == "" || req.CoachID == 0 {
		writeError(w, http.StatusBadRequest, "game_id and coach_id are required")
		return
	}
	att := storage.Attendance{GameID: strings.TrimSpace(req.GameID), CoachID: req.CoachID}
	if err := h.Attendance.Create(&att); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			writeError(w, http.StatusConflict, "attendance already logged for this game and coach")
			return
		}
		h.Log.Error().Err(err).Msg("log attendance")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, att)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
