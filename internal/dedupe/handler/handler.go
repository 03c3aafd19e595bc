package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"coachtrack/internal/dedupe/service"
	"coachtrack/internal/storage"
)

// Handler serves the duplicate-review endpoints.
type Handler struct {
	Coaches    storage.CoachRepositoryInterface
	Attendance storage.AttendanceRepositoryInterface
	KV         storage.KVRepositoryInterface
	Log        zerolog.Logger
}

func New(coaches storage.CoachRepositoryInterface, attendance storage.AttendanceRepositoryInterface, kv storage.KVRepositoryInterface, logger zerolog.Logger) *Handler {
	return &Handler{Coaches: coaches, Attendance: attendance, KV: kv, Log: logger}
}

// Duplicates runs a full rescan and returns candidate pairs sorted by score.
func (h *Handler) Duplicates(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sup := service.NewSuppressions(h.KV, operator(r))
	scanner := service.NewScanner(h.Coaches, h.Attendance)

	pairs, err := scanner.Scan(sup)
	if err != nil {
		h.Log.Error().Err(err).Msg("duplicate scan")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.Log.Info().
		Int("pairs", len(pairs)).
		Dur("elapsed", time.Since(start)).
		Msg("duplicate scan done")
	writeJSON(w, http.StatusOK, map[string]any{"pairs": pairs})
}

type pairRequest struct {
	IDA uint `json:"id_a"`
	IDB uint `json:"id_b"`
}

// Dismiss marks a pair "not a duplicate"; it stays out of scan output until
// the operator clears the list.
func (h *Handler) Dismiss(w http.ResponseWriter, r *http.Request) {
	var req pairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request body: "+err.Error())
		return
	}
	if req.IDA == 0 || req.IDB == 0 || req.IDA == req.IDB {
		writeError(w, http.StatusBadRequest, "two distinct record ids required")
		return
	}
	sup := service.NewSuppressions(h.KV, operator(r))
	if err := sup.Add(req.IDA, req.IDB); err != nil {
		h.Log.Error().Err(err).Msg("dismiss pair")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"dismissed": service.PairKey(req.IDA, req.IDB)})
}

// ClearDismissals empties the operator's suppression list.
func (h *Handler) ClearDismissals(w http.ResponseWriter, r *http.Request) {
	sup := service.NewSuppressions(h.KV, operator(r))
	if err := sup.Clear(); err != nil {
		h.Log.Error().Err(err).Msg("clear dismissals")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

type mergeRequest struct {
	KeeperID uint `json:"keeper_id"`
	LoserID  uint `json:"loser_id"`
}

// Merge absorbs the loser record into the keeper. Typed failures map onto
// HTTP statuses so the UI can tell "already resolved" from a real fault.
func (h *Handler) Merge(w http.ResponseWriter, r *http.Request) {
	var req mergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request body: "+err.Error())
		return
	}

	merger := service.NewMerger(h.Coaches, h.Attendance)
	summary, err := merger.Merge(req.KeeperID, req.LoserID)
	if err != nil {
		h.Log.Warn().Err(err).Uint("keeper", req.KeeperID).Uint("loser", req.LoserID).Msg("merge failed")
		switch {
		case errors.Is(err, service.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrConstraint):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	h.Log.Info().
		Uint("keeper", summary.KeeperID).
		Uint("loser", summary.LoserID).
		Int("repointed", summary.Repointed).
		Int("dropped", summary.Dropped).
		Msg("merge done")
	writeJSON(w, http.StatusOK, map[string]any{
		"summary": summary,
		"message": summary.Text(),
	})
}
