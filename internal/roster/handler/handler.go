package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"coachtrack/internal/fileio"
	"coachtrack/internal/roster/model"
	"coachtrack/internal/roster/service"
	"coachtrack/internal/storage"
)

// Handler serves the bulk-import endpoints.
type Handler struct {
	Coaches storage.CoachRepositoryInterface
	Schools storage.SchoolRepositoryInterface
	Log     zerolog.Logger
}

func New(coaches storage.CoachRepositoryInterface, schools storage.SchoolRepositoryInterface, logger zerolog.Logger) *Handler {
	return &Handler{Coaches: coaches, Schools: schools, Log: logger}
}

// Preview parses an uploaded sheet with the operator's column mapping and
// returns rows with resolved schools and confidence tiers for review.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer r.Body.Close()
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file: "+err.Error())
		return
	}
	defer file.Close()

	mapping := model.Mapping{
		OrgKey:      r.FormValue("org_key"),
		FirstKey:    r.FormValue("first_key"),
		LastKey:     r.FormValue("last_key"),
		FullNameKey: r.FormValue("full_name_key"),
		EmailKey:    r.FormValue("email_key"),
		PhoneKey:    r.FormValue("phone_key"),
		TitleKey:    r.FormValue("title_key"),
		HeaderRow:   atoi(r.FormValue("header_row"), 1),
	}
	if mapping.OrgKey == "" {
		writeError(w, http.StatusBadRequest, "org_key is required")
		return
	}
	if mapping.FullNameKey == "" && mapping.FirstKey == "" && mapping.LastKey == "" {
		writeError(w, http.StatusBadRequest, "name column mapping is required")
		return
	}

	rows, err := fileio.ReadAnyMaps(file, header.Filename, mapping.HeaderRow)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read sheet: "+err.Error())
		return
	}

	schools, err := h.Schools.ListAll()
	if err != nil {
		h.Log.Error().Err(err).Msg("load registry")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	importer := service.NewImporter(h.Coaches)
	out := importer.BuildRows(rows, mapping, service.NewMatcher(schools))

	unresolved := 0
	for _, row := range out {
		if row.Tier == model.TierNone {
			unresolved++
		}
	}
	h.Log.Info().
		Int("rows", len(out)).
		Int("unresolved", unresolved).
		Dur("elapsed", time.Since(start)).
		Msg("import preview done")
	writeJSON(w, http.StatusOK, map[string]any{"rows": out})
}

type commitRequest struct {
	Rows []model.ImportRow `json:"rows"`
}

// Commit inserts the operator-approved rows and reports inserted/skipped.
func (h *Handler) Commit(w http.ResponseWriter, r *http.Request) {
	var req commitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request body: "+err.Error())
		return
	}

	importer := service.NewImporter(h.Coaches)
	res, err := importer.Commit(req.Rows)
	if err != nil {
		h.Log.Error().Err(err).Msg("import commit")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.Log.Info().Int("inserted", res.Inserted).Int("skipped", res.Skipped).Msg("import commit done")
	writeJSON(w, http.StatusOK, res)
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

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
