package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"coachtrack/internal/config"
	dedupeHnd "coachtrack/internal/dedupe/handler"
	"coachtrack/internal/middleware"
	rosterHnd "coachtrack/internal/roster/handler"
	"coachtrack/internal/storage"
	"coachtrack/server/http/handlers"
)

func NewRouter(cfg config.Config, db *gorm.DB, logger zerolog.Logger) *chi.Mux {
	coaches := storage.NewCoachRepository(db)
	schools := storage.NewSchoolRepository(db)
	attendance := storage.NewAttendanceRepository(db)
	kv := storage.NewKVRepository(db)

	dedupe := dedupeHnd.New(coaches, attendance, kv, logger)
	roster := rosterHnd.New(coaches, schools, logger)
	records := handlers.NewRecords(coaches, schools, attendance, logger)

	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.AllowOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}).Handler)
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", handlers.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/schools", records.ListSchools)
		r.Get("/coaches", records.ListCoaches)
		r.Post("/coaches", records.CreateCoach)
		r.Post("/attendance", records.LogAttendance)

		r.Get("/duplicates", dedupe.Duplicates)
		r.Post("/duplicates/dismiss", dedupe.Dismiss)
		r.Delete("/duplicates/dismissals", dedupe.ClearDismissals)
		r.Post("/duplicates/merge", dedupe.Merge)

		r.Post("/import/preview", roster.Preview)
		r.Post("/import/commit", roster.Commit)
	})

	return r
}
