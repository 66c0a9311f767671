package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	AppName    = "ATS Candidate Ranking API"
	AppVersion = "1.0.0"
)

// Routes groups every handler the API mounts. Health pings the database and
// may be nil.
type Routes struct {
	Upload    *UploadHandler
	Candidate *CandidateHandler
	Ranking   *RankingHandler
	Search    *SearchHandler
	Health    func(ctx context.Context) error
}

var endpoints = []string{
	"GET /api/v1/health",
	"POST /api/v1/resumes",
	"GET /api/v1/candidates/:id",
	"PATCH /api/v1/candidates/:id/archive",
	"POST /api/v1/candidates/reindex",
	"POST /api/v1/rankings",
	"GET /api/v1/jobs/:id/rankings",
	"GET /api/v1/jobs/:id/rankings/export",
	"POST /api/v1/search",
	"GET /api/v1/statistics",
}

func Register(app *fiber.App, r Routes) {
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		code, status, database := fiber.StatusOK, "healthy", "connected"
		if r.Health != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
			defer cancel()
			if err := r.Health(ctx); err != nil {
				code, status, database = fiber.StatusServiceUnavailable, "degraded", "unavailable"
			}
		}
		return c.Status(code).JSON(fiber.Map{
			"status":   status,
			"database": database,
			"time":     time.Now(),
		})
	})

	api.Post("/resumes", r.Upload.HandleUpload)

	api.Post("/candidates/reindex", r.Candidate.HandleReindex)
	api.Get("/candidates/:id", r.Candidate.HandleGet)
	api.Patch("/candidates/:id/archive", r.Candidate.HandleArchive)
	api.Get("/statistics", r.Candidate.HandleStatistics)

	api.Post("/rankings", r.Ranking.HandleRank)
	api.Get("/jobs/:id/rankings", r.Ranking.HandleHistory)
	api.Get("/jobs/:id/rankings/export", r.Ranking.HandleExport)

	api.Post("/search", r.Search.HandleSearch)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   AppName,
			"version":   AppVersion,
			"endpoints": endpoints,
		})
	})
}
