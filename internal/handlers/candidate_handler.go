package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/ats-engine/internal/models"
	"alfredoptarigan/ats-engine/internal/services"
)

// StatisticsProvider reports corpus counts. CandidateRepository implements it.
type StatisticsProvider interface {
	Statistics() (*models.Statistics, error)
}

type CandidateHandler struct {
	profileService services.ProfileService
	worker         services.IndexWorker
	stats          StatisticsProvider
	log            *zap.Logger
}

func NewCandidateHandler(
	profileService services.ProfileService,
	worker services.IndexWorker,
	stats StatisticsProvider,
	log *zap.Logger,
) *CandidateHandler {
	return &CandidateHandler{
		profileService: profileService,
		worker:         worker,
		stats:          stats,
		log:            log.Named("candidate_handler"),
	}
}

// HandleGet handles GET /candidates/:id
func (h *CandidateHandler) HandleGet(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid candidate ID format")
	}

	candidate, err := h.profileService.GetCandidate(id)
	if err != nil {
		if code := statusFor(err); code != fiber.StatusInternalServerError {
			return respondError(c, code, "Candidate not found")
		}
		h.log.Error("failed to load candidate", zap.String("candidate_id", id.String()), zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "failed to load candidate")
	}

	return c.JSON(candidate)
}

// HandleArchive handles PATCH /candidates/:id/archive
func (h *CandidateHandler) HandleArchive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid candidate ID format")
	}

	if err := h.profileService.ArchiveCandidate(c.UserContext(), id); err != nil {
		code := statusFor(err)
		if code == fiber.StatusInternalServerError {
			h.log.Error("failed to archive candidate", zap.String("candidate_id", id.String()), zap.Error(err))
			return respondError(c, code, "failed to archive candidate")
		}
		return respondError(c, code, "Candidate not found")
	}

	return c.JSON(fiber.Map{
		"status":       "success",
		"candidate_id": id.String(),
		"state":        models.CandidateArchived,
	})
}

// HandleReindex handles POST /candidates/reindex
func (h *CandidateHandler) HandleReindex(c *fiber.Ctx) error {
	queued, err := h.worker.EnqueueAll()
	if err != nil {
		h.log.Error("failed to schedule re-indexing", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "failed to schedule re-indexing")
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"status": "accepted",
		"queued": queued,
	})
}

// HandleStatistics handles GET /statistics
func (h *CandidateHandler) HandleStatistics(c *fiber.Ctx) error {
	stats, err := h.stats.Statistics()
	if err != nil {
		h.log.Error("failed to compute statistics", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "failed to compute statistics")
	}
	return c.JSON(stats)
}
