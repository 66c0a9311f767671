package handlers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/ats-engine/internal/export"
	"alfredoptarigan/ats-engine/internal/models"
	"alfredoptarigan/ats-engine/internal/services"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 1000
)

type RankingHandler struct {
	rankingService services.RankingService
	validate       *validator.Validate
	log            *zap.Logger
}

func NewRankingHandler(rankingService services.RankingService, log *zap.Logger) *RankingHandler {
	return &RankingHandler{
		rankingService: rankingService,
		validate:       newValidator(),
		log:            log.Named("ranking_handler"),
	}
}

// HandleRank handles POST /rankings
func (h *RankingHandler) HandleRank(c *fiber.Ctx) error {
	var req models.RankRequest
	if msg := bindJSON(c, h.validate, &req); msg != "" {
		return respondError(c, fiber.StatusBadRequest, msg)
	}
	if req.MinExperience != nil && req.MaxExperience != nil && *req.MaxExperience < *req.MinExperience {
		return respondError(c, fiber.StatusBadRequest, "max_experience must not be below min_experience")
	}

	resp, err := h.rankingService.RankByJob(c.UserContext(), req)
	if err != nil {
		code := statusFor(err)
		if code == fiber.StatusInternalServerError {
			h.log.Error("ranking failed", zap.String("job_id", req.JobID), zap.Error(err))
			return respondError(c, code, "failed to rank candidates")
		}
		return respondError(c, code, err.Error())
	}

	return c.JSON(resp)
}

// HandleHistory handles GET /jobs/:id/rankings
func (h *RankingHandler) HandleHistory(c *fiber.Ctx) error {
	jobID := c.Params("id")
	limit := c.QueryInt("limit", defaultHistoryLimit)
	if limit < 1 || limit > maxHistoryLimit {
		return respondError(c, fiber.StatusBadRequest, fmt.Sprintf("limit must be between 1 and %d", maxHistoryLimit))
	}

	rankings, err := h.rankingService.History(jobID, limit)
	if err != nil {
		return h.historyError(c, jobID, err)
	}

	return c.JSON(fiber.Map{
		"job_id":   jobID,
		"count":    len(rankings),
		"rankings": rankings,
	})
}

// HandleExport handles GET /jobs/:id/rankings/export
func (h *RankingHandler) HandleExport(c *fiber.Ctx) error {
	jobID := c.Params("id")

	job, err := h.rankingService.GetJob(jobID)
	if err != nil {
		return h.historyError(c, jobID, err)
	}
	rankings, err := h.rankingService.History(jobID, 0)
	if err != nil {
		return h.historyError(c, jobID, err)
	}

	var buf bytes.Buffer
	if err := export.WriteRankings(&buf, job, services.LatestRun(rankings), time.Now()); err != nil {
		h.log.Error("failed to build workbook", zap.String("job_id", jobID), zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "failed to export rankings")
	}

	c.Attachment(export.Filename(jobID))
	c.Set(fiber.HeaderContentType, export.ContentType)
	return c.Send(buf.Bytes())
}

func (h *RankingHandler) historyError(c *fiber.Ctx, jobID string, err error) error {
	code := statusFor(err)
	if code == fiber.StatusNotFound {
		return respondError(c, code, "Job not found")
	}
	h.log.Error("failed to load rankings", zap.String("job_id", jobID), zap.Error(err))
	return respondError(c, fiber.StatusInternalServerError, "failed to load rankings")
}
