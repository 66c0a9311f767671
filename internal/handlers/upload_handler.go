package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/ats-engine/internal/models"
	"alfredoptarigan/ats-engine/internal/services"
)

type UploadHandler struct {
	profileService services.ProfileService
	storageService services.StorageService
	maxFileSize    int64
	log            *zap.Logger
}

func NewUploadHandler(
	profileService services.ProfileService,
	storageService services.StorageService,
	maxFileSize int64,
	log *zap.Logger,
) *UploadHandler {
	return &UploadHandler{
		profileService: profileService,
		storageService: storageService,
		maxFileSize:    maxFileSize,
		log:            log.Named("upload_handler"),
	}
}

// HandleUpload handles POST /resumes with a multipart "file" field.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "file is required")
	}

	if h.maxFileSize > 0 && file.Size > h.maxFileSize {
		return respondError(c, fiber.StatusBadRequest, fmt.Sprintf("file too large. Max size: %d bytes", h.maxFileSize))
	}

	stored, err := h.storageService.SaveFile(file)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedFileType) {
			return respondError(c, fiber.StatusBadRequest, "Unsupported file type. Allowed: pdf, docx, txt")
		}
		h.log.Error("failed to store upload", zap.String("filename", file.Filename), zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "failed to save file")
	}

	candidate, err := h.profileService.ProcessResume(c.UserContext(), services.ResumeUpload{
		Path:         stored.Path,
		Filename:     stored.Filename,
		OriginalName: stored.OriginalName,
		FileType:     stored.FileType,
	})
	if err != nil {
		if derr := h.storageService.DeleteFile(stored.Filename); derr != nil {
			h.log.Warn("failed to remove rejected upload", zap.String("filename", stored.Filename), zap.Error(derr))
		}

		code := statusFor(err)
		if code == fiber.StatusInternalServerError {
			h.log.Error("resume processing failed", zap.String("filename", stored.OriginalName), zap.Error(err))
			return respondError(c, code, "failed to process resume")
		}
		return respondError(c, code, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(models.UploadResponse{
		Status:           "success",
		Message:          "Resume processed successfully",
		CandidateID:      candidate.ID.String(),
		CandidateName:    candidate.Name,
		Email:            candidate.Email,
		TotalExperience:  candidate.TotalExperience,
		PrimarySkills:    candidate.PrimarySkills,
		Domains:          candidate.Domains,
		Education:        candidate.Education,
		ExtractionSource: candidate.ExtractionSource,
		Indexed:          candidate.IndexState == models.IndexIndexed,
		Timestamp:        time.Now().UTC(),
	})
}
