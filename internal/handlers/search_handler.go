package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/ats-engine/internal/models"
	"alfredoptarigan/ats-engine/internal/services"
)

type SearchHandler struct {
	searchService services.SearchService
	validate      *validator.Validate
	log           *zap.Logger
}

func NewSearchHandler(searchService services.SearchService, log *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		validate:      newValidator(),
		log:           log.Named("search_handler"),
	}
}

// HandleSearch handles POST /search
func (h *SearchHandler) HandleSearch(c *fiber.Ctx) error {
	var req models.SearchRequest
	if msg := bindJSON(c, h.validate, &req); msg != "" {
		return respondError(c, fiber.StatusBadRequest, msg)
	}

	resp, err := h.searchService.Search(c.UserContext(), req)
	if err != nil {
		code := statusFor(err)
		if code == fiber.StatusInternalServerError {
			h.log.Error("search failed", zap.Error(err))
			return respondError(c, code, "search failed")
		}
		return respondError(c, code, err.Error())
	}

	return c.JSON(resp)
}
