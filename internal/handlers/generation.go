package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/briefforge/briefforge-backend/internal/pkg/logger"
	"github.com/briefforge/briefforge-backend/internal/services"
	"github.com/briefforge/briefforge-backend/internal/types"
)

type GenerationHandler struct {
	log *logger.Logger
	svc services.GenerationService
}

func NewGenerationHandler(log *logger.Logger, svc services.GenerationService) *GenerationHandler {
	return &GenerationHandler{log: log.With("handler", "GenerationHandler"), svc: svc}
}

// POST /api/briefs/generate
//
// Generation and persistence are deliberately separate: the response carries
// the brief only, and the caller decides whether to save it via POST /api/briefs.
func (h *GenerationHandler) Generate(c *gin.Context) {
	var intake types.IntakeRecord
	if err := c.ShouldBindJSON(&intake); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	brief, err := h.svc.Generate(c.Request.Context(), intake)
	if err != nil {
		if errors.Is(err, services.ErrInvalidIntake) {
			RespondError(c, http.StatusBadRequest, "invalid_intake", err)
			return
		}
		if ge, ok := services.AsGenerationError(err); ok {
			// Both kinds surface as bad-gateway; the code tells the caller
			// whether to back off (service_unavailable) or regenerate
			// (malformed_output).
			RespondError(c, http.StatusBadGateway, string(ge.Kind), err)
			return
		}
		h.log.Error("Generate brief failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "generation_failure", err)
		return
	}

	RespondOK(c, gin.H{"brief": brief})
}
