package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgerrors "github.com/briefforge/briefforge-backend/internal/pkg/errors"
	"github.com/briefforge/briefforge-backend/internal/pkg/logger"
	"github.com/briefforge/briefforge-backend/internal/services"
	"github.com/briefforge/briefforge-backend/internal/types"
)

type BriefHandler struct {
	log *logger.Logger
	svc services.BriefService
}

func NewBriefHandler(log *logger.Logger, svc services.BriefService) *BriefHandler {
	return &BriefHandler{log: log.With("handler", "BriefHandler"), svc: svc}
}

type createBriefRequest struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Status      types.BriefStatus    `json:"status"`
	Author      string               `json:"author"`
	Tags        []string             `json:"tags"`
	BriefData   types.MarketingBrief `json:"brief_data"`
}

// POST /api/briefs
func (h *BriefHandler) Create(c *gin.Context) {
	var req createBriefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		RespondError(c, http.StatusBadRequest, "invalid_body", fmt.Errorf("title required"))
		return
	}

	saved, err := h.svc.CreateBrief(c.Request.Context(), req.BriefData, types.NewBriefMeta{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Author:      req.Author,
		Tags:        req.Tags,
	})
	if err != nil {
		if errors.Is(err, pkgerrors.ErrInvalidArgument) {
			RespondError(c, http.StatusBadRequest, "invalid_body", err)
			return
		}
		h.log.Error("Create brief failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "storage_failure", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": saved.Metadata.ID, "metadata": saved.Metadata})
}

// GET /api/briefs
func (h *BriefHandler) List(c *gin.Context) {
	metas, err := h.svc.ListBriefs(c.Request.Context())
	if err != nil {
		h.log.Error("List briefs failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "storage_failure", err)
		return
	}
	RespondOK(c, gin.H{"briefs": metas})
}

// GET /api/briefs/:id
func (h *BriefHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_brief_id", err)
		return
	}

	saved, err := h.svc.GetBrief(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			RespondError(c, http.StatusNotFound, "brief_not_found", fmt.Errorf("brief %s not found", id))
			return
		}
		h.log.Error("Get brief failed", "id", id, "error", err)
		RespondError(c, http.StatusInternalServerError, "storage_failure", err)
		return
	}

	RespondOK(c, saved)
}

// PATCH /api/briefs/:id
func (h *BriefHandler) UpdateMetadata(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_brief_id", err)
		return
	}

	var patch types.MetadataPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	ok, err := h.svc.UpdateBriefMetadata(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrInvalidArgument) {
			RespondError(c, http.StatusBadRequest, "invalid_body", err)
			return
		}
		h.log.Error("Update brief metadata failed", "id", id, "error", err)
		RespondError(c, http.StatusInternalServerError, "storage_failure", err)
		return
	}
	if !ok {
		RespondError(c, http.StatusNotFound, "brief_not_found", fmt.Errorf("brief %s not found", id))
		return
	}

	c.Status(http.StatusNoContent)
}

// PUT /api/briefs/:id/document
func (h *BriefHandler) ReplaceDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_brief_id", err)
		return
	}

	var brief types.MarketingBrief
	if err := c.ShouldBindJSON(&brief); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	ok, err := h.svc.ReplaceBriefDocument(c.Request.Context(), id, brief)
	if err != nil {
		h.log.Error("Replace brief document failed", "id", id, "error", err)
		RespondError(c, http.StatusInternalServerError, "storage_failure", err)
		return
	}
	if !ok {
		RespondError(c, http.StatusNotFound, "brief_not_found", fmt.Errorf("brief %s not found", id))
		return
	}

	c.Status(http.StatusNoContent)
}

// DELETE /api/briefs/:id
func (h *BriefHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_brief_id", err)
		return
	}

	ok, err := h.svc.DeleteBrief(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Delete brief failed", "id", id, "error", err)
		RespondError(c, http.StatusInternalServerError, "storage_failure", err)
		return
	}
	if !ok {
		RespondError(c, http.StatusNotFound, "brief_not_found", fmt.Errorf("brief %s not found", id))
		return
	}

	c.Status(http.StatusNoContent)
}
