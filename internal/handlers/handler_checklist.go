package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mkhumalo/site_safety_app/internal/core/ports/services"
	"github.com/mkhumalo/site_safety_app/internal/dto"
)

// checklistHandler handles HTTP requests for PPE checklists.
type checklistHandler struct {
	checklistService portssvc.ChecklistSvcFacade
}

func newChecklistHandler(cs portssvc.ChecklistSvcFacade) *checklistHandler {
	return &checklistHandler{checklistService: cs}
}

// registerChecklistRoutes registers all checklist routes.
func registerChecklistRoutes(rg *gin.RouterGroup, checklistService portssvc.ChecklistSvcFacade) {
	h := newChecklistHandler(checklistService)

	checklists := rg.Group("/checklists")
	{
		checklists.POST("", h.recordChecklist)
		checklists.GET("", h.listChecklists)
	}
}

// recordChecklist godoc
// @Summary Record a PPE checklist
// @Description Records a completed checklist, stamped with the current time and the submitting user.
// @Tags checklists
// @Accept json
// @Produce json
// @Param checklist body dto.RecordChecklistRequest true "Checklist details"
// @Success 201 {object} domain.Checklist
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /checklists [post]
func (h *checklistHandler) recordChecklist(c *gin.Context) {
	var req dto.RecordChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "Validation failed", Fields: dto.FieldErrors(err)})
		return
	}

	checklist, err := h.checklistService.Record(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, checklist)
}

// listChecklists godoc
// @Summary List checklists
// @Description Returns all checklist records in insertion order.
// @Tags checklists
// @Produce json
// @Success 200 {array} domain.Checklist
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /checklists [get]
func (h *checklistHandler) listChecklists(c *gin.Context) {
	checklists, err := h.checklistService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, checklists)
}
