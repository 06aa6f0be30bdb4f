package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mkhumalo/site_safety_app/internal/core/ports/services"
	"github.com/mkhumalo/site_safety_app/internal/dto"
)

// hazardHandler handles HTTP requests for hazard reports.
type hazardHandler struct {
	hazardService portssvc.HazardSvcFacade
}

func newHazardHandler(hs portssvc.HazardSvcFacade) *hazardHandler {
	return &hazardHandler{hazardService: hs}
}

// registerHazardRoutes registers all hazard routes.
func registerHazardRoutes(rg *gin.RouterGroup, hazardService portssvc.HazardSvcFacade) {
	h := newHazardHandler(hazardService)

	hazards := rg.Group("/hazards")
	{
		hazards.POST("", h.recordHazard)
		hazards.GET("", h.listHazards)
		hazards.GET("/recent", h.recentHazards)
	}
}

// recordHazard godoc
// @Summary Report a hazard
// @Description Records a hazard report with open status, stamped with the current time and the submitting user.
// @Tags hazards
// @Accept json
// @Produce json
// @Param hazard body dto.RecordHazardRequest true "Hazard details"
// @Success 201 {object} domain.Hazard
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /hazards [post]
func (h *hazardHandler) recordHazard(c *gin.Context) {
	var req dto.RecordHazardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "Validation failed", Fields: dto.FieldErrors(err)})
		return
	}

	hazard, err := h.hazardService.Record(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, hazard)
}

// listHazards godoc
// @Summary List hazards
// @Description Returns all hazard reports in insertion order.
// @Tags hazards
// @Produce json
// @Success 200 {array} domain.Hazard
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /hazards [get]
func (h *hazardHandler) listHazards(c *gin.Context) {
	hazards, err := h.hazardService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hazards)
}

// recentHazards godoc
// @Summary Recent hazards
// @Description Returns the most recent hazard reports, newest first. Defaults to 5.
// @Tags hazards
// @Produce json
// @Param n query int false "Number of reports to return"
// @Success 200 {array} domain.Hazard
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /hazards/recent [get]
func (h *hazardHandler) recentHazards(c *gin.Context) {
	n, err := strconv.Atoi(c.DefaultQuery("n", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Query parameter n must be an integer"})
		return
	}

	hazards, err := h.hazardService.Recent(c.Request.Context(), n)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hazards)
}
