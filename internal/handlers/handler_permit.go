package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mkhumalo/site_safety_app/internal/core/ports/services"
	"github.com/mkhumalo/site_safety_app/internal/dto"
)

// permitHandler handles HTTP requests for work and vehicle permits.
type permitHandler struct {
	permitService portssvc.PermitSvcFacade
}

func newPermitHandler(ps portssvc.PermitSvcFacade) *permitHandler {
	return &permitHandler{permitService: ps}
}

// registerPermitRoutes registers all permit routes.
func registerPermitRoutes(rg *gin.RouterGroup, permitService portssvc.PermitSvcFacade) {
	h := newPermitHandler(permitService)

	work := rg.Group("/work-permits")
	{
		work.POST("", h.issueWorkPermit)
		work.GET("", h.listWorkPermits)
	}

	vehicle := rg.Group("/vehicle-permits")
	{
		vehicle.POST("", h.issueVehiclePermit)
		vehicle.GET("", h.listVehiclePermits)
	}
}

// issueWorkPermit godoc
// @Summary Issue a work permit
// @Description Issues a work permit with the selected precautions resolved against the fixed precaution set.
// @Tags permits
// @Accept json
// @Produce json
// @Param permit body dto.IssueWorkPermitRequest true "Work permit details"
// @Success 201 {object} domain.WorkPermit
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /work-permits [post]
func (h *permitHandler) issueWorkPermit(c *gin.Context) {
	var req dto.IssueWorkPermitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "Validation failed", Fields: dto.FieldErrors(err)})
		return
	}

	permit, err := h.permitService.IssueWorkPermit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, permit)
}

// listWorkPermits godoc
// @Summary List work permits
// @Description Returns all work permits in insertion order.
// @Tags permits
// @Produce json
// @Success 200 {array} domain.WorkPermit
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /work-permits [get]
func (h *permitHandler) listWorkPermits(c *gin.Context) {
	permits, err := h.permitService.ListWorkPermits(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, permits)
}

// issueVehiclePermit godoc
// @Summary Issue a vehicle permit
// @Description Issues a vehicle permit with the selected safety checks resolved against the fixed check set.
// @Tags permits
// @Accept json
// @Produce json
// @Param permit body dto.IssueVehiclePermitRequest true "Vehicle permit details"
// @Success 201 {object} domain.VehiclePermit
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vehicle-permits [post]
func (h *permitHandler) issueVehiclePermit(c *gin.Context) {
	var req dto.IssueVehiclePermitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "Validation failed", Fields: dto.FieldErrors(err)})
		return
	}

	permit, err := h.permitService.IssueVehiclePermit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, permit)
}

// listVehiclePermits godoc
// @Summary List vehicle permits
// @Description Returns all vehicle permits in insertion order.
// @Tags permits
// @Produce json
// @Success 200 {array} domain.VehiclePermit
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vehicle-permits [get]
func (h *permitHandler) listVehiclePermits(c *gin.Context) {
	permits, err := h.permitService.ListVehiclePermits(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, permits)
}
