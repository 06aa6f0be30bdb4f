package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mkhumalo/site_safety_app/internal/core/ports/services"
	"github.com/mkhumalo/site_safety_app/internal/dto"
)

// rollCallHandler handles HTTP requests for roll call records.
type rollCallHandler struct {
	rollCallService portssvc.RollCallSvcFacade
}

func newRollCallHandler(rs portssvc.RollCallSvcFacade) *rollCallHandler {
	return &rollCallHandler{rollCallService: rs}
}

// registerRollCallRoutes registers all roll call routes.
func registerRollCallRoutes(rg *gin.RouterGroup, rollCallService portssvc.RollCallSvcFacade) {
	h := newRollCallHandler(rollCallService)

	rollcalls := rg.Group("/rollcalls")
	{
		rollcalls.POST("", h.recordRollCall)
		rollcalls.GET("", h.listRollCalls)
	}
}

// recordRollCall godoc
// @Summary Record a roll call
// @Description Records a worker as present, stamped with the current time and the submitting user.
// @Tags rollcalls
// @Accept json
// @Produce json
// @Param rollcall body dto.RecordRollCallRequest true "Roll call details"
// @Success 201 {object} domain.RollCall
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /rollcalls [post]
func (h *rollCallHandler) recordRollCall(c *gin.Context) {
	var req dto.RecordRollCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "Validation failed", Fields: dto.FieldErrors(err)})
		return
	}

	rollCall, err := h.rollCallService.Record(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rollCall)
}

// listRollCalls godoc
// @Summary List roll calls
// @Description Returns all roll call records in insertion order.
// @Tags rollcalls
// @Produce json
// @Success 200 {array} domain.RollCall
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /rollcalls [get]
func (h *rollCallHandler) listRollCalls(c *gin.Context) {
	rollCalls, err := h.rollCallService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rollCalls)
}
