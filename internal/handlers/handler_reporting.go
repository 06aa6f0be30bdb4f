package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mkhumalo/site_safety_app/internal/core/ports/services"
	"github.com/mkhumalo/site_safety_app/internal/middleware"
)

// reportingHandler handles the dashboard summary, the data export and the
// bulk clear.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers summary, export and clear routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	rg.GET("/summary", h.getSummary)
	rg.GET("/export", h.exportData)
	rg.DELETE("/data", h.clearData)
}

// getSummary godoc
// @Summary Dashboard summary
// @Description Returns per-collection totals, last activity timestamps, open hazard and active permit counts.
// @Tags reporting
// @Produce json
// @Success 200 {object} domain.Summary
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	summary, err := h.reportingService.Summarize(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// exportData godoc
// @Summary Export all data
// @Description Downloads the full data set as a pretty-printed JSON attachment. The session is never included.
// @Tags reporting
// @Produce json
// @Success 200 {object} domain.Document
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /export [get]
func (h *reportingHandler) exportData(c *gin.Context) {
	data, err := h.reportingService.Export(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="safety-data.json"`)
	c.Data(http.StatusOK, "application/json", data)
}

// clearData godoc
// @Summary Clear operational data
// @Description Deletes every safety record while preserving registered users.
// @Tags reporting
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /data [delete]
func (h *reportingHandler) clearData(c *gin.Context) {
	if err := h.reportingService.ClearOperationalData(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	username, _ := middleware.GetUsernameFromContext(c)
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Operational data cleared", slog.String("username", username))
	c.Status(http.StatusNoContent)
}
