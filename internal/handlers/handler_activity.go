package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openshelf/library_circulation_app/internal/apperrors"
	portssvc "github.com/openshelf/library_circulation_app/internal/core/ports/services"
	"github.com/openshelf/library_circulation_app/internal/dto"
	"github.com/openshelf/library_circulation_app/internal/middleware"
)

// activityHandler handles HTTP requests for the borrower activity log.
type activityHandler struct {
	activityService portssvc.ActivitySvcFacade
}

func newActivityHandler(as portssvc.ActivitySvcFacade) *activityHandler {
	return &activityHandler{activityService: as}
}

// RegisterActivityRoutes registers routes related to the activity log.
func RegisterActivityRoutes(public *gin.RouterGroup, protected *gin.RouterGroup, as portssvc.ActivitySvcFacade) {
	h := newActivityHandler(as)

	public.GET("/activities", h.listActivities)
	protected.POST("/activities", h.createActivity)
	protected.DELETE("/activities/:regNo", h.deleteActivities)
}

// createActivity godoc
// @Summary Record a borrower activity
// @Description Appends a free-text activity entry keyed by registration number
// @Tags activities
// @Accept  json
// @Produce  json
// @Param   activity body dto.CreateActivityRequest true "Activity details"
// @Success 201 {object} dto.ActivityResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /activities [post]
func (h *activityHandler) createActivity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateActivity", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.activityService.Append(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record activity in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record activity"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToActivityResponse(entry))
}

// listActivities godoc
// @Summary List activity log entries
// @Description Lists all activity entries in chronological order
// @Tags activities
// @Produce  json
// @Success 200 {array} dto.ActivityResponse
// @Router /activities [get]
func (h *activityHandler) listActivities(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.activityService.ListAll(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list activities", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list activities"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListActivityResponse(entries))
}

// deleteActivities godoc
// @Summary Delete activity entries for a registration number
// @Description Removes every activity entry recorded for the given registration number
// @Tags activities
// @Param   regNo path string true "Registration number"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Invalid registration number"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /activities/{regNo} [delete]
func (h *activityHandler) deleteActivities(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if _, err := h.activityService.DeleteByRegistrationNumber(c.Request.Context(), c.Param("regNo")); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to delete activities in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete activities"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
