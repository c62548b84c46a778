package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/siem-watch/backend/internal/db"
	"github.com/siem-watch/backend/internal/model"
	"github.com/siem-watch/backend/internal/service"
)

// Alert 핸들러 구조체 정의
type AlertHandler struct {
	eventService *service.EventService
}

// Alert 핸들러 객체 생성
func NewAlertHandler(eventService *service.EventService) *AlertHandler {
	return &AlertHandler{eventService: eventService}
}

// UpdateStatus godoc
// @Summary Transition an alert status (Open / Investigating / Resolved)
// @Tags alerts
// @Accept json
// @Produce json
// @Param id path int true "Alert ID"
// @Param request body model.AlertStatusUpdateRequest true "New status"
// @Success 200 {object} model.AlertStatusUpdateResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/alerts/{id}/status [patch]
func (h *AlertHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert id"})
		return
	}

	var req model.AlertStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := h.eventService.UpdateAlertStatus(id, req.Status); err != nil {
		switch {
		case errors.Is(err, db.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, db.ErrAlertNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, model.AlertStatusUpdateResponse{
		Status:  "success",
		Message: "Alert status updated",
		AlertID: id,
	})
}
