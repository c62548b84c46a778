package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/siem-watch/backend/internal/model"
	"github.com/siem-watch/backend/internal/service"
)

// API 핸들러 구조체 정의
type APIHandler struct {
	eventService *service.EventService
}

// API 핸들러 객체 생성
func NewAPIHandler(eventService *service.EventService) *APIHandler {
	return &APIHandler{eventService: eventService}
}

// GetEvents godoc
// @Summary List recent security events
// @Tags events
// @Produce json
// @Success 200 {array} model.EventResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/events [get]
func (h *APIHandler) GetEvents(c *gin.Context) {
	events, err := h.eventService.RecentEvents(50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, model.EventsToResponse(events))
}

// GetStats godoc
// @Summary Dashboard statistics
// @Tags stats
// @Produce json
// @Success 200 {object} model.Statistics
// @Failure 500 {object} model.ErrorResponse
// @Router /api/stats [get]
func (h *APIHandler) GetStats(c *gin.Context) {
	stats, err := h.eventService.Statistics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetAlerts godoc
// @Summary List recent alerts
// @Tags alerts
// @Produce json
// @Success 200 {array} model.AlertResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/alerts [get]
func (h *APIHandler) GetAlerts(c *gin.Context) {
	alerts, err := h.eventService.RecentAlerts(10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, model.AlertsToResponse(alerts))
}
