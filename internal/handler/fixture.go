package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/siem-watch/backend/internal/model"
	"github.com/siem-watch/backend/internal/service"
)

// Fixture 핸들러 구조체 정의
type FixtureHandler struct {
	fixtureService *service.FixtureService
}

// Fixture 핸들러 객체 생성
func NewFixtureHandler(fixtureService *service.FixtureService) *FixtureHandler {
	return &FixtureHandler{fixtureService: fixtureService}
}

// AddTestEvent godoc
// @Summary Insert one randomized test event
// @Tags events
// @Produce json
// @Success 200 {object} model.TestEventResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /add_test_event [post]
func (h *FixtureHandler) AddTestEvent(c *gin.Context) {
	event, err := h.fixtureService.AddTestEvent()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Printf("Test event added: type=%s, severity=%s", event.EventType, event.Severity)
	c.JSON(http.StatusOK, model.TestEventResponse{
		Status:  "success",
		Message: "Test event added",
	})
}
