// 대시보드 HTML 페이지 핸들러
//
// 요청 흐름:
//  1. 쿼리 파라미터(severity, event_type, search) 파싱
//  2. 통계 / 이벤트 / 알림 / 차트 데이터를 service 레이어에서 조회
//  3. template 패키지로 HTML 렌더링

package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/siem-watch/backend/internal/model"
	"github.com/siem-watch/backend/internal/service"
	"github.com/siem-watch/backend/internal/template"
)

// Dashboard 핸들러 구조체 정의
type DashboardHandler struct {
	eventService *service.EventService
}

// Dashboard 핸들러 객체 생성
func NewDashboardHandler(eventService *service.EventService) *DashboardHandler {
	return &DashboardHandler{eventService: eventService}
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	severity := c.Query("severity")
	eventType := c.Query("event_type")
	search := c.Query("search")

	stats, err := h.eventService.Statistics()
	if err != nil {
		h.fail(c, err)
		return
	}

	events, err := h.eventService.FilteredEvents(severity, eventType, search)
	if err != nil {
		h.fail(c, err)
		return
	}

	alerts, err := h.eventService.RecentAlerts(5)
	if err != nil {
		h.fail(c, err)
		return
	}

	chart, err := h.eventService.ChartData()
	if err != nil {
		h.fail(c, err)
		return
	}

	eventTypes, err := h.eventService.EventTypes()
	if err != nil {
		h.fail(c, err)
		return
	}

	data, err := template.BuildDashboardData(
		stats, events, alerts, chart, eventTypes,
		severity, eventType, search,
		time.Now().Format(model.TimeFormat),
	)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := template.Render(c.Writer, data); err != nil {
		// 이미 바디를 쓰기 시작했을 수 있으므로 로깅만
		log.Printf("Failed to render dashboard: %v", err)
	}
}

func (h *DashboardHandler) fail(c *gin.Context, err error) {
	log.Printf("Dashboard query failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
