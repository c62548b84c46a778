// Package template provides the dashboard HTML page rendering.
//
// 원본 계약:
//   - 상단 통계 타일 4개
//   - 차트 2종 (severity 도넛 / 7일 시계열 라인)
//   - 필터 폼 (severity, event_type, search - 현재 쿼리 상태 반영)
//   - 이벤트 테이블 (상위 10건, message 60자 초과 시 "..." 말줄임)
//   - 알림 테이블 (최근 5건)
//   - 30초 주기 전체 페이지 자동 새로고침, 테스트 이벤트 주입 버튼
package template

import (
	"encoding/json"
	"html/template"
	"io"
	"strings"

	"github.com/siem-watch/backend/internal/model"
)

// 테이블에 노출할 message 최대 길이 (초과분은 "..."로 대체)
const messageDisplayLimit = 60

// EventRow - 이벤트 테이블 한 행
type EventRow struct {
	Timestamp     string
	EventType     string
	SourceIP      string
	Severity      string
	SeverityClass string
	Message       string
	FullMessage   string
}

// AlertRow - 알림 테이블 한 행
type AlertRow struct {
	Timestamp     string
	AlertType     string
	Severity      string
	SeverityClass string
	Status        string
	StatusClass   string
	Title         string
}

// Option - 필터 드롭다운 항목
type Option struct {
	Value    string
	Selected bool
}

// DashboardData - 대시보드 렌더링 입력 전체
type DashboardData struct {
	LastUpdated      string
	Stats            model.Statistics
	EventCount       int
	EventRows        []EventRow
	AlertRows        []AlertRow
	SeverityOptions  []Option
	EventTypeOptions []Option
	SearchQuery      string

	// Chart.js에 그대로 주입되는 JSON 조각들
	SeverityLabels template.JS
	SeverityCounts template.JS
	TimeLabels     template.JS
	TimeCounts     template.JS
	StatsJSON      template.JS
}

// EventRowFromModel - model.Event에서 테이블 행 생성
func EventRowFromModel(e model.Event) EventRow {
	sourceIP := "N/A"
	if e.SourceIP != nil && *e.SourceIP != "" {
		sourceIP = *e.SourceIP
	}
	return EventRow{
		Timestamp:     e.Timestamp.Format(model.TimeFormat),
		EventType:     e.EventType,
		SourceIP:      sourceIP,
		Severity:      e.Severity,
		SeverityClass: "severity-" + strings.ToLower(e.Severity),
		Message:       TruncateMessage(e.Message),
		FullMessage:   e.Message,
	}
}

// AlertRowFromModel - model.Alert에서 테이블 행 생성
func AlertRowFromModel(a model.Alert) AlertRow {
	return AlertRow{
		Timestamp:     a.Timestamp.Format(model.TimeFormat),
		AlertType:     a.AlertType,
		Severity:      a.Severity,
		SeverityClass: "severity-" + strings.ToLower(a.Severity),
		Status:        a.Status,
		StatusClass:   "status-" + strings.ToLower(a.Status),
		Title:         a.Title,
	}
}

// TruncateMessage - 60자(rune 기준) 초과 시 잘라내고 "..." 부착
func TruncateMessage(msg string) string {
	runes := []rune(msg)
	if len(runes) <= messageDisplayLimit {
		return msg
	}
	return string(runes[:messageDisplayLimit]) + "..."
}

// BuildDashboardData - 조회 결과를 렌더링 입력으로 조립
//
// events는 필터 적용 결과 전체를 받고, 테이블에는 상위 10건만 노출.
// eventTypes는 드롭다운 항목 (정렬된 상태로 전달됨).
func BuildDashboardData(
	stats *model.Statistics,
	events []model.Event,
	alerts []model.Alert,
	chart *model.ChartData,
	eventTypes []string,
	severityFilter, eventTypeFilter, searchQuery, lastUpdated string,
) (*DashboardData, error) {
	data := &DashboardData{
		LastUpdated: lastUpdated,
		Stats:       *stats,
		EventCount:  len(events),
		SearchQuery: searchQuery,
	}

	rows := events
	if len(rows) > 10 {
		rows = rows[:10]
	}
	for _, e := range rows {
		data.EventRows = append(data.EventRows, EventRowFromModel(e))
	}
	for _, a := range alerts {
		data.AlertRows = append(data.AlertRows, AlertRowFromModel(a))
	}

	for _, sev := range model.Severities {
		data.SeverityOptions = append(data.SeverityOptions, Option{Value: sev, Selected: sev == severityFilter})
	}
	for _, et := range eventTypes {
		data.EventTypeOptions = append(data.EventTypeOptions, Option{Value: et, Selected: et == eventTypeFilter})
	}

	for _, part := range []struct {
		dest *template.JS
		v    any
	}{
		{&data.SeverityLabels, chart.SeverityLabels},
		{&data.SeverityCounts, chart.SeverityCounts},
		{&data.TimeLabels, chart.TimeLabels},
		{&data.TimeCounts, chart.TimeCounts},
		{&data.StatsJSON, stats},
	} {
		b, err := json.Marshal(part.v)
		if err != nil {
			return nil, err
		}
		*part.dest = template.JS(b)
	}

	return data, nil
}

// Render - 대시보드 페이지를 w에 렌더링
func Render(w io.Writer, data *DashboardData) error {
	return dashboardTmpl.Execute(w, data)
}

var dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardHTML))
