// 보안 이벤트 레코드 및 severity enum 정의
// db, service, handler, template 레이어에서 공통으로 사용

package model

import "time"

// TimeFormat - 대시보드/API 응답에 사용하는 타임스탬프 포맷
const TimeFormat = "2006-01-02 15:04:05"

// Severity 4단계 enum (Low < Medium < High < Critical)
const (
	SeverityLow      = "Low"
	SeverityMedium   = "Medium"
	SeverityHigh     = "High"
	SeverityCritical = "Critical"
)

// Severities - 필터 드롭다운 및 차트 라벨 순서
var Severities = []string{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

// ValidSeverity - severity 값이 4단계 enum에 속하는지 검증
func ValidSeverity(s string) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Event - 저장된 보안 이벤트 한 건
// event_type, severity, message는 항상 존재. 나머지는 optional (NULL 허용)
type Event struct {
	ID              int64
	Timestamp       time.Time
	EventType       string
	SourceIP        *string
	DestinationIP   *string
	SourcePort      *int
	DestinationPort *int
	Protocol        *string
	Severity        string
	Message         string
	UserAgent       *string
	Username        *string
	StatusCode      *int
	FilePath        *string
	ProcessName     *string
	RawLog          *string
}

// EventInput - 이벤트 생성 입력
// id/timestamp는 저장 시점에 할당됨. 미지정 optional 필드는 NULL로 저장
type EventInput struct {
	EventType       string
	SourceIP        *string
	DestinationIP   *string
	SourcePort      *int
	DestinationPort *int
	Protocol        *string
	Severity        string
	Message         string
	UserAgent       *string
	Username        *string
	StatusCode      *int
	FilePath        *string
	ProcessName     *string
	RawLog          *string
}

// EventResponse - JSON 응답용 이벤트 표현 (raw_log 제외)
type EventResponse struct {
	ID              int64   `json:"id"`
	Timestamp       string  `json:"timestamp"`
	EventType       string  `json:"event_type"`
	SourceIP        *string `json:"source_ip"`
	DestinationIP   *string `json:"destination_ip"`
	SourcePort      *int    `json:"source_port"`
	DestinationPort *int    `json:"destination_port"`
	Protocol        *string `json:"protocol"`
	Severity        string  `json:"severity"`
	Message         string  `json:"message"`
	UserAgent       *string `json:"user_agent"`
	Username        *string `json:"username"`
	StatusCode      *int    `json:"status_code"`
	FilePath        *string `json:"file_path"`
	ProcessName     *string `json:"process_name"`
}

// ToResponse - Event를 JSON 응답 표현으로 변환
func (e Event) ToResponse() EventResponse {
	return EventResponse{
		ID:              e.ID,
		Timestamp:       e.Timestamp.Format(TimeFormat),
		EventType:       e.EventType,
		SourceIP:        e.SourceIP,
		DestinationIP:   e.DestinationIP,
		SourcePort:      e.SourcePort,
		DestinationPort: e.DestinationPort,
		Protocol:        e.Protocol,
		Severity:        e.Severity,
		Message:         e.Message,
		UserAgent:       e.UserAgent,
		Username:        e.Username,
		StatusCode:      e.StatusCode,
		FilePath:        e.FilePath,
		ProcessName:     e.ProcessName,
	}
}

// EventsToResponse - 이벤트 목록 일괄 변환
func EventsToResponse(events []Event) []EventResponse {
	list := make([]EventResponse, 0, len(events))
	for _, e := range events {
		list = append(list, e.ToResponse())
	}
	return list
}
