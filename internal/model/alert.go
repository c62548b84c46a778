// Alert 레코드 및 status enum 정의
// Alert는 Event와 독립적인 라이프사이클을 가짐 (FK 없음)

package model

import "time"

// Alert status 3단계 enum (Open -> Investigating -> Resolved)
const (
	AlertStatusOpen          = "Open"
	AlertStatusInvestigating = "Investigating"
	AlertStatusResolved      = "Resolved"
)

// ValidAlertStatus - status 값이 3단계 enum에 속하는지 검증
func ValidAlertStatus(s string) bool {
	switch s {
	case AlertStatusOpen, AlertStatusInvestigating, AlertStatusResolved:
		return true
	}
	return false
}

// Alert - 저장된 알림 한 건
type Alert struct {
	ID           int64
	Timestamp    time.Time
	AlertType    string
	Severity     string
	Title        string
	Description  *string
	SourceIP     *string
	AffectedUser *string
	Status       string
	AssignedTo   *string
	EventCount   int
}

// AlertInput - 알림 생성 입력
// Status 미지정 시 Open, EventCount 미지정(0) 시 1로 저장
type AlertInput struct {
	AlertType    string
	Severity     string
	Title        string
	Description  *string
	SourceIP     *string
	AffectedUser *string
	Status       string
	AssignedTo   *string
	EventCount   int
}

// AlertResponse - JSON 응답용 알림 표현
type AlertResponse struct {
	ID           int64   `json:"id"`
	Timestamp    string  `json:"timestamp"`
	AlertType    string  `json:"alert_type"`
	Severity     string  `json:"severity"`
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	SourceIP     *string `json:"source_ip"`
	AffectedUser *string `json:"affected_user"`
	Status       string  `json:"status"`
	AssignedTo   *string `json:"assigned_to"`
	EventCount   int     `json:"event_count"`
}

// ToResponse - Alert를 JSON 응답 표현으로 변환
func (a Alert) ToResponse() AlertResponse {
	return AlertResponse{
		ID:           a.ID,
		Timestamp:    a.Timestamp.Format(TimeFormat),
		AlertType:    a.AlertType,
		Severity:     a.Severity,
		Title:        a.Title,
		Description:  a.Description,
		SourceIP:     a.SourceIP,
		AffectedUser: a.AffectedUser,
		Status:       a.Status,
		AssignedTo:   a.AssignedTo,
		EventCount:   a.EventCount,
	}
}

// AlertsToResponse - 알림 목록 일괄 변환
func AlertsToResponse(alerts []Alert) []AlertResponse {
	list := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		list = append(list, a.ToResponse())
	}
	return list
}
