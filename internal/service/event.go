// 이벤트 조회/통계 비즈니스 로직 정의
// handler에서 받은 필터 파라미터를 db 레이어 쿼리로 연결하고
// 대시보드 차트 데이터셋을 조립

package service

import (
	"time"

	"github.com/siem-watch/backend/internal/db"
	"github.com/siem-watch/backend/internal/model"
)

// 차트/필터 드롭다운이 참조하는 최근 이벤트 수
const chartWindow = 100

// EventService 구조체 정의
type EventService struct {
	db *db.Store
}

// EventService 객체 생성
func NewEventService(store *db.Store) *EventService {
	return &EventService{db: store}
}

func (s *EventService) AddEvent(input model.EventInput) (*model.Event, error) {
	return s.db.AddEvent(input)
}

func (s *EventService) RecentEvents(limit int) ([]model.Event, error) {
	return s.db.GetRecentEvents(limit)
}

// FilteredEvents - 필터가 하나라도 지정되면 조건 검색, 아니면 최근 20건
// (대시보드 기본 화면과 동일한 규칙)
func (s *EventService) FilteredEvents(severity, eventType, search string) ([]model.Event, error) {
	if severity == "" && eventType == "" && search == "" {
		return s.db.GetRecentEvents(20)
	}
	return s.db.GetFilteredEvents(severity, eventType, search)
}

func (s *EventService) Statistics() (*model.Statistics, error) {
	return s.db.GetEventStatistics()
}

// EventTypes - 필터 드롭다운용 event_type 목록 (최근 100건 기준, 정렬)
func (s *EventService) EventTypes() ([]string, error) {
	return s.db.EventTypes(chartWindow)
}

// ChartData - 대시보드 차트 2종의 데이터셋 조립
//   - severity 분포: 최근 100건을 4단계로 집계
//   - 시계열: 최근 7일 일별 이벤트 수. DB에서 실제 집계하며,
//     이벤트가 없는 날은 0으로 채운다 (합성 데이터 없음)
func (s *EventService) ChartData() (*model.ChartData, error) {
	events, err := s.db.GetRecentEvents(chartWindow)
	if err != nil {
		return nil, err
	}

	severityCounts := make([]int, len(model.Severities))
	for _, e := range events {
		for i, sev := range model.Severities {
			if e.Severity == sev {
				severityCounts[i]++
				break
			}
		}
	}

	// 오늘 포함 7일: 6일 전 자정(UTC)부터 집계
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -6)

	byDay, err := s.db.CountEventsByDay(start)
	if err != nil {
		return nil, err
	}

	timeLabels := make([]string, 0, 7)
	timeCounts := make([]int, 0, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		timeLabels = append(timeLabels, day.Format("01/02"))
		timeCounts = append(timeCounts, byDay[day.Format("2006-01-02")])
	}

	return &model.ChartData{
		SeverityLabels: model.Severities,
		SeverityCounts: severityCounts,
		TimeLabels:     timeLabels,
		TimeCounts:     timeCounts,
	}, nil
}

func (s *EventService) RecentAlerts(limit int) ([]model.Alert, error) {
	return s.db.GetRecentAlerts(limit)
}

func (s *EventService) CreateAlert(input model.AlertInput) (*model.Alert, error) {
	return s.db.CreateAlert(input)
}

func (s *EventService) UpdateAlertStatus(id int64, status string) error {
	return s.db.UpdateAlertStatus(id, status)
}
