package db

import (
	"time"

	"github.com/siem-watch/backend/internal/model"
)

// GetEventStatistics - 대시보드 통계 4종
// 단순 count 쿼리이며 캐시 없이 호출 시마다 재계산
func (s *Store) GetEventStatistics() (*model.Statistics, error) {
	var stats model.Statistics

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM security_events`, &stats.TotalEvents},
		{`SELECT COUNT(*) FROM security_events WHERE severity = 'High'`, &stats.HighSeverity},
		{`SELECT COUNT(*) FROM security_events WHERE severity = 'Critical'`, &stats.CriticalSeverity},
		{`SELECT COUNT(*) FROM alerts WHERE status = 'Open'`, &stats.ActiveAlerts},
	}

	for _, c := range counts {
		if err := s.Conn.QueryRow(c.query).Scan(c.dest); err != nil {
			return nil, wrap("get_event_statistics", err)
		}
	}
	return &stats, nil
}

// CountEventsByDay - since 이후의 일별 이벤트 수 집계
// 이벤트가 없는 날짜는 결과에 포함되지 않으므로 호출 측에서 0으로 채움
func (s *Store) CountEventsByDay(since time.Time) (map[string]int, error) {
	query := `
		SELECT CAST(timestamp AS DATE) AS day, COUNT(*)
		FROM security_events
		WHERE timestamp >= ?
		GROUP BY day
		ORDER BY day`

	rows, err := s.Conn.Query(query, since)
	if err != nil {
		return nil, wrap("count_events_by_day", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var day time.Time
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, wrap("count_events_by_day", err)
		}
		counts[day.Format("2006-01-02")] = count
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("count_events_by_day", err)
	}
	return counts, nil
}
