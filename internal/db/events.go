package db

import (
	"database/sql"
	"strings"
	"time"

	"github.com/siem-watch/backend/internal/model"
)

const eventColumns = `
	id, timestamp, event_type, source_ip, destination_ip,
	source_port, destination_port, protocol, severity, message,
	user_agent, username, status_code, file_path, process_name, raw_log`

// AddEvent - 보안 이벤트 한 건 저장
// 미지정 optional 필드는 NULL, timestamp는 저장 시각(UTC)으로 기록
// severity는 쓰기 경계에서 enum 검증 (범위 밖 값은 저장 자체를 거부)
func (s *Store) AddEvent(input model.EventInput) (*model.Event, error) {
	if !model.ValidSeverity(input.Severity) {
		return nil, ErrInvalidSeverity
	}

	query := `
		INSERT INTO security_events (
			timestamp, event_type, source_ip, destination_ip,
			source_port, destination_port, protocol, severity, message,
			user_agent, username, status_code, file_path, process_name, raw_log
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	event := model.Event{
		Timestamp:       time.Now().UTC(),
		EventType:       input.EventType,
		SourceIP:        input.SourceIP,
		DestinationIP:   input.DestinationIP,
		SourcePort:      input.SourcePort,
		DestinationPort: input.DestinationPort,
		Protocol:        input.Protocol,
		Severity:        input.Severity,
		Message:         input.Message,
		UserAgent:       input.UserAgent,
		Username:        input.Username,
		StatusCode:      input.StatusCode,
		FilePath:        input.FilePath,
		ProcessName:     input.ProcessName,
		RawLog:          input.RawLog,
	}

	err := s.Conn.QueryRow(query,
		event.Timestamp,
		event.EventType,
		event.SourceIP,
		event.DestinationIP,
		event.SourcePort,
		event.DestinationPort,
		event.Protocol,
		event.Severity,
		event.Message,
		event.UserAgent,
		event.Username,
		event.StatusCode,
		event.FilePath,
		event.ProcessName,
		event.RawLog,
	).Scan(&event.ID)
	if err != nil {
		return nil, wrap("add_event", err)
	}
	return &event, nil
}

// GetRecentEvents - 최근 이벤트 조회 (최대 limit건)
// timestamp 내림차순, 같은 시각은 id 내림차순 (기본 해상도에서 충돌 가능)
func (s *Store) GetRecentEvents(limit int) ([]model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM security_events
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`

	rows, err := s.Conn.Query(query, limit)
	if err != nil {
		return nil, wrap("get_recent_events", err)
	}
	return scanEvents(rows, "get_recent_events")
}

// GetFilteredEvents - 조건 검색 (limit 없음)
//   - severity / eventType: 비어 있지 않으면 정확히 일치
//   - search: 비어 있지 않으면 message, event_type, source_ip(NULL은 빈 문자열 취급)
//     중 하나에 대소문자 무시 부분 일치
//
// 제공된 조건은 모두 AND로 결합됨
func (s *Store) GetFilteredEvents(severity, eventType, search string) ([]model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM security_events`

	var conds []string
	var args []any

	if severity != "" {
		conds = append(conds, `severity = ?`)
		args = append(args, severity)
	}
	if eventType != "" {
		conds = append(conds, `event_type = ?`)
		args = append(args, eventType)
	}
	if search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		conds = append(conds, `(
			lower(message) LIKE ? ESCAPE '\'
			OR lower(event_type) LIKE ? ESCAPE '\'
			OR lower(COALESCE(source_ip, '')) LIKE ? ESCAPE '\'
		)`)
		args = append(args, pattern, pattern, pattern)
	}

	if len(conds) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conds, " AND ")
	}
	query += "\n\t\tORDER BY timestamp DESC, id DESC"

	rows, err := s.Conn.Query(query, args...)
	if err != nil {
		return nil, wrap("get_filtered_events", err)
	}
	return scanEvents(rows, "get_filtered_events")
}

// EventTypes - 최근 limit건에 등장한 event_type 목록 (정렬, 필터 드롭다운용)
func (s *Store) EventTypes(limit int) ([]string, error) {
	query := `
		SELECT DISTINCT event_type
		FROM (
			SELECT event_type
			FROM security_events
			ORDER BY timestamp DESC, id DESC
			LIMIT ?
		)
		ORDER BY event_type`

	rows, err := s.Conn.Query(query, limit)
	if err != nil {
		return nil, wrap("event_types", err)
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, wrap("event_types", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("event_types", err)
	}
	if types == nil {
		types = []string{}
	}
	return types, nil
}

func scanEvents(rows *sql.Rows, op string) ([]model.Event, error) {
	defer rows.Close()

	var list []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(
			&e.ID, &e.Timestamp, &e.EventType, &e.SourceIP, &e.DestinationIP,
			&e.SourcePort, &e.DestinationPort, &e.Protocol, &e.Severity, &e.Message,
			&e.UserAgent, &e.Username, &e.StatusCode, &e.FilePath, &e.ProcessName, &e.RawLog,
		); err != nil {
			return nil, wrap(op, err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(op, err)
	}

	if list == nil {
		list = []model.Event{}
	}
	return list, nil
}

// LIKE 패턴 메타문자 이스케이프 (검색어를 순수 부분 문자열로 취급)
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
