package db

import (
	"database/sql"
	"time"

	"github.com/siem-watch/backend/internal/model"
)

const alertColumns = `
	id, timestamp, alert_type, severity, title, description,
	source_ip, affected_user, status, assigned_to, event_count`

// CreateAlert - 알림 한 건 저장
// Status 미지정 시 Open, EventCount 미지정 시 1
func (s *Store) CreateAlert(input model.AlertInput) (*model.Alert, error) {
	if !model.ValidSeverity(input.Severity) {
		return nil, ErrInvalidSeverity
	}

	status := input.Status
	if status == "" {
		status = model.AlertStatusOpen
	}
	if !model.ValidAlertStatus(status) {
		return nil, ErrInvalidStatus
	}

	eventCount := input.EventCount
	if eventCount == 0 {
		eventCount = 1
	}

	query := `
		INSERT INTO alerts (
			timestamp, alert_type, severity, title, description,
			source_ip, affected_user, status, assigned_to, event_count
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	alert := model.Alert{
		Timestamp:    time.Now().UTC(),
		AlertType:    input.AlertType,
		Severity:     input.Severity,
		Title:        input.Title,
		Description:  input.Description,
		SourceIP:     input.SourceIP,
		AffectedUser: input.AffectedUser,
		Status:       status,
		AssignedTo:   input.AssignedTo,
		EventCount:   eventCount,
	}

	err := s.Conn.QueryRow(query,
		alert.Timestamp,
		alert.AlertType,
		alert.Severity,
		alert.Title,
		alert.Description,
		alert.SourceIP,
		alert.AffectedUser,
		alert.Status,
		alert.AssignedTo,
		alert.EventCount,
	).Scan(&alert.ID)
	if err != nil {
		return nil, wrap("create_alert", err)
	}
	return &alert, nil
}

// GetRecentAlerts - 최근 알림 조회 (최대 limit건, timestamp 내림차순)
func (s *Store) GetRecentAlerts(limit int) ([]model.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM alerts
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`

	rows, err := s.Conn.Query(query, limit)
	if err != nil {
		return nil, wrap("get_recent_alerts", err)
	}
	return scanAlerts(rows, "get_recent_alerts")
}

// UpdateAlertStatus - 알림 상태 전이 (Open -> Investigating -> Resolved)
func (s *Store) UpdateAlertStatus(id int64, status string) error {
	if !model.ValidAlertStatus(status) {
		return ErrInvalidStatus
	}

	res, err := s.Conn.Exec(`UPDATE alerts SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return wrap("update_alert_status", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrap("update_alert_status", err)
	}
	if affected == 0 {
		return ErrAlertNotFound
	}
	return nil
}

func scanAlerts(rows *sql.Rows, op string) ([]model.Alert, error) {
	defer rows.Close()

	var list []model.Alert
	for rows.Next() {
		var a model.Alert
		if err := rows.Scan(
			&a.ID, &a.Timestamp, &a.AlertType, &a.Severity, &a.Title, &a.Description,
			&a.SourceIP, &a.AffectedUser, &a.Status, &a.AssignedTo, &a.EventCount,
		); err != nil {
			return nil, wrap(op, err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(op, err)
	}

	if list == nil {
		list = []model.Alert{}
	}
	return list, nil
}
