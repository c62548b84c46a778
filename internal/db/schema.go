package db

import (
	"log"

	"github.com/siem-watch/backend/internal/model"
)

// EnsureSchema - security_events / alerts 테이블 생성
// 기존 데이터는 절대 drop하거나 마이그레이션하지 않음
func (s *Store) EnsureSchema() error {
	queries := []string{
		`CREATE SEQUENCE IF NOT EXISTS security_events_id_seq START 1`,
		`CREATE SEQUENCE IF NOT EXISTS alerts_id_seq START 1`,
		`
		CREATE TABLE IF NOT EXISTS security_events (
			id BIGINT PRIMARY KEY DEFAULT nextval('security_events_id_seq'),
			timestamp TIMESTAMP NOT NULL DEFAULT current_timestamp,
			event_type VARCHAR(100) NOT NULL,
			source_ip VARCHAR(45),
			destination_ip VARCHAR(45),
			source_port INTEGER,
			destination_port INTEGER,
			protocol VARCHAR(20),
			severity VARCHAR(20) NOT NULL,
			message TEXT NOT NULL,
			user_agent TEXT,
			username VARCHAR(100),
			status_code INTEGER,
			file_path VARCHAR(500),
			process_name VARCHAR(200),
			raw_log TEXT
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS alerts (
			id BIGINT PRIMARY KEY DEFAULT nextval('alerts_id_seq'),
			timestamp TIMESTAMP NOT NULL DEFAULT current_timestamp,
			alert_type VARCHAR(100) NOT NULL,
			severity VARCHAR(20) NOT NULL,
			title VARCHAR(200) NOT NULL,
			description TEXT,
			source_ip VARCHAR(45),
			affected_user VARCHAR(100),
			status VARCHAR(20) NOT NULL DEFAULT 'Open',
			assigned_to VARCHAR(100),
			event_count INTEGER NOT NULL DEFAULT 1
		)
		`,
	}

	for _, query := range queries {
		if _, err := s.Conn.Exec(query); err != nil {
			return wrap("ensure_schema", err)
		}
	}
	return nil
}

// Seed - 첫 구동 시 샘플 데이터 삽입
// security_events가 비어 있을 때만 동작하므로 재시작해도 중복되지 않음
func (s *Store) Seed() error {
	var count int
	if err := s.Conn.QueryRow(`SELECT COUNT(*) FROM security_events`).Scan(&count); err != nil {
		return wrap("seed", err)
	}
	if count > 0 {
		return nil
	}

	for _, input := range sampleEvents() {
		if _, err := s.AddEvent(input); err != nil {
			return err
		}
	}
	for _, input := range sampleAlerts() {
		if _, err := s.CreateAlert(input); err != nil {
			return err
		}
	}

	log.Printf("Sample security events and alerts created")
	return nil
}

func sampleEvents() []model.EventInput {
	return []model.EventInput{
		{
			EventType:  "Failed Login",
			SourceIP:   strPtr("192.168.1.100"),
			Severity:   model.SeverityMedium,
			Message:    "Failed login attempt for user: admin",
			Username:   strPtr("admin"),
			StatusCode: intPtr(401),
		},
		{
			EventType:  "Brute Force Attack",
			SourceIP:   strPtr("10.0.0.50"),
			Severity:   model.SeverityHigh,
			Message:    "Multiple failed login attempts detected (15 attempts in 5 minutes)",
			Username:   strPtr("admin"),
			StatusCode: intPtr(401),
		},
		{
			EventType: "Suspicious File Access",
			SourceIP:  strPtr("192.168.1.25"),
			Severity:  model.SeverityMedium,
			Message:   "Unauthorized access attempt to sensitive file",
			Username:  strPtr("guest"),
			FilePath:  strPtr("/etc/passwd"),
		},
		{
			EventType:     "Port Scan Detected",
			SourceIP:      strPtr("203.0.113.10"),
			DestinationIP: strPtr("192.168.1.1"),
			Severity:      model.SeverityHigh,
			Message:       "Port scanning activity detected from external IP",
			Protocol:      strPtr("TCP"),
		},
		{
			EventType:   "Malware Detection",
			SourceIP:    strPtr("192.168.1.150"),
			Severity:    model.SeverityCritical,
			Message:     "Potential malware detected in downloaded file",
			FilePath:    strPtr(`C:\Users\John\Downloads\suspicious.exe`),
			ProcessName: strPtr("suspicious.exe"),
		},
	}
}

func sampleAlerts() []model.AlertInput {
	return []model.AlertInput{
		{
			AlertType:    "Brute Force Attack",
			Severity:     model.SeverityHigh,
			Title:        "Multiple Failed Login Attempts",
			Description:  strPtr("User admin has failed login 15 times in 5 minutes from IP 10.0.0.50"),
			SourceIP:     strPtr("10.0.0.50"),
			AffectedUser: strPtr("admin"),
			EventCount:   15,
		},
		{
			AlertType:    "Malware Detection",
			Severity:     model.SeverityCritical,
			Title:        "Potential Malware Detected",
			Description:  strPtr("Suspicious executable detected on workstation"),
			SourceIP:     strPtr("192.168.1.150"),
			AffectedUser: strPtr("John"),
			EventCount:   1,
		},
	}
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
