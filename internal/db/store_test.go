package db

import (
	"errors"
	"strings"
	"testing"

	"github.com/siem-watch/backend/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open("")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if err := s.EnsureSchema(); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}
	return s
}

func TestSeedIdempotent(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 2; i++ {
		if err := s.Seed(); err != nil {
			t.Fatalf("Seed() #%d error = %v", i+1, err)
		}
	}

	stats, err := s.GetEventStatistics()
	if err != nil {
		t.Fatalf("GetEventStatistics() error = %v", err)
	}
	if stats.TotalEvents != 5 {
		t.Fatalf("TotalEvents = %d, want 5", stats.TotalEvents)
	}

	alerts, err := s.GetRecentAlerts(100)
	if err != nil {
		t.Fatalf("GetRecentAlerts() error = %v", err)
	}
	if len(alerts) != 2 {
		t.Fatalf("len(alerts) = %d, want 2", len(alerts))
	}
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.EnsureSchema(); err != nil {
		t.Fatalf("second EnsureSchema() error = %v", err)
	}
}

func TestAddEvent(t *testing.T) {
	s := newTestStore(t)

	event, err := s.AddEvent(model.EventInput{
		EventType: "Port Scan",
		Severity:  model.SeverityHigh,
		Message:   "scan detected",
	})
	if err != nil {
		t.Fatalf("AddEvent() error = %v", err)
	}
	if event.ID == 0 {
		t.Fatalf("event.ID = 0, want assigned id")
	}
	if event.Timestamp.IsZero() {
		t.Fatalf("event.Timestamp is zero")
	}
	if event.SourceIP != nil {
		t.Fatalf("SourceIP = %v, want nil", *event.SourceIP)
	}

	// optional 필드가 NULL로 저장되었다가 그대로 복원되는지 확인
	events, err := s.GetRecentEvents(1)
	if err != nil {
		t.Fatalf("GetRecentEvents() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	got := events[0]
	if got.ID != event.ID || got.EventType != "Port Scan" || got.Severity != model.SeverityHigh {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
	if got.SourceIP != nil || got.StatusCode != nil || got.RawLog != nil {
		t.Fatalf("optional fields should be nil: %+v", got)
	}
}

func TestAddEventInvalidSeverity(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddEvent(model.EventInput{
		EventType: "Port Scan",
		Severity:  "EXTREME",
		Message:   "x",
	})
	if !errors.Is(err, ErrInvalidSeverity) {
		t.Fatalf("AddEvent() error = %v, want ErrInvalidSeverity", err)
	}

	stats, err := s.GetEventStatistics()
	if err != nil {
		t.Fatalf("GetEventStatistics() error = %v", err)
	}
	if stats.TotalEvents != 0 {
		t.Fatalf("TotalEvents = %d, want 0 (rejected write must not persist)", stats.TotalEvents)
	}
}

func TestRecentEventsLimitAndOrder(t *testing.T) {
	s := newTestStore(t)

	var ids []int64
	for i := 0; i < 5; i++ {
		e, err := s.AddEvent(model.EventInput{
			EventType: "Failed Login",
			Severity:  model.SeverityLow,
			Message:   "attempt",
		})
		if err != nil {
			t.Fatalf("AddEvent() error = %v", err)
		}
		ids = append(ids, e.ID)
	}

	events, err := s.GetRecentEvents(3)
	if err != nil {
		t.Fatalf("GetRecentEvents() error = %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len(events) = %d, want 3", len(events))
	}

	// 최신 순: 마지막 삽입이 먼저, timestamp는 비증가
	for i, e := range events {
		if want := ids[len(ids)-1-i]; e.ID != want {
			t.Fatalf("events[%d].ID = %d, want %d", i, e.ID, want)
		}
		if i > 0 && e.Timestamp.After(events[i-1].Timestamp) {
			t.Fatalf("timestamps not non-increasing at index %d", i)
		}
	}

	// limit이 전체 건수보다 커도 전체만 반환
	all, err := s.GetRecentEvents(100)
	if err != nil {
		t.Fatalf("GetRecentEvents(100) error = %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("len(all) = %d, want 5", len(all))
	}
}

func TestFilteredEvents(t *testing.T) {
	s := newTestStore(t)

	seed := []model.EventInput{
		{EventType: "Failed Login", SourceIP: strPtr("192.168.1.100"), Severity: model.SeverityMedium, Message: "Failed login attempt for user: admin"},
		{EventType: "Port Scan Detected", SourceIP: strPtr("203.0.113.10"), Severity: model.SeverityHigh, Message: "Port scanning activity detected"},
		{EventType: "Malware Detection", SourceIP: strPtr("192.168.1.150"), Severity: model.SeverityCritical, Message: "Potential malware detected"},
		{EventType: "Network Anomaly", Severity: model.SeverityHigh, Message: "Unusual traffic pattern"},
	}
	for _, input := range seed {
		if _, err := s.AddEvent(input); err != nil {
			t.Fatalf("AddEvent() error = %v", err)
		}
	}

	tests := []struct {
		name      string
		severity  string
		eventType string
		search    string
		want      int
	}{
		{name: "no-filters-returns-all", want: 4},
		{name: "severity-exact", severity: "High", want: 2},
		{name: "severity-critical-only", severity: "Critical", want: 1},
		{name: "severity-no-partial-match", severity: "Hig", want: 0},
		{name: "event-type-exact", eventType: "Malware Detection", want: 1},
		{name: "search-message-case-insensitive", search: "MALWARE", want: 1},
		{name: "search-event-type", search: "port scan", want: 1},
		{name: "search-source-ip", search: "192.168.1.", want: 2},
		{name: "search-null-source-ip-safe", search: "traffic", want: 1},
		{name: "filters-are-anded", severity: "High", search: "traffic", want: 1},
		{name: "anded-to-empty", severity: "Low", search: "malware", want: 0},
		{name: "search-like-metachars-literal", search: "100%", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := s.GetFilteredEvents(tt.severity, tt.eventType, tt.search)
			if err != nil {
				t.Fatalf("GetFilteredEvents() error = %v", err)
			}
			if len(events) != tt.want {
				t.Fatalf("len(events) = %d, want %d", len(events), tt.want)
			}
			for _, e := range events {
				if tt.severity != "" && e.Severity != tt.severity {
					t.Fatalf("severity filter leaked: got %q", e.Severity)
				}
				if tt.eventType != "" && e.EventType != tt.eventType {
					t.Fatalf("event_type filter leaked: got %q", e.EventType)
				}
			}
		})
	}
}

func TestFilteredEventsMatchesRecentWhenEmpty(t *testing.T) {
	s := newTestStore(t)
	if err := s.Seed(); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	filtered, err := s.GetFilteredEvents("", "", "")
	if err != nil {
		t.Fatalf("GetFilteredEvents() error = %v", err)
	}
	recent, err := s.GetRecentEvents(100)
	if err != nil {
		t.Fatalf("GetRecentEvents() error = %v", err)
	}

	if len(filtered) != len(recent) {
		t.Fatalf("len mismatch: filtered=%d recent=%d", len(filtered), len(recent))
	}
	for i := range filtered {
		if filtered[i].ID != recent[i].ID {
			t.Fatalf("order mismatch at %d: %d != %d", i, filtered[i].ID, recent[i].ID)
		}
	}
}

func TestEventTypes(t *testing.T) {
	s := newTestStore(t)
	if err := s.Seed(); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	types, err := s.EventTypes(100)
	if err != nil {
		t.Fatalf("EventTypes() error = %v", err)
	}
	if len(types) != 5 {
		t.Fatalf("len(types) = %d, want 5", len(types))
	}
	for i := 1; i < len(types); i++ {
		if strings.Compare(types[i-1], types[i]) > 0 {
			t.Fatalf("types not sorted: %v", types)
		}
	}
}

func TestStatistics(t *testing.T) {
	s := newTestStore(t)

	stats, err := s.GetEventStatistics()
	if err != nil {
		t.Fatalf("GetEventStatistics() error = %v", err)
	}
	if stats.ActiveAlerts != 0 {
		t.Fatalf("ActiveAlerts = %d, want 0", stats.ActiveAlerts)
	}

	inputs := []model.EventInput{
		{EventType: "A", Severity: model.SeverityLow, Message: "m"},
		{EventType: "B", Severity: model.SeverityHigh, Message: "m"},
		{EventType: "C", Severity: model.SeverityHigh, Message: "m"},
		{EventType: "D", Severity: model.SeverityCritical, Message: "m"},
	}
	for _, input := range inputs {
		if _, err := s.AddEvent(input); err != nil {
			t.Fatalf("AddEvent() error = %v", err)
		}
	}

	if _, err := s.CreateAlert(model.AlertInput{
		AlertType: "Brute Force Attack",
		Severity:  model.SeverityHigh,
		Title:     "t",
	}); err != nil {
		t.Fatalf("CreateAlert() error = %v", err)
	}

	stats, err = s.GetEventStatistics()
	if err != nil {
		t.Fatalf("GetEventStatistics() error = %v", err)
	}
	if stats.TotalEvents != 4 {
		t.Fatalf("TotalEvents = %d, want 4", stats.TotalEvents)
	}
	if stats.HighSeverity != 2 {
		t.Fatalf("HighSeverity = %d, want 2", stats.HighSeverity)
	}
	if stats.CriticalSeverity != 1 {
		t.Fatalf("CriticalSeverity = %d, want 1", stats.CriticalSeverity)
	}
	if stats.ActiveAlerts != 1 {
		t.Fatalf("ActiveAlerts = %d, want 1 (default status Open)", stats.ActiveAlerts)
	}
}

func TestCreateAlertDefaults(t *testing.T) {
	s := newTestStore(t)

	alert, err := s.CreateAlert(model.AlertInput{
		AlertType: "Malware Detection",
		Severity:  model.SeverityCritical,
		Title:     "Potential Malware Detected",
	})
	if err != nil {
		t.Fatalf("CreateAlert() error = %v", err)
	}
	if alert.Status != model.AlertStatusOpen {
		t.Fatalf("Status = %q, want Open", alert.Status)
	}
	if alert.EventCount != 1 {
		t.Fatalf("EventCount = %d, want 1", alert.EventCount)
	}
}

func TestCreateAlertInvalidStatus(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateAlert(model.AlertInput{
		AlertType: "X",
		Severity:  model.SeverityLow,
		Title:     "t",
		Status:    "Closed",
	})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("CreateAlert() error = %v, want ErrInvalidStatus", err)
	}
}

func TestUpdateAlertStatus(t *testing.T) {
	s := newTestStore(t)

	alert, err := s.CreateAlert(model.AlertInput{
		AlertType: "Brute Force Attack",
		Severity:  model.SeverityHigh,
		Title:     "t",
	})
	if err != nil {
		t.Fatalf("CreateAlert() error = %v", err)
	}

	if err := s.UpdateAlertStatus(alert.ID, model.AlertStatusResolved); err != nil {
		t.Fatalf("UpdateAlertStatus() error = %v", err)
	}

	alerts, err := s.GetRecentAlerts(1)
	if err != nil {
		t.Fatalf("GetRecentAlerts() error = %v", err)
	}
	if alerts[0].Status != model.AlertStatusResolved {
		t.Fatalf("Status = %q, want Resolved", alerts[0].Status)
	}

	// Resolved는 active 통계에서 제외
	stats, err := s.GetEventStatistics()
	if err != nil {
		t.Fatalf("GetEventStatistics() error = %v", err)
	}
	if stats.ActiveAlerts != 0 {
		t.Fatalf("ActiveAlerts = %d, want 0", stats.ActiveAlerts)
	}

	if err := s.UpdateAlertStatus(alert.ID, "Broken"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("UpdateAlertStatus() error = %v, want ErrInvalidStatus", err)
	}
	if err := s.UpdateAlertStatus(99999, model.AlertStatusOpen); !errors.Is(err, ErrAlertNotFound) {
		t.Fatalf("UpdateAlertStatus() error = %v, want ErrAlertNotFound", err)
	}
}

func TestStorageErrorUnwrap(t *testing.T) {
	inner := errors.New("disk full")
	err := wrap("add_event", inner)

	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("errors.As failed for %v", err)
	}
	if storageErr.Op != "add_event" {
		t.Fatalf("Op = %q, want add_event", storageErr.Op)
	}
	if !errors.Is(err, inner) {
		t.Fatalf("errors.Is failed to unwrap")
	}
	if wrap("noop", nil) != nil {
		t.Fatalf("wrap(nil) should be nil")
	}
}
