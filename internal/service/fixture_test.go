package service

import (
	"errors"
	"testing"

	"github.com/siem-watch/backend/internal/db"
	"github.com/siem-watch/backend/internal/model"
)

type fakeNotifier struct {
	configured bool
	fail       bool
	calls      int
}

func (f *fakeNotifier) IsConfigured() bool { return f.configured }

func (f *fakeNotifier) SendCriticalAlert(event *model.Event) error {
	f.calls++
	if f.fail {
		return errors.New("smtp unreachable")
	}
	return nil
}

func newTestStore(t *testing.T) *db.Store {
	t.Helper()

	s, err := db.Open("")
	if err != nil {
		t.Fatalf("db.Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if err := s.EnsureSchema(); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}
	return s
}

func TestBuildTemplate(t *testing.T) {
	svc := NewFixtureService(newTestStore(t), &fakeNotifier{configured: true})

	tests := []struct {
		name           string
		idx            int
		wantType       string
		wantSeverities []string
	}{
		{
			name:           "suspicious-login",
			idx:            0,
			wantType:       "Suspicious Login",
			wantSeverities: []string{model.SeverityHigh, model.SeverityCritical},
		},
		{
			name:           "malware-always-critical",
			idx:            1,
			wantType:       "Malware Detection",
			wantSeverities: []string{model.SeverityCritical},
		},
		{
			name:           "network-anomaly",
			idx:            2,
			wantType:       "Network Anomaly",
			wantSeverities: []string{model.SeverityMedium, model.SeverityHigh},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 랜덤 채움 영역을 포함해 여러 번 생성해도 계약이 유지되는지 확인
			for i := 0; i < 20; i++ {
				svc.mu.Lock()
				input := svc.buildTemplate(tt.idx)
				svc.mu.Unlock()

				if input.EventType != tt.wantType {
					t.Fatalf("EventType = %q, want %q", input.EventType, tt.wantType)
				}
				found := false
				for _, sev := range tt.wantSeverities {
					if input.Severity == sev {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("Severity = %q, want one of %v", input.Severity, tt.wantSeverities)
				}
				if input.SourceIP == nil || *input.SourceIP == "" {
					t.Fatalf("SourceIP not filled")
				}
				if input.Message == "" {
					t.Fatalf("Message not filled")
				}
			}
		})
	}
}

func TestAddTestEventInsertsAndNotifies(t *testing.T) {
	store := newTestStore(t)
	notifier := &fakeNotifier{configured: true}
	svc := NewFixtureService(store, notifier)

	const n = 50
	criticals := 0
	for i := 0; i < n; i++ {
		event, err := svc.AddTestEvent()
		if err != nil {
			t.Fatalf("AddTestEvent() #%d error = %v", i+1, err)
		}
		if !model.ValidSeverity(event.Severity) {
			t.Fatalf("inserted severity %q outside enum", event.Severity)
		}
		if event.Severity == model.SeverityCritical {
			criticals++
		}
	}

	stats, err := store.GetEventStatistics()
	if err != nil {
		t.Fatalf("GetEventStatistics() error = %v", err)
	}
	if stats.TotalEvents != n {
		t.Fatalf("TotalEvents = %d, want %d", stats.TotalEvents, n)
	}

	// Critical 1건당 정확히 1회 전송 시도 (배치/스킵 없음)
	if notifier.calls != criticals {
		t.Fatalf("notifier calls = %d, want %d", notifier.calls, criticals)
	}
}

func TestAddTestEventSkipsUnconfiguredNotifier(t *testing.T) {
	store := newTestStore(t)
	notifier := &fakeNotifier{configured: false}
	svc := NewFixtureService(store, notifier)

	// 미설정 상태에서는 전송 시도 자체가 없어야 함
	for i := 0; i < 50; i++ {
		if _, err := svc.AddTestEvent(); err != nil {
			t.Fatalf("AddTestEvent() error = %v", err)
		}
	}
	if notifier.calls != 0 {
		t.Fatalf("notifier calls = %d, want 0 when unconfigured", notifier.calls)
	}
}

func TestAddTestEventSwallowsNotifierFailure(t *testing.T) {
	store := newTestStore(t)
	notifier := &fakeNotifier{configured: true, fail: true}
	svc := NewFixtureService(store, notifier)

	// 전송이 전부 실패해도 호출자는 절대 실패를 보지 않음
	criticals := 0
	for i := 0; i < 100; i++ {
		event, err := svc.AddTestEvent()
		if err != nil {
			t.Fatalf("AddTestEvent() error = %v (notifier failure must be swallowed)", err)
		}
		if event.Severity == model.SeverityCritical {
			criticals++
		}
	}

	// 실패하더라도 시도 횟수는 Critical 건수와 일치해야 함
	if notifier.calls != criticals {
		t.Fatalf("notifier calls = %d, want %d", notifier.calls, criticals)
	}
	if criticals == 0 {
		t.Fatalf("expected at least one critical event in 100 inserts")
	}
}
