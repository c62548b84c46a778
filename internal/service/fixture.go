// 데모용 합성 이벤트 주입 로직 정의
//
// 처리 흐름:
//  1. 3종 템플릿 중 하나를 균등 랜덤 선택
//  2. IP 옥텟 / 포트 / 파일명 랜덤 채움
//  3. db 레이어로 저장
//  4. 결과 severity가 Critical이면 응답 전에 동기적으로 이메일 전송
//     (전송 실패는 로깅 후 무시 - 호출자에게 절대 전파되지 않음)

package service

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/siem-watch/backend/internal/db"
	"github.com/siem-watch/backend/internal/metrics"
	"github.com/siem-watch/backend/internal/model"
)

// Notifier - Critical 이벤트 알림 전송 인터페이스 (client.Mailer가 구현)
type Notifier interface {
	IsConfigured() bool
	SendCriticalAlert(event *model.Event) error
}

// FixtureService 구조체 정의
type FixtureService struct {
	db       *db.Store
	notifier Notifier

	// rand.Rand는 동시성 안전하지 않으므로 뮤텍스로 보호
	mu  sync.Mutex
	rng *rand.Rand
}

// FixtureService 객체 생성
func NewFixtureService(store *db.Store, notifier Notifier) *FixtureService {
	return &FixtureService{
		db:       store,
		notifier: notifier,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// AddTestEvent - 합성 이벤트 한 건 주입
func (s *FixtureService) AddTestEvent() (*model.Event, error) {
	s.mu.Lock()
	input := s.buildTemplate(s.rng.Intn(templateCount))
	s.mu.Unlock()

	event, err := s.db.AddEvent(input)
	if err != nil {
		return nil, err
	}

	metrics.TestEventsTotal.WithLabelValues(event.Severity).Inc()

	// Critical 이벤트는 응답 전에 이메일 전송 (1건당 1회, 배치 없음)
	if event.Severity == model.SeverityCritical {
		s.notifyCritical(event)
	}
	return event, nil
}

func (s *FixtureService) notifyCritical(event *model.Event) {
	if !s.notifier.IsConfigured() {
		log.Printf("Email configuration not complete. Skipping email alert.")
		return
	}
	if err := s.notifier.SendCriticalAlert(event); err != nil {
		// best-effort 계약: 실패는 여기서 끝. metrics 카운터로만 관측됨
		log.Printf("Failed to send alert email for %s: %v", event.EventType, err)
		return
	}
}

const templateCount = 3

// buildTemplate - 템플릿 인덱스(0..2)에 해당하는 이벤트 입력 생성
// 호출 측에서 s.mu를 잡은 상태여야 함
func (s *FixtureService) buildTemplate(idx int) model.EventInput {
	now := time.Now().Format("15:04:05")

	switch idx {
	case 0:
		severity := model.SeverityHigh
		if s.rng.Intn(2) == 0 {
			severity = model.SeverityCritical
		}
		usernames := []string{"admin", "user1", "guest"}
		username := usernames[s.rng.Intn(len(usernames))]
		return model.EventInput{
			EventType: "Suspicious Login",
			SourceIP:  strPtr(fmt.Sprintf("192.168.1.%d", 100+s.rng.Intn(101))),
			Severity:  severity,
			Message:   fmt.Sprintf("Login from unusual location at %s", now),
			Username:  &username,
		}
	case 1:
		return model.EventInput{
			EventType: "Malware Detection",
			SourceIP:  strPtr(fmt.Sprintf("10.0.0.%d", 10+s.rng.Intn(91))),
			Severity:  model.SeverityCritical,
			Message:   fmt.Sprintf("Potential malware detected at %s", now),
			FilePath:  strPtr(fmt.Sprintf("/downloads/suspicious_%d.exe", 1+s.rng.Intn(999))),
		}
	default:
		severity := model.SeverityMedium
		if s.rng.Intn(2) == 0 {
			severity = model.SeverityHigh
		}
		return model.EventInput{
			EventType: "Network Anomaly",
			SourceIP:  strPtr(fmt.Sprintf("203.0.113.%d", 1+s.rng.Intn(50))),
			Severity:  severity,
			Message:   fmt.Sprintf("Unusual traffic pattern detected at %s", now),
			Protocol:  strPtr("TCP"),
		}
	}
}

func strPtr(s string) *string { return &s }
