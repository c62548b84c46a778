// 외부 SMTP 서버와 통신하는 클라이언트 정의
//
// 환경변수:
//   - SMTP_SERVER: SMTP 호스트 (default: smtp.gmail.com)
//   - SMTP_PORT: SMTP 포트 (default: 587)
//   - EMAIL_ADDRESS: 발신 주소 겸 인증 계정
//   - EMAIL_PASSWORD: 인증 자격
//   - ALERT_RECIPIENT: 수신 주소
//
// 전송은 단발성 best-effort:
//   - 재시도 / 큐 / rate limit 없음
//   - 설정이 불완전하면 조용히 스킵 (IsConfigured)
//   - 실패는 호출자가 로깅 후 무시하며, metrics 카운터로만 관측 가능

package client

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/siem-watch/backend/internal/config"
	"github.com/siem-watch/backend/internal/metrics"
	"github.com/siem-watch/backend/internal/model"
)

// SMTP 대화 전체에 적용되는 시간 제한
const sendTimeout = 15 * time.Second

// Mailer 구조체 정의
type Mailer struct {
	server       string
	port         string
	email        string
	password     string
	recipient    string
	dashboardURL string
}

// Mailer 객체 생성
func NewMailer(cfg config.SMTPConfig, dashboardURL string) *Mailer {
	return &Mailer{
		server:       cfg.Server,
		port:         cfg.Port,
		email:        cfg.Email,
		password:     cfg.Password,
		recipient:    cfg.Recipient,
		dashboardURL: dashboardURL,
	}
}

// IsConfigured - 필수 자격/주소가 모두 설정되어 있는지 확인
func (m *Mailer) IsConfigured() bool {
	return m.email != "" && m.password != "" && m.recipient != ""
}

// SendCriticalAlert - Critical 이벤트에 대한 이메일 알림 전송
//
// 설정이 불완전하면 전송을 스킵하고 nil을 반환 (원래부터 실패가 아님).
// 전송 실패는 에러로 반환하지만, 호출자는 계약상 이를 삼킨다.
func (m *Mailer) SendCriticalAlert(event *model.Event) error {
	if !m.IsConfigured() {
		metrics.EmailSkippedTotal.Inc()
		return nil
	}

	metrics.EmailAttemptsTotal.Inc()

	subject := fmt.Sprintf("CRITICAL SECURITY ALERT - %s", event.EventType)
	msg := m.buildMessage(subject, m.buildBody(event))

	if err := m.send(msg); err != nil {
		metrics.EmailFailuresTotal.Inc()
		return err
	}
	return nil
}

// 고정 포맷 plaintext 본문 구성
func (m *Mailer) buildBody(event *model.Event) string {
	sourceIP := "Unknown"
	if event.SourceIP != nil && *event.SourceIP != "" {
		sourceIP = *event.SourceIP
	}

	return fmt.Sprintf(`CRITICAL SECURITY EVENT DETECTED

Event Type: %s
Severity: %s
Time: %s
Source IP: %s
Message: %s

Please investigate immediately.

SIEM Dashboard: %s
`,
		event.EventType,
		event.Severity,
		time.Now().Format(model.TimeFormat),
		sourceIP,
		event.Message,
		m.dashboardURL,
	)
}

// 헤더 + 본문을 RFC 5322 메시지로 조립
func (m *Mailer) buildMessage(subject, body string) string {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", m.email))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", m.recipient))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)
	return msg.String()
}

// STARTTLS + PlainAuth로 단일 메시지 전송
func (m *Mailer) send(msg string) error {
	addr := net.JoinHostPort(m.server, m.port)

	dialer := &net.Dialer{Timeout: sendTimeout}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	// 대화 전체를 sendTimeout 안에 끝내도록 강제
	if err := conn.SetDeadline(time.Now().Add(sendTimeout)); err != nil {
		return fmt.Errorf("failed to set deadline: %w", err)
	}

	c, err := smtp.NewClient(conn, m.server)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer c.Close()

	tlsConfig := &tls.Config{
		ServerName: m.server,
		MinVersion: tls.VersionTLS12,
	}
	if err := c.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	auth := smtp.PlainAuth("", m.email, m.password, m.server)
	if err := c.Auth(auth); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err := c.Mail(m.email); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := c.Rcpt(m.recipient); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("failed to start message: %w", err)
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close message: %w", err)
	}

	// Quit 실패는 무시 (메시지는 이미 전송됨)
	_ = c.Quit()
	return nil
}
