package config

import (
	"os"
	"strings"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Path string
}

// SMTPConfig - Critical 이벤트 이메일 알림 설정
// Email / Password / Recipient 중 하나라도 비어 있으면
// 이메일 알림은 조용히 비활성화됨 (client.Mailer.IsConfigured 참고)
type SMTPConfig struct {
	Server    string
	Port      string
	Email     string
	Password  string
	Recipient string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getenv("PORT", "8080"),
			AllowedOrigins: strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ","),
		},
		Database: DatabaseConfig{
			Path: getenv("SIEM_DB_PATH", "siem_database.db"),
		},
		SMTP: SMTPConfig{
			Server:    getenv("SMTP_SERVER", "smtp.gmail.com"),
			Port:      getenv("SMTP_PORT", "587"),
			Email:     os.Getenv("EMAIL_ADDRESS"),
			Password:  os.Getenv("EMAIL_PASSWORD"),
			Recipient: os.Getenv("ALERT_RECIPIENT"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
