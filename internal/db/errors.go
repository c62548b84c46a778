package db

import (
	"errors"

	"github.com/siem-watch/backend/internal/metrics"
)

// 쓰기 경계에서의 enum 검증 실패 (severity / status)
var (
	ErrInvalidSeverity = errors.New("severity must be one of Low, Medium, High, Critical")
	ErrInvalidStatus   = errors.New("status must be one of Open, Investigating, Resolved")
)

// 존재하지 않는 알림 id로 상태 전이를 시도한 경우
var ErrAlertNotFound = errors.New("alert not found")

// StorageError - 스토리지 레이어 실패를 감싸는 에러 타입
// 연결/IO/제약 위반 모두 여기로 수렴하며, 재시도 없이 호출자에게 전파됨
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "storage: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	metrics.StorageErrorsTotal.WithLabelValues(op).Inc()
	return &StorageError{Op: op, Err: err}
}
