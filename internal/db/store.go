// DuckDB 연결 초기화 유틸
//
// 환경변수:
//   - SIEM_DB_PATH: 데이터베이스 파일 경로 (default: siem_database.db)
//
// 파일 기반 단일 스토어를 하나의 *sql.DB 핸들로 공유한다.
// 쓰기 간 격리는 엔진 기본값에 의존하며, 동시 AddEvent 호출은
// GetEventStatistics 조회와 임의로 인터리브될 수 있다.

package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/duckdb/duckdb-go/v2"
)

type Store struct {
	Conn *sql.DB
}

// Open - DuckDB 파일을 열고 연결을 확인
// path가 빈 문자열이면 in-memory 데이터베이스 (테스트용)
func Open(path string) (*Store, error) {
	if path != "" {
		// 파일 경로의 상위 디렉터리가 없으면 생성
		dir := filepath.Dir(path)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
	}

	conn, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{Conn: conn}, nil
}

func (s *Store) Close() error {
	return s.Conn.Close()
}
