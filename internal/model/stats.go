package model

// Statistics - 대시보드 상단 4개 통계 타일
// 캐시 없이 호출 시마다 재계산됨
type Statistics struct {
	TotalEvents      int `json:"total_events"`
	HighSeverity     int `json:"high_severity"`
	CriticalSeverity int `json:"critical_severity"`
	ActiveAlerts     int `json:"active_alerts"`
}

// ChartData - 대시보드 차트 2종의 데이터셋
//   - severity 분포: 최근 100건 기준 도넛 차트
//   - 시계열: 최근 7일 일별 이벤트 수 (실제 집계, 합성 데이터 아님)
type ChartData struct {
	SeverityLabels []string `json:"severity_labels"`
	SeverityCounts []int    `json:"severity_counts"`
	TimeLabels     []string `json:"time_labels"`
	TimeCounts     []int    `json:"time_counts"`
}
