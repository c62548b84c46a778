// 이벤트 데이터 내보내기 (Excel / PDF) 로직 정의
// 둘 다 단발성 리포트 생성이며, 실패 시 에러를 handler로 전파
// (handler는 JSON {"error": ...}로 변환)

package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"

	"github.com/siem-watch/backend/internal/db"
	"github.com/siem-watch/backend/internal/model"
)

// ExportService 구조체 정의
type ExportService struct {
	db *db.Store
}

// ExportService 객체 생성
func NewExportService(store *db.Store) *ExportService {
	return &ExportService{db: store}
}

// excelHeaders - 시트 컬럼 순서 (EventResponse 필드 순서와 동일)
var excelHeaders = []string{
	"ID", "Timestamp", "Event Type", "Source IP", "Destination IP",
	"Source Port", "Destination Port", "Protocol", "Severity", "Message",
	"User Agent", "Username", "Status Code", "File Path", "Process Name",
}

// ExcelReport - 최근 100건을 단일 시트 xlsx로 직렬화
func (s *ExportService) ExcelReport() (string, []byte, error) {
	events, err := s.db.GetRecentEvents(100)
	if err != nil {
		return "", nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Security Events"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	for col, header := range excelHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return "", nil, err
		}
	}

	for row, event := range events {
		values := []any{
			event.ID,
			event.Timestamp.Format(model.TimeFormat),
			event.EventType,
			deref(event.SourceIP),
			deref(event.DestinationIP),
			derefInt(event.SourcePort),
			derefInt(event.DestinationPort),
			deref(event.Protocol),
			event.Severity,
			event.Message,
			deref(event.UserAgent),
			deref(event.Username),
			derefInt(event.StatusCode),
			deref(event.FilePath),
			deref(event.ProcessName),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return "", nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return "", nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	filename := fmt.Sprintf("security_events_%s.xlsx", time.Now().Format("20060102_150405"))
	return filename, buf.Bytes(), nil
}

// PDF 페이지 레이아웃 (Letter, pt 단위, 위에서 아래로 커서 이동)
const (
	pdfLeft       = 50.0
	pdfIndent     = 70.0
	pdfTop        = 50.0
	pdfPageBreakY = 692.0 // 이 지점을 넘으면 새 페이지
)

// PDFReport - 통계 요약 + 최근 이벤트 15건의 텍스트 리포트 생성
func (s *ExportService) PDFReport() (string, []byte, error) {
	events, err := s.db.GetRecentEvents(20)
	if err != nil {
		return "", nil, err
	}
	stats, err := s.db.GetEventStatistics()
	if err != nil {
		return "", nil, err
	}

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.AddPage()

	y := pdfTop
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(pdfLeft, y, fmt.Sprintf("SIEM Security Report - %s", time.Now().Format(model.TimeFormat)))

	y += 30
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(pdfLeft, y, "Statistics:")

	y += 20
	pdf.SetFont("Helvetica", "", 10)
	statLines := []string{
		fmt.Sprintf("Total Events: %d", stats.TotalEvents),
		fmt.Sprintf("High Severity: %d", stats.HighSeverity),
		fmt.Sprintf("Critical Severity: %d", stats.CriticalSeverity),
		fmt.Sprintf("Active Alerts: %d", stats.ActiveAlerts),
	}
	for _, line := range statLines {
		pdf.Text(pdfIndent, y, line)
		y += 20
	}

	y += 20
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(pdfLeft, y, "Recent Security Events:")

	y += 30
	pdf.SetFont("Helvetica", "", 8)
	for i, event := range events {
		if i >= 15 {
			break
		}
		if y > pdfPageBreakY {
			pdf.AddPage()
			y = pdfTop
			pdf.SetFont("Helvetica", "", 8)
		}

		pdf.Text(pdfLeft, y, fmt.Sprintf("%s | %s | %s",
			event.Timestamp.Format(model.TimeFormat), event.EventType, event.Severity))
		y += 10
		msg := event.Message
		if runes := []rune(msg); len(runes) > 80 {
			msg = string(runes[:80])
		}
		sourceIP := deref(event.SourceIP)
		if sourceIP == "" {
			sourceIP = "N/A"
		}
		pdf.Text(pdfIndent, y, fmt.Sprintf("IP: %s | %s...", sourceIP, msg))
		y += 20
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return "", nil, fmt.Errorf("failed to render pdf: %w", err)
	}

	filename := fmt.Sprintf("security_report_%s.pdf", time.Now().Format("20060102_150405"))
	return filename, buf.Bytes(), nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func derefInt(p *int) any {
	if p == nil {
		return ""
	}
	return *p
}
