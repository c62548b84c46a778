// 데이터 내보내기 핸들러 (Excel / PDF 다운로드)
// 실패 시 파일 대신 JSON {"error": ...}와 실패 상태를 반환

package handler

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/siem-watch/backend/internal/metrics"
	"github.com/siem-watch/backend/internal/service"
)

const (
	excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType   = "application/pdf"
)

// Export 핸들러 구조체 정의
type ExportHandler struct {
	exportService *service.ExportService
}

// Export 핸들러 객체 생성
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportExcel godoc
// @Summary Download recent events as an Excel workbook
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} model.ErrorResponse
// @Router /export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	filename, data, err := h.exportService.ExcelReport()
	if err != nil {
		metrics.ExportsTotal.WithLabelValues("excel", "error").Inc()
		log.Printf("Excel export failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.ExportsTotal.WithLabelValues("excel", "ok").Inc()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, excelContentType, data)
}

// ExportPDF godoc
// @Summary Download a statistics + recent events report as PDF
// @Tags export
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 500 {object} model.ErrorResponse
// @Router /export/pdf [get]
func (h *ExportHandler) ExportPDF(c *gin.Context) {
	filename, data, err := h.exportService.PDFReport()
	if err != nil {
		metrics.ExportsTotal.WithLabelValues("pdf", "error").Inc()
		log.Printf("PDF export failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.ExportsTotal.WithLabelValues("pdf", "ok").Inc()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, pdfContentType, data)
}
