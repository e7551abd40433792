package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"itacatech/internal/pdf"
	"itacatech/internal/services"
)

type ReportHandler struct {
	Service   *services.ReportService
	Generator pdf.Generator
}

func NewReportHandler(service *services.ReportService, generator pdf.Generator) *ReportHandler {
	return &ReportHandler{Service: service, Generator: generator}
}

func (h *ReportHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Summary())
}

func (h *ReportHandler) Weekly(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Weekly(time.Now()))
}

func (h *ReportHandler) WeeklyPDF(c *gin.Context) {
	report := h.Service.Weekly(time.Now())
	data, err := h.Generator.GenerateWeeklyReport(report)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate report"})
		return
	}

	filename := fmt.Sprintf("relatorio-semanal-%s.pdf", report.GeneratedAt)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
