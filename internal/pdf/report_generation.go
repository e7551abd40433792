package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"itacatech/internal/services"
)

// Generator renders reports for download (easy to mock in tests).
type Generator interface {
	GenerateWeeklyReport(report services.WeeklyReport) ([]byte, error)
}

// ReportGenerator builds the weekly productivity report as an A4 PDF using
// the core fonts; the cp1252 translator covers Portuguese accents.
type ReportGenerator struct{}

func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

func (g *ReportGenerator) GenerateWeeklyReport(report services.WeeklyReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, tr("Relatório Semanal — ItacaTech"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, 6, tr("Resumo de produtividade e atividades dos últimos 7 dias."), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Gerado em: %s", report.GeneratedAt)), "", 1, "L", false, 0, "")
	pdf.Ln(4)
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, tr("Tarefas"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	rows := [][2]string{
		{"Tarefas na semana", fmt.Sprintf("%d", report.TasksThisWeek)},
		{"Tarefas concluídas", fmt.Sprintf("%d", report.CompletedTasks)},
		{"Taxa de conclusão", fmt.Sprintf("%d%%", report.CompletionRate)},
		{"Alta prioridade concluídas", fmt.Sprintf("%d", report.HighPriorityCompleted)},
	}
	for _, row := range rows {
		pdf.CellFormat(90, 7, tr(row[0]), "B", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, row[1], "B", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, tr(fmt.Sprintf("Reuniões da semana (%d)", report.NewAppointments)), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	if len(report.Appointments) == 0 {
		pdf.CellFormat(0, 7, tr("Nenhuma reunião nos últimos 7 dias."), "", 1, "L", false, 0, "")
	}
	for _, apt := range report.Appointments {
		line := fmt.Sprintf("%s — %s às %s (%s)", apt.ClientName, apt.Date, apt.Time, apt.Status)
		pdf.CellFormat(0, 7, tr(line), "B", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render weekly report pdf: %w", err)
	}
	return buf.Bytes(), nil
}
