package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	analyticsapimodels "recruiting-dashboard-backend/models/api/analytics"
)

// GenerateAnalyticsReport renders the dashboard payload as a one-page
// summary. Core fonts only, no font assets required.
func GenerateAnalyticsReport(view analyticsapimodels.DashboardView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateAnalyticsReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Recruitment Analytics Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeSectionTitle(pdf, "Key metrics")
	pdf.SetFont("Helvetica", "", 11)
	for _, kpi := range view.KPIs {
		line := fmt.Sprintf("%v: %v (previous %v, change %+d%%)", kpi.Label, kpi.Value, kpi.Previous, kpi.Change)
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	writeSectionTitle(pdf, "Funnel")
	pdf.SetFont("Helvetica", "", 11)
	for _, stage := range view.Funnel.Stages {
		line := fmt.Sprintf("%v: %v candidates, %v%% of applied, %v%% stage conversion",
			stage.Name, stage.Count, stage.Value, stage.StageToStageRate)
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	if view.Funnel.Bottleneck != nil {
		pdf.SetFont("Helvetica", "I", 11)
		line := fmt.Sprintf("Bottleneck: %v -> %v (%v%%)",
			view.Funnel.Bottleneck.FromStage, view.Funnel.Bottleneck.ToStage, view.Funnel.Bottleneck.Rate)
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	writeSectionTitle(pdf, "Pipeline status")
	pdf.SetFont("Helvetica", "", 11)
	statusLine := fmt.Sprintf("Hired: %v, Rejected: %v, In progress: %v",
		view.StatusSummary.Hired, view.StatusSummary.Rejected, view.StatusSummary.InProgress)
	pdf.CellFormat(0, 6, statusLine, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeSectionTitle(pdf, "Top performers")
	pdf.SetFont("Helvetica", "", 11)
	if len(view.TopPerformers) == 0 {
		pdf.CellFormat(0, 6, "No graded candidates yet", "", 1, "L", false, 0, "")
	}
	for i, performer := range view.TopPerformers {
		line := fmt.Sprintf("%d. %v - %v", i+1, performer.Name, performer.AvgScore)
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, errors.Wrap(err, "pdf output failed")
	}
	return buf.Bytes(), nil
}

func writeSectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}
