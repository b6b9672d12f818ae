package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	analyticsapimodels "recruiting-dashboard-backend/models/api/analytics"
	dbmodels "recruiting-dashboard-backend/models/db"
)

type Provider interface {
	ExportCandidateList(list []dbmodels.Candidate) (*bytes.Buffer, error)
	ExportAnalyticsReport(view analyticsapimodels.DashboardView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var candidateHeaders = []string{"Name", "Contacts", "Region", "Status", "Last updated"}

func (i impl) ExportCandidateList(list []dbmodels.Candidate) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx file close failed")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, candidateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header failed")
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.FullName()); err != nil {
			return nil, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v", item.Phone, item.Email)); err != nil {
			return nil, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Region); err != nil {
			return nil, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return nil, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.UpdatedAt.Format("02.01.2006 15:04")); err != nil {
			return nil, err
		}
	}
	f.SetSheetName(sheet, "Candidates")
	return f.WriteToBuffer()
}

var funnelHeaders = []string{"Stage", "Candidates", "% of applied", "Stage conversion"}
var trendHeaders = []string{"Month", "Candidates", "Hires"}
var performerHeaders = []string{"Candidate", "Average score"}

func (i impl) ExportAnalyticsReport(view analyticsapimodels.DashboardView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx file close failed")
		}
	}()
	if err := writeFunnelSheet(f, view); err != nil {
		return nil, errors.Wrap(err, "funnel sheet failed")
	}
	if err := writeTrendSheet(f, view.Trend); err != nil {
		return nil, errors.Wrap(err, "trend sheet failed")
	}
	if err := writePerformerSheet(f, view.TopPerformers); err != nil {
		return nil, errors.Wrap(err, "top performer sheet failed")
	}
	return f.WriteToBuffer()
}

func writeFunnelSheet(f *excelize.File, view analyticsapimodels.DashboardView) error {
	sheet := "Sheet1"
	row, err := writeHeader(f, sheet, 0, funnelHeaders)
	if err != nil {
		return err
	}
	for _, stage := range view.Funnel.Stages {
		row++
		if err := writeColumn(f, sheet, 1, row, stage.Name); err != nil {
			return err
		}
		if err := writeColumn(f, sheet, 2, row, stage.Count); err != nil {
			return err
		}
		if err := writeColumn(f, sheet, 3, row, stage.Value); err != nil {
			return err
		}
		if err := writeColumn(f, sheet, 4, row, stage.StageToStageRate); err != nil {
			return err
		}
	}
	if view.Funnel.Bottleneck != nil {
		row += 2
		note := fmt.Sprintf("Bottleneck: %v -> %v (%v%%)",
			view.Funnel.Bottleneck.FromStage, view.Funnel.Bottleneck.ToStage, view.Funnel.Bottleneck.Rate)
		if err := writeColumn(f, sheet, 1, row, note); err != nil {
			return err
		}
	}
	f.SetSheetName(sheet, "Funnel")
	return nil
}

func writeTrendSheet(f *excelize.File, trend analyticsapimodels.HiringTrend) error {
	sheet := "Trends"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	row, err := writeHeader(f, sheet, 0, trendHeaders)
	if err != nil {
		return err
	}
	for idx, label := range trend.Labels {
		row++
		if err := writeColumn(f, sheet, 1, row, label); err != nil {
			return err
		}
		if err := writeColumn(f, sheet, 2, row, trend.Candidates[idx]); err != nil {
			return err
		}
		if err := writeColumn(f, sheet, 3, row, trend.Hires[idx]); err != nil {
			return err
		}
	}
	return nil
}

func writePerformerSheet(f *excelize.File, performers []analyticsapimodels.TopPerformer) error {
	sheet := "Top performers"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	row, err := writeHeader(f, sheet, 0, performerHeaders)
	if err != nil {
		return err
	}
	for _, performer := range performers {
		row++
		if err := writeColumn(f, sheet, 1, row, performer.Name); err != nil {
			return err
		}
		if err := writeColumn(f, sheet, 2, row, performer.AvgScore); err != nil {
			return err
		}
	}
	return nil
}
