package analytics

import (
	"bytes"
	"time"

	"recruiting-dashboard-backend/db"
	"recruiting-dashboard-backend/lib/analytics/aggregate"
	analyticsstore "recruiting-dashboard-backend/lib/analytics/store"
	pdfexport "recruiting-dashboard-backend/lib/export/pdf"
	xlsexport "recruiting-dashboard-backend/lib/export/xls"
	initchecker "recruiting-dashboard-backend/lib/utils/init-checker"
	"recruiting-dashboard-backend/models"
	analyticsapimodels "recruiting-dashboard-backend/models/api/analytics"
)

// Provider computes the dashboard view models. Fetching lives in the store,
// the math lives in the aggregate package; this handler only joins the two.
type Provider interface {
	KPIs() ([]analyticsapimodels.KPI, error)
	Funnel() (analyticsapimodels.FunnelView, error)
	AssessmentPerformance() ([]analyticsapimodels.AssessmentPerformance, error)
	HiringTrend() (analyticsapimodels.HiringTrend, error)
	StatusSummary() (analyticsapimodels.StatusSummary, error)
	TopPerformers() ([]analyticsapimodels.TopPerformer, error)
	Dashboard() (analyticsapimodels.DashboardView, error)
	ExportToXls() (*bytes.Buffer, error)
	ReportPDF() ([]byte, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: analyticsstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store analyticsstore.Provider
}

// periods returns the current and previous calendar-month bounds.
func periods(now time.Time) (prevStart, curStart, curEnd time.Time) {
	curStart = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return curStart.AddDate(0, -1, 0), curStart, curStart.AddDate(0, 1, 0)
}

func (i impl) KPIs() ([]analyticsapimodels.KPI, error) {
	prevStart, curStart, curEnd := periods(time.Now())

	current := aggregate.PeriodCounts{}
	previous := aggregate.PeriodCounts{}
	var err error
	current.Applications, current.Hires, err = i.store.PeriodCounts(curStart, curEnd)
	if err != nil {
		return nil, err
	}
	previous.Applications, previous.Hires, err = i.store.PeriodCounts(prevStart, curStart)
	if err != nil {
		return nil, err
	}
	current.TotalActive, err = i.store.ActiveCount()
	if err != nil {
		return nil, err
	}
	previous.TotalActive, err = i.store.ActiveCountBefore(curStart)
	if err != nil {
		return nil, err
	}
	return aggregate.KPIs(current, previous), nil
}

func (i impl) Funnel() (view analyticsapimodels.FunnelView, err error) {
	candidates, err := i.store.PipelineCandidates()
	if err != nil {
		return view, err
	}
	stages := aggregate.Funnel(models.DefaultFunnelStages(), candidates)
	return analyticsapimodels.FunnelView{
		Stages:     stages,
		Bottleneck: aggregate.FindBottleneck(stages),
	}, nil
}

func (i impl) AssessmentPerformance() ([]analyticsapimodels.AssessmentPerformance, error) {
	results, err := i.store.GradedResults()
	if err != nil {
		return nil, err
	}
	return aggregate.Performance(models.DefaultAssessmentTitles(), results), nil
}

func (i impl) HiringTrend() (trend analyticsapimodels.HiringTrend, err error) {
	candidates, err := i.store.PipelineCandidates()
	if err != nil {
		return trend, err
	}
	return aggregate.HiringTrend(time.Now(), candidates), nil
}

func (i impl) StatusSummary() (summary analyticsapimodels.StatusSummary, err error) {
	candidates, err := i.store.PipelineCandidates()
	if err != nil {
		return summary, err
	}
	return aggregate.StatusSummary(candidates), nil
}

func (i impl) TopPerformers() ([]analyticsapimodels.TopPerformer, error) {
	candidates, err := i.store.PipelineCandidates()
	if err != nil {
		return nil, err
	}
	results, err := i.store.GradedResults()
	if err != nil {
		return nil, err
	}
	return aggregate.TopPerformers(candidates, results), nil
}

// Dashboard assembles the whole analytics payload from one candidate fetch
// and one result fetch.
func (i impl) Dashboard() (view analyticsapimodels.DashboardView, err error) {
	candidates, err := i.store.PipelineCandidates()
	if err != nil {
		return view, err
	}
	results, err := i.store.GradedResults()
	if err != nil {
		return view, err
	}
	kpis, err := i.KPIs()
	if err != nil {
		return view, err
	}
	stages := aggregate.Funnel(models.DefaultFunnelStages(), candidates)
	return analyticsapimodels.DashboardView{
		KPIs: kpis,
		Funnel: analyticsapimodels.FunnelView{
			Stages:     stages,
			Bottleneck: aggregate.FindBottleneck(stages),
		},
		Assessments:   aggregate.Performance(models.DefaultAssessmentTitles(), results),
		Trend:         aggregate.HiringTrend(time.Now(), candidates),
		StatusSummary: aggregate.StatusSummary(candidates),
		TopPerformers: aggregate.TopPerformers(candidates, results),
	}, nil
}

func (i impl) ExportToXls() (*bytes.Buffer, error) {
	view, err := i.Dashboard()
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportAnalyticsReport(view)
}

func (i impl) ReportPDF() ([]byte, error) {
	view, err := i.Dashboard()
	if err != nil {
		return nil, err
	}
	return pdfexport.GenerateAnalyticsReport(view)
}
