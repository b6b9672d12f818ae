package aggregate

import (
	analyticsapimodels "recruiting-dashboard-backend/models/api/analytics"
)

// PeriodCounts are the raw counters of one reporting period.
type PeriodCounts struct {
	TotalActive  int
	Applications int
	Hires        int
}

// Delta returns the signed percentage change between two period values,
// rounded to the nearest integer. A growth from zero reports +100, a flat
// zero reports 0.
func Delta(current, previous float64) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return roundInt((current - previous) / previous * 100)
}

// ConversionRate returns hires as a percentage of applications, one decimal.
func ConversionRate(hires, applications int) float64 {
	if applications == 0 {
		return 0
	}
	return round1(float64(hires) / float64(applications) * 100)
}

// KPIs builds the period-over-period headline metrics of the dashboard.
func KPIs(current, previous PeriodCounts) []analyticsapimodels.KPI {
	curRate := ConversionRate(current.Hires, current.Applications)
	prevRate := ConversionRate(previous.Hires, previous.Applications)
	return []analyticsapimodels.KPI{
		{
			Label:    "Total Active Candidates",
			Value:    float64(current.TotalActive),
			Previous: float64(previous.TotalActive),
			Change:   Delta(float64(current.TotalActive), float64(previous.TotalActive)),
		},
		{
			Label:    "Applications",
			Value:    float64(current.Applications),
			Previous: float64(previous.Applications),
			Change:   Delta(float64(current.Applications), float64(previous.Applications)),
		},
		{
			Label:    "Hires",
			Value:    float64(current.Hires),
			Previous: float64(previous.Hires),
			Change:   Delta(float64(current.Hires), float64(previous.Hires)),
		},
		{
			Label:    "Conversion Rate",
			Value:    curRate,
			Previous: prevRate,
			Change:   Delta(curRate, prevRate),
		},
	}
}
