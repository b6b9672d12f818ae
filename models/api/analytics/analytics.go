package analyticsapimodels

// KPI is one scalar metric tracked period-over-period.
type KPI struct {
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
	Previous float64 `json:"previous"`
	Change   int     `json:"change"` // signed percentage change, rounded
}

// FunnelStageView is one row of the conversion funnel.
type FunnelStageView struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	// Value is the stage count as a percentage of the entry stage, one decimal.
	Value float64 `json:"value"`
	// StageToStageRate is the conversion from the immediately previous
	// stage, one decimal. Always 100 for the entry stage.
	StageToStageRate float64 `json:"stage_to_stage_rate"`
}

// Bottleneck is the stage transition with the lowest conversion rate.
type Bottleneck struct {
	FromStage string  `json:"from_stage"`
	ToStage   string  `json:"to_stage"`
	Rate      float64 `json:"rate"`
}

type AssessmentPerformance struct {
	Title       string `json:"title"`
	Submissions int    `json:"submissions"`
	AvgScore    int    `json:"avg_score"` // 0 when there are no graded submissions
}

// HiringTrend is a fixed 12-month series ending at the current month,
// oldest first. The three slices are aligned by index.
type HiringTrend struct {
	Labels     []string `json:"labels"` // abbreviated month names
	Candidates []int    `json:"candidates"`
	Hires      []int    `json:"hires"`
}

// StatusSummary splits the non-closed pipeline into three exclusive buckets.
type StatusSummary struct {
	Hired      int `json:"hired"`
	Rejected   int `json:"rejected"`
	InProgress int `json:"in_progress"`
}

type TopPerformer struct {
	CandidateID string `json:"candidate_id"`
	Name        string `json:"name"`
	AvgScore    int    `json:"avg_score"`
}

type FunnelView struct {
	Stages     []FunnelStageView `json:"stages"`
	Bottleneck *Bottleneck       `json:"bottleneck,omitempty"`
}

// DashboardView is the full analytics payload rendered on the overview tab.
type DashboardView struct {
	KPIs          []KPI                   `json:"kpis"`
	Funnel        FunnelView              `json:"funnel"`
	Assessments   []AssessmentPerformance `json:"assessments"`
	Trend         HiringTrend             `json:"trend"`
	StatusSummary StatusSummary           `json:"status_summary"`
	TopPerformers []TopPerformer          `json:"top_performers"`
}
