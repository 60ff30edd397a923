package domain

// TopErrorTag names the most frequent tag among error-level entries and its
// share of all errors, in whole percent.
type TopErrorTag struct {
	Tag        string `json:"tag"`
	Percentage int    `json:"percentage"`
}

// PeakLogs is the busiest hour bucket.
type PeakLogs struct {
	Count int64  `json:"count"`
	Time  string `json:"time"`
}

type Stats struct {
	Errors      int64       `json:"errors"`
	TotalLogs   int64       `json:"totalLogs"`
	UniqueUsers int64       `json:"uniqueUsers"`
	TopErrorTag TopErrorTag `json:"topErrorTag"`
	LogRate     float64     `json:"logRate"`
	PeakLogs    PeakLogs    `json:"peakLogs"`
}

type ChartDataset struct {
	Label           string  `json:"label"`
	Data            []int64 `json:"data"`
	BorderColor     string  `json:"borderColor"`
	BackgroundColor string  `json:"backgroundColor"`
}

type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// DashboardData bundles the stats endpoint payload. Degraded lists the
// aggregates that were replaced by fallback values after a storage failure;
// it is empty when every figure is exact.
type DashboardData struct {
	Stats     Stats     `json:"stats"`
	ChartData ChartData `json:"chartData"`
	Degraded  []string  `json:"degraded,omitempty"`
}
