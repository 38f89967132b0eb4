package reportgen

// Format selects the rendered artifact type
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatExcel Format = "xlsx"
)

// Mode selects how much detail the document report includes
type Mode string

const (
	ModeSummary  Mode = "summary"
	ModeDetailed Mode = "detailed"
)

// PublisherStat is one row of the top-publishers ranking
type PublisherStat struct {
	Publisher  string  `json:"publisher"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// BBTBreakdown partitions distributed units by the BBT classification flag
type BBTBreakdown struct {
	BBT           int     `json:"bbt"`
	Other         int     `json:"other"`
	BBTPercentage float64 `json:"bbt_percentage"`
}

// MonthlyStat is one (month, year) group of the breakdown
type MonthlyStat struct {
	Month  string `json:"month"`
	Year   int    `json:"year"`
	Books  int    `json:"books"`
	Points int    `json:"points"`
}

// BookStat is one row of the top-books ranking, grouped by exact title
type BookStat struct {
	Title         string `json:"title"`
	TotalQuantity int    `json:"total_quantity"`
	TotalPoints   int    `json:"total_points"`
}

// YearStat is one per-year group
type YearStat struct {
	Year    int `json:"year"`
	Reports int `json:"reports"`
	Books   int `json:"books"`
	Points  int `json:"points"`
}

// ReportStatistics is the derived, ephemeral aggregate computed from a set
// of monthly reports. It is a pure function of its input and never persisted.
type ReportStatistics struct {
	TotalReports           int             `json:"total_reports"`
	TotalBooksDistributed  int             `json:"total_books_distributed"`
	TotalPointsEarned      int             `json:"total_points_earned"`
	AverageBooksPerReport  float64         `json:"average_books_per_report"`
	AveragePointsPerReport float64         `json:"average_points_per_report"`
	TopPublishers          []PublisherStat `json:"top_publishers"`
	BBTVsOtherBooks        BBTBreakdown    `json:"bbt_vs_other_books"`
	MonthlyBreakdown       []MonthlyStat   `json:"monthly_breakdown"`
	TopBooks               []BookStat      `json:"top_books"`
	ReportsByYear          []YearStat      `json:"reports_by_year"`
}

// Artifact is a fully rendered report ready for delivery
type Artifact struct {
	Bytes       []byte
	FileName    string
	ContentType string
}

// Delivery describes where a delivered artifact ended up
type Delivery struct {
	Method   string `json:"method"`
	Location string `json:"location"`
}
