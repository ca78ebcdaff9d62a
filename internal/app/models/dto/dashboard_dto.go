package dto

// DashboardSummary holds the headline counters of the admin dashboard.
type DashboardSummary struct {
	TotalPublications int64 `json:"total_publications"`
	TotalProjects     int64 `json:"total_projects"`
	TotalBooks        int64 `json:"total_books"`
	TotalPhDStudents  int64 `json:"total_phd_students"`
	TotalPatents      int64 `json:"total_patents"`
	TotalAwards       int64 `json:"total_awards"`
	TotalMessages     int64 `json:"total_messages"`
}

// YearCount is a publications-per-year datapoint.
type YearCount struct {
	Year  int   `json:"year"`
	Count int64 `json:"count"`
}

// AgencyFunding is a total-funding-per-agency datapoint.
type AgencyFunding struct {
	FundingAgency string  `json:"funding_agency"`
	TotalAmount   float64 `json:"total_amount"`
}

// StatusCount is a patents-per-status datapoint.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}
