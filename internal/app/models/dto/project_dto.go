package dto

// ProjectRequest is the full-record payload for creating or replacing a project.
type ProjectRequest struct {
	Title         string  `json:"title" binding:"required"`
	FundingAgency string  `json:"funding_agency" binding:"required"`
	Amount        float64 `json:"amount" binding:"gte=0"`
	Role          string  `json:"role" binding:"required"`
	Duration      string  `json:"duration"`
	Status        string  `json:"status" binding:"required,oneof=ongoing completed"`
	Description   string  `json:"description"`
}

// ProjectFilter carries the optional list filters.
type ProjectFilter struct {
	Search string
	Status string
}
