package dto

// AwardRequest is the full-record payload for creating or replacing an award.
type AwardRequest struct {
	Title        string `json:"title" binding:"required"`
	Organization string `json:"organization" binding:"required"`
	AwardDate    string `json:"award_date" binding:"required"`
	Description  string `json:"description"`
}
