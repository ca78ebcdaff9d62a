package dto

// PhDStudentRequest is the full-record payload for creating or replacing a
// PhD student entry.
type PhDStudentRequest struct {
	Name         string `json:"name" binding:"required"`
	University   string `json:"university" binding:"required"`
	AwardDate    string `json:"award_date"`
	ThesisTitle  string `json:"thesis_title"`
	Role         string `json:"role"`
	Status       string `json:"status" binding:"required,oneof=ongoing completed"`
	ResearchArea string `json:"research_area"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
}
