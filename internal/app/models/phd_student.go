package models

import "time"

// PhDStudent represents a supervised doctoral student.
type PhDStudent struct {
	ID           int64     `json:"id"`
	FacultyID    int64     `json:"faculty_id"`
	Name         string    `json:"name"`
	University   string    `json:"university"`
	AwardDate    string    `json:"award_date"`
	ThesisTitle  string    `json:"thesis_title"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	ResearchArea string    `json:"research_area"`
	Bio          string    `json:"bio"`
	ProfileImage string    `json:"profile_image"`
	CreatedAt    time.Time `json:"created_at"`
}
