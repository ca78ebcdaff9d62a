package models

import "time"

// Award represents an honor or recognition.
type Award struct {
	ID           int64     `json:"id"`
	FacultyID    int64     `json:"faculty_id"`
	Title        string    `json:"title"`
	Organization string    `json:"organization"`
	AwardDate    string    `json:"award_date"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}
