package models

import "time"

// Book represents an authored, edited or monograph book.
type Book struct {
	ID          int64     `json:"id"`
	FacultyID   int64     `json:"faculty_id"`
	Title       string    `json:"title"`
	Publisher   string    `json:"publisher"`
	Year        int       `json:"year"`
	Category    string    `json:"category"`
	ISBN        string    `json:"isbn"`
	DOI         string    `json:"doi"`
	OfficialURL string    `json:"official_url"`
	CoverImage  string    `json:"cover_image"`
	CreatedAt   time.Time `json:"created_at"`
}
