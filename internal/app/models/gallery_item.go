package models

import "time"

// GalleryItem represents a media gallery entry. Only images are stored today;
// media_type is kept so video support does not need a schema change.
type GalleryItem struct {
	ID          int64     `json:"id"`
	FacultyID   int64     `json:"faculty_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	MediaURL    string    `json:"media_url"`
	MediaType   string    `json:"media_type"`
	CreatedAt   time.Time `json:"created_at"`
}
