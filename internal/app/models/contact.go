package models

import "time"

// ContactInfo is the singleton contact card shown on the public site.
type ContactInfo struct {
	ID            int64  `json:"id"`
	FacultyID     int64  `json:"faculty_id"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Website       string `json:"website"`
	GoogleScholar string `json:"google_scholar"`
	Linkedin      string `json:"linkedin"`
}

// ContactMessage is a visitor-submitted message readable from the admin inbox.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
