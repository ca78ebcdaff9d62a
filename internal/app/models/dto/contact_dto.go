package dto

// ContactInfoRequest replaces the singleton contact card.
type ContactInfoRequest struct {
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	Website       string `json:"website"`
	GoogleScholar string `json:"google_scholar"`
	Linkedin      string `json:"linkedin"`
}

// ContactMessageRequest is a visitor submission from the public contact form.
type ContactMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}
