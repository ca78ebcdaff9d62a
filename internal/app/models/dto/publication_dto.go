package dto

// PublicationRequest is the full-record payload for creating or replacing a
// publication. faculty_id from the caller is ignored; the server stamps the
// owner itself.
type PublicationRequest struct {
	Title           string `json:"title" binding:"required"`
	Authors         string `json:"authors" binding:"required"`
	PublicationType string `json:"publication_type" binding:"required,oneof=journal conference"`
	Year            int    `json:"year" binding:"required,gte=1900,lte=2100"`
	OfficialURL     string `json:"official_url"`
	Abstract        string `json:"abstract"`
	CoverImage      string `json:"cover_image"`
}

// PublicationFilter carries the optional list filters.
type PublicationFilter struct {
	Search          string
	Year            *int
	PublicationType string
}
