package dto

// BookRequest is the full-record payload for creating or replacing a book.
type BookRequest struct {
	Title       string `json:"title" binding:"required"`
	Publisher   string `json:"publisher" binding:"required"`
	Year        int    `json:"year" binding:"required,gte=1900,lte=2100"`
	Category    string `json:"category" binding:"required,oneof=authored edited monograph"`
	ISBN        string `json:"isbn"`
	DOI         string `json:"doi"`
	OfficialURL string `json:"official_url"`
	CoverImage  string `json:"cover_image"`
}
