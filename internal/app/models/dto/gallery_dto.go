package dto

// GalleryItemRequest is the full-record payload for creating or replacing a
// gallery item.
type GalleryItemRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	MediaURL    string `json:"media_url" binding:"required"`
	MediaType   string `json:"media_type" binding:"required,oneof=image"`
}
