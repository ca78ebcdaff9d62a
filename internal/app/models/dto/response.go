package dto

// ListResponse is the pagination envelope every admin list endpoint returns.
// The shape is fixed by the consuming front-end: a data slice plus the total
// row count for the active filters.
type ListResponse struct {
	Data  interface{} `json:"data"`
	Total int64       `json:"total"`
}

// MessageResponse is a minimal acknowledgement body.
type MessageResponse struct {
	Message string `json:"message" example:"deleted"`
}

// UploadResponse is returned by the image upload endpoint.
type UploadResponse struct {
	URL string `json:"url" example:"http://localhost:8080/uploads/4f6e.jpg"`
}
