package filestorage

import (
	"mime/multipart"
)

// ImageStorage defines the storage operations the upload endpoint needs.
type ImageStorage interface {
	// SaveImage stores an uploaded image and returns its public URL.
	SaveImage(fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a previously stored file given its public URL.
	DeleteFile(fileURL string) error
}
