package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dip-mandal/hod-website/internal/pkg/apperrors"
)

func multipartFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	_, header, err := req.FormFile("file")
	require.NoError(t, err)
	return header
}

func TestSaveImageStoresWithUniqueName(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "http://localhost:8080/uploads/")
	require.NoError(t, err)

	url, err := storage.SaveImage(multipartFileHeader(t, "cover.PNG", "pngdata"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
	assert.NotContains(t, url, "cover", "stored name must not reuse the client's filename")
}

func TestSaveImageRejectsNonImageExtensions(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	for _, name := range []string{"payload.exe", "notes.pdf", "script.js", "noextension"} {
		_, err := storage.SaveImage(multipartFileHeader(t, name, "data"))
		require.Error(t, err, name)
		assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType, name)
	}
}

func TestSaveImageNilHeader(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	_, err = storage.SaveImage(nil)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestDeleteFile(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)

	url, err := storage.SaveImage(multipartFileHeader(t, "gone.jpg", "jpegdata"))
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(url))
	_, statErr := filepath.Glob(filepath.Join(dir, "*"))
	require.NoError(t, statErr)

	// deleting the same URL again is a no-op
	require.NoError(t, storage.DeleteFile(url))
	require.NoError(t, storage.DeleteFile(""))
}
