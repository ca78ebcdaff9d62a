package portfolio

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dip-mandal/hod-website/internal/app/models/dto"
)

func writeErrorEnvelope(w http.ResponseWriter, status int, code dto.ErrorCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

func TestClientDecodesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeErrorEnvelope(w, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "book not found")
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.Get(context.Background(), "/books/99", nil, &struct{}{})
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "RES_001", apiErr.Code)
	assert.Equal(t, "book not found", apiErr.Message)
	assert.True(t, IsNotFound(err))
}

func TestClientUnauthorizedHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeErrorEnvelope(w, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	}))
	defer srv.Close()

	fired := false
	client := NewClient(srv.URL, WithUnauthorizedHook(func() { fired = true }))
	err := client.Delete(context.Background(), "/books/1")
	require.Error(t, err)
	assert.True(t, fired)
	assert.False(t, IsNotFound(err))
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithTokenProvider(func() string { return "tok-123" }))
	require.NoError(t, client.Get(context.Background(), "/auth/me", nil, &struct{}{}))
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClientOmitsEmptyToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithTokenProvider(func() string { return "" }))
	var out []struct{}
	require.NoError(t, client.Get(context.Background(), "/public/books", nil, &out))
	assert.Empty(t, gotAuth)
}

func TestClientUploadImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/upload/image", r.URL.Path)
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "photo.jpg", header.Filename)
		w.Write([]byte(`{"url": "http://localhost:8080/uploads/photo.jpg"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	url, err := client.UploadImage(context.Background(), "photo.jpg", strings.NewReader("jpegdata"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/photo.jpg", url)
}

func TestClientTrimsTrailingSlash(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL + "/")
	require.NoError(t, client.Get(context.Background(), "/ping", nil, &struct{}{}))
	assert.Equal(t, "/ping", gotPath)
}
