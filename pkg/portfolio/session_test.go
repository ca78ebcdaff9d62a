package portfolio

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dip-mandal/hod-website/internal/app/models/dto"
)

func TestMemoryTokenStore(t *testing.T) {
	store := NewMemoryTokenStore()
	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save("tok"))
	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	require.NoError(t, store.Clear())
	token, _ = store.Load()
	assert.Empty(t, token)
}

func TestFileTokenStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session", "token")
	store := NewFileTokenStore(path)

	// missing file is anonymous, not an error
	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save("tok-file"))
	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-file", token)

	require.NoError(t, store.Clear())
	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	// clearing twice is fine
	require.NoError(t, store.Clear())
}

func TestSessionLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		var req dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Email != "hod@university.edu" || req.Password != "pass" {
			writeErrorEnvelope(w, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid email or password")
			return
		}
		json.NewEncoder(w).Encode(dto.LoginResponse{Token: "tok-login", ExpiresIn: 3600})
	}))
	defer srv.Close()

	store := NewMemoryTokenStore()
	session, err := NewSession(srv.URL, store)
	require.NoError(t, err)
	assert.False(t, session.Authenticated())

	err = session.Login(context.Background(), "hod@university.edu", "wrong")
	require.Error(t, err)
	assert.False(t, session.Authenticated())

	require.NoError(t, session.Login(context.Background(), "hod@university.edu", "pass"))
	assert.True(t, session.Authenticated())
	assert.Equal(t, "tok-login", session.Token())

	stored, _ := store.Load()
	assert.Equal(t, "tok-login", stored)
}

func TestSessionRestoresStoredToken(t *testing.T) {
	store := NewMemoryTokenStore()
	require.NoError(t, store.Save("tok-restored"))

	session, err := NewSession("http://localhost:8080/api/v1", store)
	require.NoError(t, err)
	assert.True(t, session.Authenticated())
	assert.Equal(t, "tok-restored", session.Token())
}

func TestSessionDemotedOnUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeErrorEnvelope(w, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	}))
	defer srv.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Save("tok-stale"))

	session, err := NewSession(srv.URL, store)
	require.NoError(t, err)
	require.True(t, session.Authenticated())

	_, err = session.Me(context.Background())
	require.Error(t, err)

	// any 401 drops the session back to anonymous and clears the store
	assert.False(t, session.Authenticated())
	stored, _ := store.Load()
	assert.Empty(t, stored)
}

func TestSessionLogout(t *testing.T) {
	store := NewMemoryTokenStore()
	require.NoError(t, store.Save("tok"))

	session, err := NewSession("http://localhost:8080/api/v1", store)
	require.NoError(t, err)
	require.NoError(t, session.Logout())

	assert.False(t, session.Authenticated())
	stored, _ := store.Load()
	assert.Empty(t, stored)
}

func TestSessionMe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/me", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(dto.MeResponse{ID: 1, Email: "hod@university.edu", FullName: "Prof. D. Mandal"})
	}))
	defer srv.Close()

	store := NewMemoryTokenStore()
	require.NoError(t, store.Save("tok"))

	session, err := NewSession(srv.URL, store)
	require.NoError(t, err)

	me, err := session.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), me.ID)
	assert.Equal(t, "hod@university.edu", me.Email)
	assert.Equal(t, "Prof. D. Mandal", me.FullName)
}
