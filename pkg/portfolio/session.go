package portfolio

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenStore persists the bearer token between runs.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

// MemoryTokenStore keeps the token in process memory only.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryTokenStore creates an empty in-memory store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryTokenStore) Clear() error {
	return s.Save("")
}

// FileTokenStore keeps the token in a file, 0600.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a store backed by the given file path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Session is the admin-area auth gate. It moves between anonymous and
// authenticated; any 401 from the API demotes it back to anonymous.
type Session struct {
	client *Client
	store  TokenStore

	mu    sync.Mutex
	token string
}

// NewSession creates a session bound to the API at baseURL, restoring any
// token the store still holds. The returned session owns its client; use
// Client() for direct API calls that share the auth state.
func NewSession(baseURL string, store TokenStore, opts ...ClientOption) (*Session, error) {
	s := &Session{store: store}

	token, err := store.Load()
	if err != nil {
		return nil, err
	}
	s.token = token

	opts = append(opts,
		WithTokenProvider(s.Token),
		WithUnauthorizedHook(s.demote),
	)
	s.client = NewClient(baseURL, opts...)
	return s, nil
}

// Client returns the API client carrying this session's token.
func (s *Session) Client() *Client {
	return s.client
}

// Token returns the current bearer token, empty when anonymous.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Authenticated reports whether the session holds a token.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Me describes the authenticated admin account.
type Me struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// Login exchanges credentials for a token and stores it.
func (s *Session) Login(ctx context.Context, email, password string) error {
	var resp loginResponse
	err := s.client.Post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.token = resp.Token
	s.mu.Unlock()
	return s.store.Save(resp.Token)
}

// Me fetches the authenticated admin, verifying the stored token is still
// accepted by the server.
func (s *Session) Me(ctx context.Context) (*Me, error) {
	var me Me
	if err := s.client.Get(ctx, "/auth/me", nil, &me); err != nil {
		return nil, err
	}
	return &me, nil
}

// Logout discards the token.
func (s *Session) Logout() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return s.store.Clear()
}

// demote drops the token without touching the store error path; called from
// the 401 hook where there is no caller to report to.
func (s *Session) demote() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	_ = s.store.Clear()
}
