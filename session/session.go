package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ismael0303/SOUP-Market-sub001/session/storage"
	"golang.org/x/oauth2"
)

const (
	// TokenKey is the well-known storage key of the token.
	TokenKey = "token"
	// AuthorizationHeader is the header carrying the bearer token.
	AuthorizationHeader = "Authorization"
	// BearerPrefix precedes the token in the Authorization header value.
	BearerPrefix = "Bearer "
)

// Session is a single-slot token store.
type Session struct {
	key     string
	storage storage.Storage
}

// Storage returns the underlying storage
func (s *Session) Storage() storage.Storage {
	return s.storage
}

// SetToken persists the token, replacing any previous one. An empty token removes it.
func (s *Session) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return s.RemoveToken(ctx)
	}
	if err := s.storage.Set(ctx, s.key, token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

// RemoveToken deletes the token; removing an absent token is not an error.
func (s *Session) RemoveToken(ctx context.Context) error {
	if err := s.storage.Remove(ctx, s.key); err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	return nil
}

// Token returns the stored token or an empty string.
func (s *Session) Token(ctx context.Context) (string, error) {
	token, _, err := s.storage.Get(ctx, s.key)
	if err != nil {
		return "", fmt.Errorf("failed to load token: %w", err)
	}
	return token, nil
}

// IsAuthenticated reports whether a non-empty token is stored.
func (s *Session) IsAuthenticated(ctx context.Context) (bool, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

// AuthHeaders returns {Authorization: "Bearer <token>"}, or an empty map without a token.
func (s *Session) AuthHeaders(ctx context.Context) (map[string]string, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return nil, err
	}
	headers := map[string]string{}
	if token != "" {
		headers[AuthorizationHeader] = BearerPrefix + token
	}
	return headers, nil
}

// OAuth2Token returns the stored token as an oauth2 bearer token, or nil without a token.
func (s *Session) OAuth2Token(ctx context.Context) (*oauth2.Token, error) {
	token, err := s.Token(ctx)
	if err != nil || token == "" {
		return nil, err
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, BearerPrefix) {
		return "", false
	}
	token := header[len(BearerPrefix):]
	return token, token != ""
}

// New creates a session, backed by in-memory storage unless WithStorage is given.
func New(options ...Option) *Session {
	ret := &Session{
		key:     TokenKey,
		storage: storage.NewMemory(),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
