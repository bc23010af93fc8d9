package transport

import (
	"fmt"
	"net/http"

	"github.com/Ismael0303/SOUP-Market-sub001/session"
	"golang.org/x/oauth2"
)

type RoundTripper struct {
	session   *session.Session
	transport http.RoundTripper
}

func New(options ...Option) (*RoundTripper, error) {
	ret := &RoundTripper{
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.session == nil {
		ret.session = session.New()
	}
	return ret, nil
}

func (r *RoundTripper) Session() *session.Session {
	return r.session
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := r.token(req)
	if err != nil {
		if req.Body != nil {
			_ = req.Body.Close()
		}
		return nil, err
	}
	if token == nil {
		return r.transport.RoundTrip(req)
	}
	authorized := clone(req)
	token.SetAuthHeader(authorized)
	return r.transport.RoundTrip(authorized)
}

func (r *RoundTripper) token(req *http.Request) (*oauth2.Token, error) {
	if override := getAuthToken(req.Context()); override != "" {
		return &oauth2.Token{AccessToken: override, TokenType: "Bearer"}, nil
	}
	token, err := r.session.OAuth2Token(req.Context())
	if err != nil {
		return nil, fmt.Errorf("failed to authorize %v %v: %w", req.Method, req.URL, err)
	}
	return token, nil
}
