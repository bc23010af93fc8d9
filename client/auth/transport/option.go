package transport

import (
	"net/http"

	"github.com/Ismael0303/SOUP-Market-sub001/session"
)

type Option func(*RoundTripper)

// WithSession sets session
func WithSession(session *session.Session) Option {
	return func(t *RoundTripper) {
		t.session = session
	}
}

// WithTransport sets the inner round tripper
func WithTransport(transport http.RoundTripper) Option {
	return func(t *RoundTripper) {
		t.transport = transport
	}
}
