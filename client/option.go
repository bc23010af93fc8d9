package client

import (
	"net/http"
	"time"

	"github.com/Ismael0303/SOUP-Market-sub001/session"
	"github.com/sirupsen/logrus"
)

// Option represents option
type Option func(c *Client)

// WithSession sets the session holding the auth token
func WithSession(session *session.Session) Option {
	return func(c *Client) {
		c.session = session
	}
}

// WithHTTPClient sets the http client; its transport is wrapped with the authorizing round tripper
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTransport sets the round tripper used beneath the authorizing one
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = transport
	}
}

// WithLogger sets logger
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout sets the overall http client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// RequestOption represents a per call option
type RequestOption func(o *requestOptions)

type requestOptions struct {
	authToken string
	header    http.Header
}

// WithAuthToken authorizes a single call with the given token instead of the session one
func WithAuthToken(token string) RequestOption {
	return func(o *requestOptions) {
		o.authToken = token
	}
}

// WithHeader adds a header to a single call
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.header == nil {
			o.header = http.Header{}
		}
		o.header.Add(key, value)
	}
}

func newRequestOptions(options []RequestOption) *requestOptions {
	ret := &requestOptions{}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
