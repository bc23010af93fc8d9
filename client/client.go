package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Ismael0303/SOUP-Market-sub001/client/auth/transport"
	"github.com/Ismael0303/SOUP-Market-sub001/gate"
	"github.com/Ismael0303/SOUP-Market-sub001/session"
	"github.com/sirupsen/logrus"
)

const (
	tokenURI   = "api/token/"
	reviewsURI = "api/reviews/"
)

var (
	errNilReview      = errors.New("review was nil")
	errNilCredentials = errors.New("credentials were nil")
	errNoAccessToken  = errors.New("token response did not include an access token")
)

// Client represents a reviews API client
type Client struct {
	baseURL    string
	session    *session.Session
	httpClient *http.Client
	transport  http.RoundTripper
	logger     logrus.FieldLogger
	timeout    time.Duration
}

// Session returns the client session
func (c *Client) Session() *session.Session {
	return c.session
}

// BaseURL returns the API base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Login(ctx context.Context, credentials *Credentials, options ...RequestOption) (*TokenPair, error) {
	if credentials == nil {
		return nil, errNilCredentials
	}
	pair, err := send[TokenPair](ctx, c, http.MethodPost, tokenURI, credentials, options)
	if err != nil {
		return nil, err
	}
	if pair.Access == "" {
		return nil, errNoAccessToken
	}
	if err = c.session.SetToken(ctx, pair.Access); err != nil {
		return nil, err
	}
	return pair, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.session.RemoveToken(ctx)
}

func (c *Client) ListReviews(ctx context.Context, options ...RequestOption) ([]*Review, error) {
	reviews, err := send[[]*Review](ctx, c, http.MethodGet, reviewsURI, nil, options)
	if err != nil {
		return nil, err
	}
	return *reviews, nil
}

func (c *Client) GetReview(ctx context.Context, id int, options ...RequestOption) (*Review, error) {
	return send[Review](ctx, c, http.MethodGet, reviewsURI+strconv.Itoa(id)+"/", nil, options)
}

func (c *Client) CreateReview(ctx context.Context, review *Review, options ...RequestOption) (*Review, error) {
	if review == nil {
		return nil, errNilReview
	}
	return send[Review](ctx, c, http.MethodPost, reviewsURI, review, options)
}

// send issues a request and hands the response to the gate; transport errors are returned as is
func send[R any](ctx context.Context, client *Client, method, URI string, payload interface{}, options []RequestOption) (*R, error) {
	opts := newRequestOptions(options)
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %v %v request: %w", method, URI, err)
		}
		body = bytes.NewReader(data)
	}
	if opts.authToken != "" {
		ctx = transport.WithAuthToken(ctx, opts.authToken)
	}
	req, err := http.NewRequestWithContext(ctx, method, client.baseURL+"/"+URI, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if method == http.MethodGet {
		req.Header.Set("Accept", "application/json")
	}
	for key, values := range opts.header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	logger := client.logger.WithField("method", method).WithField("url", req.URL.String())
	started := time.Now()
	resp, err := client.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).Debug("request failed")
		return nil, err
	}
	result := gate.Evaluate(resp)
	logger = logger.WithField("status", result.StatusCode).WithField("elapsed", time.Since(started))
	if !result.Ok() {
		logger.WithError(result.Err).Debug("request rejected")
	} else {
		logger.Debug("request completed")
	}
	var ret R
	if err = result.Unmarshal(&ret); err != nil {
		return nil, err
	}
	return &ret, nil
}

// New creates a client for the API rooted at baseURL
func New(baseURL string, options ...Option) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: expected scheme and host", baseURL)
	}
	ret := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logrus.StandardLogger(),
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.session == nil {
		ret.session = session.New()
	}
	inner := ret.transport
	if inner == nil && ret.httpClient != nil {
		inner = ret.httpClient.Transport
	}
	if inner == nil {
		inner = http.DefaultTransport
	}
	roundTripper, err := transport.New(transport.WithSession(ret.session), transport.WithTransport(inner))
	if err != nil {
		return nil, err
	}
	httpClient := &http.Client{}
	if ret.httpClient != nil {
		clone := *ret.httpClient
		httpClient = &clone
	}
	httpClient.Transport = roundTripper
	if ret.timeout > 0 {
		httpClient.Timeout = ret.timeout
	}
	ret.httpClient = httpClient
	return ret, nil
}
