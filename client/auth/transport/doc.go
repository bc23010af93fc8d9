// Package transport implements an http.RoundTripper that authorizes outgoing
// requests with the bearer token held by a session.
//
// The token is read from the session on every request, so logging in or out
// takes effect on the very next call. Requests go out unauthenticated when the
// session holds no token. A per-call token can be forced through the request
// context with ContextAuthTokenKey.
package transport
