// Package session holds the authentication token of the current user.
//
// A Session keeps at most one bearer token under a fixed key in a pluggable
// storage.Storage. Reads are never cached: every call to AuthHeaders or
// IsAuthenticated goes back to the storage, so a token written by another
// session (or process, for file and keyring storages) is picked up on the next call.
//
// An empty token is treated as no token at all.
package session
