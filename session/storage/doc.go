// Package storage defines the key/value adapters backing a session.
//
// It ships with an in-memory implementation that is sufficient for server side
// use and unit tests, a file implementation persisting a JSON snapshot through
// github.com/viant/afs (any afs URL, local file system by default), and an OS
// keyring implementation for CLI usage.
package storage
