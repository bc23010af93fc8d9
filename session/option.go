package session

import "github.com/Ismael0303/SOUP-Market-sub001/session/storage"

type Option func(*Session)

// WithStorage sets storage
func WithStorage(storage storage.Storage) Option {
	return func(s *Session) {
		s.storage = storage
	}
}

// WithKey overrides the storage key holding the token
func WithKey(key string) Option {
	return func(s *Session) {
		s.key = key
	}
}
