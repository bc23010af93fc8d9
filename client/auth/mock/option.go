package mock

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type Option func(*Service)

// WithUser registers a user that can log in with the given password
func WithUser(username, password string) Option {
	return func(s *Service) {
		if err := s.AddUser(username, password); err != nil {
			s.logger.WithError(err).Warn("failed to add user")
		}
	}
}

// WithSecret sets the HMAC secret signing issued tokens
func WithSecret(secret []byte) Option {
	return func(s *Service) {
		s.secret = secret
	}
}

// WithLogger sets logger
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithReviewsHandler overrides the /api/reviews/ handler
func WithReviewsHandler(handler http.HandlerFunc) Option {
	return func(s *Service) {
		s.ReviewsHandler = handler
	}
}

// WithTokenHandler overrides the /api/token/ handler
func WithTokenHandler(handler http.HandlerFunc) Option {
	return func(s *Service) {
		s.TokenHandler = handler
	}
}
