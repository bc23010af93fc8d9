package mock

import (
	"net/http/httptest"
)

// Server is a running mock backend.
type Server struct {
	*httptest.Server
	*Service
}

// NewServer starts a mock backend on a local port; callers must Close it.
func NewServer(options ...Option) *Server {
	service := NewService(options...)
	return &Server{
		Server:  httptest.NewServer(service.Handler()),
		Service: service,
	}
}
