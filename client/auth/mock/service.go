package mock

import (
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	DetailNotAuthenticated = "Authentication credentials were not provided."
	DetailInvalidToken     = "Given token not valid for any token type"
	DetailBadCredentials   = "No active account found with the given credentials"
	DetailInvalidRating    = "Invalid rating"
	DetailInvalidJSON      = "Invalid JSON"
	DetailNotFound         = "Not found."
)

// Review is a review as stored by the mock backend.
type Review struct {
	ID        int       `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Product   *int      `json:"product,omitempty"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// Service holds the backend state and endpoint handlers.
type Service struct {
	mu       sync.RWMutex
	secret   []byte
	logger   logrus.FieldLogger
	users    map[string][]byte
	reviews  []*Review
	requests []*http.Request

	TokenHandler   http.HandlerFunc
	ReviewsHandler http.HandlerFunc
	ReviewHandler  http.HandlerFunc
}

// AddUser registers a user with a bcrypt hashed password
func (s *Service) AddUser(username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = hash
	return nil
}

func (s *Service) authenticate(username, password string) bool {
	s.mu.RLock()
	hash, ok := s.users[username]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}

// Reviews returns a copy of stored reviews
func (s *Service) Reviews() []*Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ret := make([]*Review, len(s.reviews))
	copy(ret, s.reviews)
	return ret
}

// AddReview stores a review, assigning its ID and creation time
func (s *Service) AddReview(review *Review) *Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	review.ID = len(s.reviews) + 1
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}
	s.reviews = append(s.reviews, review)
	return review
}

func (s *Service) review(id int) (*Review, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, candidate := range s.reviews {
		if candidate.ID == id {
			return candidate, true
		}
	}
	return nil, false
}

// Requests returns the requests received so far (bodies already consumed)
func (s *Service) Requests() []*http.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ret := make([]*http.Request, len(s.requests))
	copy(ret, s.requests)
	return ret
}

// LastRequest returns the most recently received request or nil
func (s *Service) LastRequest() *http.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.requests) == 0 {
		return nil
	}
	return s.requests[len(s.requests)-1]
}

func (s *Service) record(r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, r.Clone(r.Context()))
}

// NewService creates a backend service
func NewService(options ...Option) *Service {
	ret := &Service{
		secret: []byte("soup-market-test-secret"),
		logger: logrus.StandardLogger(),
		users:  map[string][]byte{},
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
