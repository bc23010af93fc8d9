package mock

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Handler returns the router serving the backend endpoints.
func (s *Service) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(s.logging)
	router.HandleFunc("/api/token/", s.dispatch(&s.TokenHandler, s.defaultTokenHandler)).Methods(http.MethodPost)
	router.HandleFunc("/api/reviews/", s.dispatch(&s.ReviewsHandler, s.defaultReviewsHandler)).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc("/api/reviews/{id}/", s.dispatch(&s.ReviewHandler, s.defaultReviewHandler)).Methods(http.MethodGet)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		writeDetail(w, http.StatusNotFound, DetailNotFound)
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		writeDetail(w, http.StatusMethodNotAllowed, "Method \""+r.Method+"\" not allowed.")
	})
	return router
}

// dispatch prefers an override handler, resolved per request so that it can be set after start
func (s *Service) dispatch(override *http.HandlerFunc, fallback http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if handler := *override; handler != nil {
			handler(w, r)
			return
		}
		fallback(w, r)
	}
}

func (s *Service) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		s.record(r)
		next.ServeHTTP(w, r)
		s.logger.WithField("method", r.Method).
			WithField("path", r.URL.Path).
			WithField("elapsed", time.Since(started)).
			Debug("served request")
	})
}
