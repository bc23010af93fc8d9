package mock

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Ismael0303/SOUP-Market-sub001/session"
	"github.com/gorilla/mux"
)

type reviewInput struct {
	Rating  *int   `json:"rating"`
	Comment string `json:"comment"`
	Product *int   `json:"product"`
}

// defaultReviewsHandler handles GET and POST /api/reviews/
func (s *Service) defaultReviewsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		writeJSON(w, http.StatusOK, s.Reviews())
		return
	}
	username, ok := s.authorize(w, r)
	if !ok {
		return
	}
	var input reviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeDetail(w, http.StatusBadRequest, DetailInvalidJSON)
		return
	}
	if input.Rating == nil || *input.Rating < 1 || *input.Rating > 5 {
		writeDetail(w, http.StatusBadRequest, DetailInvalidRating)
		return
	}
	review := s.AddReview(&Review{
		Rating:  *input.Rating,
		Comment: input.Comment,
		Product: input.Product,
		Author:  username,
	})
	writeJSON(w, http.StatusCreated, review)
}

// defaultReviewHandler handles GET /api/reviews/{id}/
func (s *Service) defaultReviewHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeDetail(w, http.StatusNotFound, DetailNotFound)
		return
	}
	review, ok := s.review(id)
	if !ok {
		writeDetail(w, http.StatusNotFound, DetailNotFound)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

// authorize writes a 401 response unless the request carries a valid access token
func (s *Service) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	header := r.Header.Get(session.AuthorizationHeader)
	if header == "" {
		writeDetail(w, http.StatusUnauthorized, DetailNotAuthenticated)
		return "", false
	}
	token, ok := session.BearerToken(header)
	if !ok {
		writeDetail(w, http.StatusUnauthorized, DetailInvalidToken)
		return "", false
	}
	username, err := s.verifyJWT(token)
	if err != nil {
		s.logger.WithError(err).Debug("rejected token")
		writeDetail(w, http.StatusUnauthorized, DetailInvalidToken)
		return "", false
	}
	return username, true
}
