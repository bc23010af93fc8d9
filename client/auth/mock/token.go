package mock

import (
	"encoding/json"
	"net/http"
	"time"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// defaultTokenHandler handles POST /api/token/
func (s *Service) defaultTokenHandler(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeDetail(w, http.StatusBadRequest, DetailInvalidJSON)
		return
	}
	if !s.authenticate(creds.Username, creds.Password) {
		writeDetail(w, http.StatusUnauthorized, DetailBadCredentials)
		return
	}
	access, err := s.createJWT(creds.Username, accessTokenType, time.Hour)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	refresh, err := s.createJWT(creds.Username, refreshTokenType, 24*time.Hour)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"access":  access,
		"refresh": refresh,
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
