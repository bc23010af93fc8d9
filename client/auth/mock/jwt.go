package mock

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	accessTokenType  = "access"
	refreshTokenType = "refresh"
)

// createJWT creates a signed JWT token for username with the given type and expiry
func (s *Service) createJWT(username, tokenType string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":        username,
		"jti":        uuid.NewString(),
		"exp":        now.Add(expiry).Unix(),
		"iat":        now.Unix(),
		"token_type": tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// verifyJWT returns the subject of a valid access token
func (s *Service) verifyJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("unexpected claims")
	}
	if tokenType, _ := claims["token_type"].(string); tokenType != accessTokenType {
		return "", fmt.Errorf("unexpected token type: %v", claims["token_type"])
	}
	return claims.GetSubject()
}
