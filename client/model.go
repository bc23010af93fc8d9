package client

import "time"

// Review represents a customer review.
type Review struct {
	ID        int       `json:"id,omitempty" yaml:"id,omitempty"`
	Rating    int       `json:"rating" yaml:"rating"`
	Comment   string    `json:"comment,omitempty" yaml:"comment,omitempty"`
	Product   *int      `json:"product,omitempty" yaml:"product,omitempty"`
	Author    string    `json:"author,omitempty" yaml:"author,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty" yaml:"createdAt,omitempty"`
}

// Credentials are exchanged for a token pair.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenPair is returned by the token endpoint; only Access is kept in the session.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}
