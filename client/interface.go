package client

import (
	"context"
)

// Interface defines the reviews API operations
type Interface interface {
	// Login exchanges credentials for a token and stores it in the session
	Login(ctx context.Context, credentials *Credentials, options ...RequestOption) (*TokenPair, error)

	// Logout removes the session token
	Logout(ctx context.Context) error

	// ListReviews lists reviews
	ListReviews(ctx context.Context, options ...RequestOption) ([]*Review, error)

	// GetReview gets a review by ID
	GetReview(ctx context.Context, id int, options ...RequestOption) (*Review, error)

	// CreateReview creates a review
	CreateReview(ctx context.Context, review *Review, options ...RequestOption) (*Review, error)
}

// Ensure Client implements Interface
var _ Interface = (*Client)(nil)
