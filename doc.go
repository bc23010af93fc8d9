// Package soupmarket provides high-level helpers for working with the SOUP Market
// point-of-sale API.
//
// The package glues the reviews client with a session and its token storage.
// In practice it is used as an umbrella package exposing NewClient, which
// returns a fully configured client from ClientOptions. The options can be
// populated from CLI flags or configuration files.
//
// Example:
//
//	cli, _ := soupmarket.NewClient(&soupmarket.ClientOptions{URL: "http://localhost:8000", Store: "keyring"})
//	reviews, err := cli.ListReviews(ctx)
package soupmarket
