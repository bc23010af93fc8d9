// Package client implements a client for the SOUP Market reviews API.
//
// Every call is authorized with the token held by the client session (see the
// session package) and every response is interpreted by the gate package, so a
// failed call always surfaces an error with a human-readable message: the
// server's "detail" field, or gate.FallbackMessage.
//
// Example:
//
//	cli, _ := client.New("http://localhost:8000")
//	if _, err := cli.Login(ctx, &client.Credentials{Username: "cashier", Password: "..."}); err != nil {
//		return err
//	}
//	review, err := cli.CreateReview(ctx, &client.Review{Rating: 5, Comment: "Great soup"})
package client
