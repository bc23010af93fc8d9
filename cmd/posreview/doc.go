// Command posreview is a command line client for the SOUP Market reviews API.
//
// It logs in against the backend, keeps the issued token in a local file (or the
// OS keyring) and lists or creates reviews with it:
//
//	posreview login -U cashier -P secret
//	posreview create -r 5 -m "Great soup"
//	posreview list
//	posreview logout
package main
