// Package mock provides an in-process SOUP Market backend that facilitates unit
// testing of the reviews client.
//
// It serves the token and reviews endpoints with the same JSON shapes and
// {"detail": "..."} error payloads as the real backend, without any persistence.
// Handlers can be overridden to inject faults.
package mock
