// Package gate turns a completed HTTP response into either decoded JSON data or
// an error carrying a human-readable message.
//
// Non-2xx responses are expected to carry a JSON object with an optional
// "detail" string; its value becomes the error message. When the body is not
// JSON, or the field is missing, FallbackMessage is used instead.
//
// Evaluate returns a tagged Result; Decode and Into wrap it for callers that
// prefer a (value, error) pair.
package gate
