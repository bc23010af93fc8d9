package gate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Result is either Ok (Err is nil, Data holds the JSON body) or Err.
type Result struct {
	StatusCode int
	Data       json.RawMessage
	Err        error
}

// Ok returns true for a successful result
func (r *Result) Ok() bool {
	return r.Err == nil
}

// Message returns the error message, or an empty string for a successful result
func (r *Result) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Unmarshal decodes the successful result data into dest, or returns the result error
func (r *Result) Unmarshal(dest interface{}) error {
	if r.Err != nil {
		return r.Err
	}
	if dest == nil || len(r.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Data, dest); err != nil {
		return &ParseError{StatusCode: r.StatusCode, Err: err}
	}
	return nil
}

type errorPayload struct {
	Detail *string `json:"detail"`
}

// Evaluate consumes and closes the response body.
func Evaluate(resp *http.Response) *Result {
	result := &Result{StatusCode: resp.StatusCode}
	var data []byte
	var readErr error
	if resp.Body != nil {
		data, readErr = io.ReadAll(resp.Body)
		_ = resp.Body.Close()
	}
	if !isSuccess(resp.StatusCode) {
		result.Err = &Error{StatusCode: resp.StatusCode, Message: detail(data)}
		return result
	}
	if readErr != nil {
		result.Err = fmt.Errorf("failed to read response body: %w", readErr)
		return result
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 && isBodyless(resp) {
		result.Data = json.RawMessage("null")
		return result
	}
	if !json.Valid(trimmed) {
		var value interface{}
		result.Err = &ParseError{StatusCode: resp.StatusCode, Err: json.Unmarshal(trimmed, &value)}
		return result
	}
	result.Data = json.RawMessage(trimmed)
	return result
}

// Decode evaluates the response and decodes its data into T.
func Decode[T any](resp *http.Response) (T, error) {
	var ret T
	err := Evaluate(resp).Unmarshal(&ret)
	return ret, err
}

// Into evaluates the response and decodes its data into dest.
func Into(resp *http.Response, dest interface{}) error {
	return Evaluate(resp).Unmarshal(dest)
}

func detail(data []byte) string {
	payload := errorPayload{}
	if err := json.Unmarshal(data, &payload); err != nil || payload.Detail == nil || *payload.Detail == "" {
		return FallbackMessage
	}
	return *payload.Detail
}

// isBodyless reports responses that carry no body by definition
func isBodyless(resp *http.Response) bool {
	if resp.StatusCode == http.StatusNoContent {
		return true
	}
	return resp.Request != nil && resp.Request.Method == http.MethodHead
}

func isSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}
