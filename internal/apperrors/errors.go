// Package apperrors carries the failures handlers report to clients.
package apperrors

import (
	"errors"
	"net/http"
)

const (
	MsgServerError   = "Server error. Try again later."
	MsgUpstreamError = "External API request failed. Try again later."
	MsgUnauthorized  = "Unauthorized"
)

// Failure is a client-facing error: a status code, a message and the
// form values to echo back so the client can redisplay a pre-filled form.
type Failure struct {
	Status  int
	Message string
	Values  map[string]string
	Cause   error
}

func (f *Failure) Error() string {
	if f.Cause != nil {
		return f.Message + ": " + f.Cause.Error()
	}
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Cause
}

// Body is the JSON payload for the failure.
func (f *Failure) Body() map[string]any {
	body := map[string]any{"error": f.Message}
	if len(f.Values) > 0 {
		body["values"] = f.Values
	}
	return body
}

func BadRequest(message string, values map[string]string) *Failure {
	return &Failure{Status: http.StatusBadRequest, Message: message, Values: values}
}

func Unauthorized() *Failure {
	return &Failure{Status: http.StatusUnauthorized, Message: MsgUnauthorized}
}

func Internal(message string, values map[string]string, cause error) *Failure {
	return &Failure{Status: http.StatusInternalServerError, Message: message, Values: values, Cause: cause}
}

// From converts any error into a Failure. Errors that are not already
// failures become a 500 with the generic server message.
func From(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return Internal(MsgServerError, nil, err)
}
