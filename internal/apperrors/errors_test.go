package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBody(t *testing.T) {
	tests := []struct {
		name    string
		failure *Failure
		want    map[string]any
	}{
		{
			name:    "message only",
			failure: BadRequest("Please enter your email", nil),
			want:    map[string]any{"error": "Please enter your email"},
		},
		{
			name:    "with values",
			failure: BadRequest("Please enter your password", map[string]string{"email": "cook@example.com"}),
			want: map[string]any{
				"error":  "Please enter your password",
				"values": map[string]string{"email": "cook@example.com"},
			},
		},
		{
			name:    "unauthorized",
			failure: Unauthorized(),
			want:    map[string]any{"error": "Unauthorized"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.failure.Body())
		})
	}
}

func TestFrom(t *testing.T) {
	cause := errors.New("connection refused")

	f := From(cause)
	assert.Equal(t, http.StatusInternalServerError, f.Status)
	assert.Equal(t, MsgServerError, f.Message)
	assert.ErrorIs(t, f, cause)

	wrapped := fmt.Errorf("handler: %w", BadRequest("Please enter a title", nil))
	f = From(wrapped)
	assert.Equal(t, http.StatusBadRequest, f.Status)
	assert.Equal(t, "Please enter a title", f.Error())
}
