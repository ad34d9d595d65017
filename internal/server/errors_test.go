package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "target.level", Message: "must be one of Junior Mid Senior Lead Principal Staff"}
	assert.Equal(t, "validation error: target.level - must be one of Junior Mid Senior Lead Principal Staff", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))

	bare := &ErrValidation{Message: "invalid JSON"}
	assert.Equal(t, "validation error: invalid JSON", bare.Error())
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "wrapped validation", err: fmt.Errorf("decode: %w", &ErrValidation{Message: "x"}), want: http.StatusBadRequest},
		{name: "too large", err: &ErrRequestTooLarge{Limit: 10}, want: http.StatusRequestEntityTooLarge},
		{name: "unavailable", err: &ErrUnavailable{Service: "remote roadmap service"}, want: http.StatusServiceUnavailable},
		{name: "deadline", err: context.DeadlineExceeded, want: http.StatusGatewayTimeout},
		{name: "canceled", err: fmt.Errorf("generate: %w", context.Canceled), want: statusClientClosedRequest},
		{name: "other", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrUnavailable(t *testing.T) {
	assert.Equal(t, "remote roadmap service is not configured", (&ErrUnavailable{Service: "remote roadmap service"}).Error())
}
