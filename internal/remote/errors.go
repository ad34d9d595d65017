package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Messages surfaced to users when a fetch fails.
const (
	NetworkErrorMessage = "Network error - please check your internet connection or try again later"
	DefaultErrorMessage = "Failed to generate roadmap"
)

// Kind separates transport failures from failures reported by the service.
type Kind string

const (
	// KindNetwork means no usable response arrived.
	KindNetwork Kind = "network"
	// KindService means the service answered with a failure or a payload
	// that is not a roadmap.
	KindService Kind = "service"
)

// Error is a failed fetch. Message is safe to show to users.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("remote %s error: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("remote %s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func networkError(cause error) *Error {
	return &Error{Kind: KindNetwork, Message: NetworkErrorMessage, Cause: cause}
}

func serviceError(message string, cause error) *Error {
	if message == "" {
		message = DefaultErrorMessage
	}
	return &Error{Kind: KindService, Message: message, Cause: cause}
}

// modelError classifies a failed model call. Only transport failures count
// as network errors; an API status, a blocked prompt or an empty answer means
// the service responded.
func modelError(err error) *Error {
	if isTransport(err) {
		return networkError(err)
	}
	return serviceError(DefaultErrorMessage, err)
}

// isTransport reports whether err means no response arrived. *url.Error and
// *net.OpError both satisfy net.Error.
func isTransport(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
