package llm

import (
	"errors"
	"fmt"
)

// Every provider failure maps onto one of these so the evaluation pipeline
// can log the stage that broke and fall back. None of them are fatal.
var (
	// ErrMissingCredentials means the provider needs an API key that was
	// never configured. Checked before any network traffic.
	ErrMissingCredentials = errors.New("missing provider credentials")

	// ErrUnreachable covers liveness-probe failures, connection errors and
	// timeouts. A call that hits the timeout ceiling lands here too.
	ErrUnreachable = errors.New("llm provider unreachable")

	// ErrAuthRejected means the provider refused our credentials (401/403).
	ErrAuthRejected = errors.New("llm provider rejected credentials")

	// ErrEmptyResponse means the provider answered 2xx but carried no usable
	// completion content.
	ErrEmptyResponse = errors.New("empty completion response")
)

// HTTPError is a non-2xx status from the generation endpoint that is not an
// auth rejection.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("llm provider returned status %d", e.Status)
}
