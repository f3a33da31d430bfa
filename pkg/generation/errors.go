package generation

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// Failure taxonomy for generation calls. Callers match with errors.Is
// and turn each class into its own operator-facing message; none of
// them is fatal to the process.
var (
	ErrConnection = errors.New("generation: connection failure")
	ErrTimeout    = errors.New("generation: timeout")
	ErrUpstream   = errors.New("generation: upstream error")
)

// Classify folds an arbitrary backend error into the taxonomy.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	// Non-2xx statuses, decode failures, empty payloads.
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}
