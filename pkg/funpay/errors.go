package funpay

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnauthorized means the golden_key session is no longer valid. The bot
// re-bootstraps and, failing that, flags the workspace unauthorized.
var ErrUnauthorized = errors.New("funpay: unauthorized")

// RateLimitedError carries the server-suggested wait before retrying.
type RateLimitedError struct {
	Wait time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("funpay: rate limited, retry in %s", e.Wait)
}

// AsRateLimited extracts a RateLimitedError when err is one.
func AsRateLimited(err error) (*RateLimitedError, bool) {
	var rl *RateLimitedError
	if errors.As(err, &rl) {
		return rl, true
	}
	return nil, false
}

// TransientError wraps network and 5xx failures; the next loop iteration
// retries.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("funpay: transient: %v", e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// IsTransient reports whether err should be retried on the next tick.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
