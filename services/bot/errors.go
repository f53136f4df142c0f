package bot

import "fmt"

// ParseError marks a malformed mini-app form payload. The event it came from
// is dropped silently; the error exists for logging only.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid form payload: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError rejects a malformed purchase-confirmation request. The HTTP
// door translates it to a client error.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// DeliveryError wraps a failed outbound send, including Telegram's rejection
// of a second answer to an already-answered web-app query.
type DeliveryError struct {
	Op  string
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }
