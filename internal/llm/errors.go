package llm

import "fmt"

// MalformedResponseError means the endpoint answered 200 but the body
// did not carry a usable candidate.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: %s", e.Reason)
}

// RemoteError is a non-200 answer from the endpoint. Message carries the
// server's error.message when the body parses, the raw body otherwise.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error %d: %s", e.StatusCode, e.Message)
}

// TransportError wraps DNS, timeout and connection-level failures.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }
