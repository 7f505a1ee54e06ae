package api

import "fmt"

// NetworkError is a transport-level failure: the request never produced
// an HTTP status. It is surfaced unchanged to the caller, never retried.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network failure: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RequestError is a non-2xx response. It carries the status code and
// the raw response body text.
type RequestError struct {
	Op     string
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: http %d: %s", e.Op, e.Status, e.Body)
}

// ProtocolError means a delete call returned something other than the
// literal 1 the backend contract promises.
type ProtocolError struct {
	Op   string
	Body string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: unexpected delete response: want 1, got %q", e.Op, e.Body)
}
