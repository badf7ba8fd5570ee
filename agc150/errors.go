package agc150

import "fmt"

// ConnectionError reports that the transport endpoint could not be reached
// within the configured timeout.
type ConnectionError struct {
	Endpoint string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect to '%s': %v", e.Endpoint, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// PollError reports that a read exchange failed or timed out mid-cycle. The
// cycle that produced it yields no sample.
type PollError struct {
	Field string
	Err   error
}

func (e *PollError) Error() string {
	return fmt.Sprintf("poll field '%s': %v", e.Field, e.Err)
}

func (e *PollError) Unwrap() error {
	return e.Err
}

// DecodeError reports a malformed payload for a single field. It is absorbed
// into the sample as an invalid field rather than failing the cycle.
type DecodeError struct {
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode field '%s': %v", e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
