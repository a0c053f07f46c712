package notification

import "fmt"

// MalformedInputError is returned when a notification is not well-formed XML.
type MalformedInputError struct {
	Err error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed SIRI notification: %v", e.Err)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// PublishError is returned when the sink rejects a record. The notification is not
// retried.
type PublishError struct {
	Stream string
	Err    error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publish to %s: %v", e.Stream, e.Err)
}

func (e *PublishError) Unwrap() error { return e.Err }
