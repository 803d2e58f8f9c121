package events

import "errors"

// ErrHandlerPanic wraps the value recovered from a panicking handler when it
// is reported to the bus logger.
var ErrHandlerPanic = errors.New("event handler panicked")
