package models

import "encoding/json"

// Envelope is the structured response every queue endpoint returns.
// On failure Success is false, Error holds a machine-readable code and
// Message a human-readable description.
type Envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data,omitempty"`
	Message   string          `json:"message,omitempty"`
	Error     string          `json:"error,omitempty"`
	RequestID string          `json:"request_id,omitempty"`
}

// Error codes written by the queue server.
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeActivityNotFound  = "ACTIVITY_NOT_FOUND"
	CodeActivityNotActive = "ACTIVITY_NOT_ACTIVE"
	CodeActivityExists    = "ACTIVITY_EXISTS"
	CodeInvalidSequence   = "INVALID_SEQUENCE"
	CodeInternalError     = "INTERNAL_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
)
