// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport abstraction the queue client uses
// to talk to a queue server.
//
// The primary abstraction is [Transport], a single request function that
// decouples the queue state machine from the wire protocol. The package ships
// an HTTP/REST implementation on top of resty ([NewHTTPTransport]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrConflict] for 409).
package adapter

import (
	"context"
	"encoding/json"
	"net/url"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Request is a logical queue API call.
type Request struct {
	// Method is the HTTP verb, e.g. http.MethodPost.
	Method string
	// Path is relative to the API prefix, e.g. "/queue/enter".
	Path string
	// Query holds optional query parameters.
	Query url.Values
	// Payload is encoded as the JSON request body when non-nil.
	Payload any
}

// Response is the structured result of a queue API call.
type Response struct {
	Success bool
	Data    json.RawMessage
	Message string
	// Error is the machine-readable code reported by the server, if any.
	Error string
}

// Transport performs a queue API call. Implementations return an error when
// the call could not be completed or the server rejected it; a completed call
// whose envelope reports failure is returned with Success set to false.
type Transport interface {
	Do(ctx context.Context, req Request) (Response, error)
}
