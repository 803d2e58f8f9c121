// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-waitroom/internal/adapter"
	"github.com/MKhiriev/go-waitroom/internal/queue"
)

const msgServerUnavailable = "Network unavailable or queue server is down"

// humanizeError turns a queue client error into one line for the widget.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrNotFound):
		return "This activity does not exist"
	case errors.Is(err, adapter.ErrConflict):
		return "This activity is not open right now"
	case errors.Is(err, adapter.ErrTooManyRequests):
		return "Queue server is busy, press e to retry"
	case errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, adapter.ErrBadGateway),
		isNetworkError(err):
		return msgServerUnavailable
	case errors.Is(err, queue.ErrRetryExhausted):
		return "Lost contact with the queue, press e to rejoin"
	case errors.Is(err, queue.ErrSessionMismatch), errors.Is(err, queue.ErrInvalidSession):
		return "Queue server sent an unexpected session, press e to rejoin"
	}
	return err.Error()
}

func isNetworkError(err error) bool {
	s := strings.ToLower(err.Error())
	for _, marker := range []string{
		"connection refused",
		"dial tcp",
		"no such host",
		"network is unreachable",
		"i/o timeout",
		"context deadline exceeded",
	} {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
