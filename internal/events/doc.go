// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events implements the synchronous publish/subscribe bus the queue
// client uses to report its lifecycle.
//
// Delivery happens on the publisher's goroutine, in subscription order, at
// the moment [Bus.Publish] is called. Events are not buffered: publishing a
// name nobody subscribed to is a no-op. A handler that returns an error or
// panics is logged and skipped; it never affects the other handlers or the
// publisher.
package events
