// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package queue implements the client side of a virtual waiting room.
//
// A [Client] joins the queue of one activity through an [adapter.Transport],
// then polls the server for its position until the server reports that the
// session may enter. Poll failures are retried with exponential backoff; once
// the configured number of consecutive failures is reached the client moves
// to [StateError] and stops polling until Enter is called again.
//
// The client keeps at most one scheduled poll at any time. Every reschedule
// stops the previous timer first, and a timer that fires after it was
// replaced, or after [Client.Destroy], does nothing.
//
// Lifecycle changes are published on an [events.Bus]:
//
//	entered       models.Session
//	statusUpdate  StatusUpdate
//	ready         models.Session
//	error         error (*Error)
//	stateChanged  StateChange
//
// Handlers run synchronously on the goroutine that produced the event and
// are invoked without any client lock held, so a handler may call back into
// the client, including Destroy.
package queue
