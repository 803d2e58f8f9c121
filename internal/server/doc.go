// Package server runs the queue simulator's HTTP server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown, plus the optional background workers that must stop together
// with the transport.
package server
