// Package http implements the HTTP surface of the queue server simulator.
//
// It wires the chi router, the enter/status/health handlers and the
// middleware chain: panic recovery, request tracing, access logging and
// response compression. Every response uses the JSON envelope of
// [models.Envelope].
package http
