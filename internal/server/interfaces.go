package server

import "context"

// Server defines the lifecycle of the simulator process.
//
// RunServer blocks until a termination signal arrives and the server has
// shut down. Shutdown stops the transport and the background workers.
type Server interface {
	RunServer()
	Shutdown()
}

// Background is a set of jobs that run for the lifetime of the server.
// *workers.Workers satisfies it.
type Background interface {
	Run(ctx context.Context)
	Stop()
}

// transport is a single listener managed by the server.
type transport interface {
	RunServer()
	Shutdown()
}
