package server

// Server defines the lifecycle contract for the transport server managed by
// this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// It returns an error when the server cannot serve, e.g. the address is
	// already bound; a signal-driven shutdown returns nil.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
