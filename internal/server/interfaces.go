package server

// Server is the lifecycle contract of the contacts API transport.
type Server interface {
	// RunServer blocks serving requests until a shutdown signal arrives.
	RunServer()

	// Shutdown stops accepting connections and drains the ones in flight.
	Shutdown()
}
