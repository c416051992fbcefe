package server

// Server runs the theatre HTTP API.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT, then shuts down
	// within the configured shutdown timeout.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
