// Package server provides the MCP server implementation for the Polarsteps
// travel-data tools.
package server

// TravelToolServer defines the interface for the MCP server that handles
// travel-data tool calls from MCP clients.
type TravelToolServer interface {
	// Initialize initializes the server with dependencies and configurations.
	Initialize() error

	// Start starts the MCP server on the specified transport.
	Start() error

	// Stop gracefully shuts down the MCP server.
	Stop() error
}
