package mcp

import (
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Ask answers questions against the library.
	Ask driving.AskService

	// Library manages the document collection.
	Library driving.LibraryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Ask == nil {
		return ErrMissingAskService
	}
	// Library is optional: without it the document resources serve
	// empty or not-found responses.
	return nil
}
