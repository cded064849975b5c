// Package mcp provides an MCP (Model Context Protocol) server adapter for askdoc.
// It enables AI assistants like Claude to ask questions against the local
// document library.
package mcp

import "errors"

// ErrMissingAskService is returned when the ask service is not provided.
var ErrMissingAskService = errors.New("mcp: ask service is required")
