package driven

import (
	"context"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

// Extractor pulls plain text out of uploaded file bytes.
// Each extractor handles specific MIME types (e.g., PDF, Markdown).
type Extractor interface {
	// SupportedMIMETypes returns the MIME types this extractor handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	// Format-specific extractors should return 50-89.
	// Fallback extractors should return 1-9.
	Priority() int

	// Extract transforms an upload into extracted text.
	Extract(ctx context.Context, upload *domain.Upload) (*ExtractResult, error)
}

// ExtractResult contains the output of text extraction.
// Chunking is handled separately by the PostProcessor pipeline.
type ExtractResult struct {
	// Text is the extracted plain text.
	Text string
}
