package driving

import (
	"context"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

// LibraryService manages the session's document collection.
type LibraryService interface {
	// Add ingests an upload: extracts its text, chunks it, and stores the
	// result. Returns the stored document in its final state.
	Add(ctx context.Context, upload domain.Upload) (*domain.Document, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, documentID string) (*domain.Document, error)

	// List returns all documents, ordered by creation time.
	List(ctx context.Context) ([]domain.Document, error)

	// Content returns the document's extracted text.
	Content(ctx context.Context, documentID string) (string, error)

	// Remove deletes a document and its chunks.
	Remove(ctx context.Context, documentID string) error
}
