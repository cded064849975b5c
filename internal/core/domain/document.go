package domain

import "time"

// DocumentStatus tracks a document through its ingest lifecycle.
type DocumentStatus string

const (
	// StatusUploading means the raw bytes have been received but not processed.
	StatusUploading DocumentStatus = "uploading"

	// StatusProcessing means extraction and chunking are in progress.
	StatusProcessing DocumentStatus = "processing"

	// StatusCompleted means the document is ready to answer questions from.
	StatusCompleted DocumentStatus = "completed"

	// StatusError means extraction or chunking failed; Error holds the cause.
	StatusError DocumentStatus = "error"
)

// Document represents an uploaded document with its extracted text.
// It is the canonical representation after extraction.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Name is the original file name shown to the user.
	Name string

	// MIMEType is the content type of the uploaded file.
	MIMEType string

	// Size is the uploaded file size in bytes.
	Size int64

	// Content is the full extracted text before chunking.
	// Empty when extraction failed or has not run yet.
	Content string

	// Status is the ingest lifecycle state.
	Status DocumentStatus

	// Error holds the failure message when Status is StatusError.
	Error string

	// CreatedAt is when the document was uploaded.
	CreatedAt time.Time

	// UpdatedAt is when the document last changed state.
	UpdatedAt time.Time
}

// Chunk is a contiguous, possibly overlapping window of a document's
// extracted text. Chunks are immutable once created.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// DocumentID links to the parent Document.
	DocumentID string

	// Content is the text of this window.
	Content string

	// Position is the 0-based ordinal within the document.
	Position int

	// Start is the character offset of the window's first character
	// in the parent document's Content.
	Start int

	// End is the character offset one past the window's last character.
	End int
}
