package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driving"
	"github.com/askdoc-labs/askdoc-cli/internal/logger"
)

// Ensure LibraryService implements the interface.
var _ driving.LibraryService = (*LibraryService)(nil)

// DefaultMaxDocuments caps how many documents the library holds.
const DefaultMaxDocuments = 20

// maxEstimatedPages bounds document size. Pages are estimated at
// charsPerPage characters since extracted text has no page markers.
const (
	maxEstimatedPages = 1000
	charsPerPage      = 2500
)

// ExtractorPicker selects an extractor for a MIME type.
// Implemented by the extractors registry.
type ExtractorPicker interface {
	// Pick returns the highest-priority extractor for the MIME type, or
	// domain.ErrUnsupportedType when none handles it.
	Pick(mimeType string) (driven.Extractor, error)
}

// LibraryService manages the session's document collection: ingest,
// lookup, and removal. Ingest drives the uploading -> processing ->
// completed | error lifecycle and persists the document at each step.
type LibraryService struct {
	docStore   driven.DocumentStore
	extractors ExtractorPicker
	pipeline   driven.PostProcessorPipeline
	maxDocs    int
}

// LibraryOption configures a LibraryService.
type LibraryOption func(*LibraryService)

// WithMaxDocuments sets the document cap.
func WithMaxDocuments(n int) LibraryOption {
	return func(s *LibraryService) {
		if n > 0 {
			s.maxDocs = n
		}
	}
}

// NewLibraryService creates a new library service.
func NewLibraryService(
	docStore driven.DocumentStore,
	extractors ExtractorPicker,
	pipeline driven.PostProcessorPipeline,
	opts ...LibraryOption,
) *LibraryService {
	s := &LibraryService{
		docStore:   docStore,
		extractors: extractors,
		pipeline:   pipeline,
		maxDocs:    DefaultMaxDocuments,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add ingests an upload: extracts its text, chunks it, and stores the
// result. The returned document reflects the final lifecycle state; when
// processing fails the document is persisted with StatusError and the
// failure is also returned as an error.
func (s *LibraryService) Add(ctx context.Context, upload domain.Upload) (*domain.Document, error) {
	logger.Section("Document Ingest")
	logger.Debug("Upload: %q (%s, %d bytes)", upload.Name, upload.MIMEType, len(upload.Content))

	count, err := s.docStore.CountDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}
	if count >= s.maxDocs {
		return nil, fmt.Errorf("%w: maximum %d documents", domain.ErrDocumentLimit, s.maxDocs)
	}

	extractor, err := s.extractors.Pick(upload.MIMEType)
	if err != nil {
		return nil, fmt.Errorf("pick extractor for %q: %w", upload.MIMEType, err)
	}

	now := time.Now().UTC()
	doc := &domain.Document{
		ID:        uuid.New().String(),
		Name:      upload.Name,
		MIMEType:  upload.MIMEType,
		Size:      int64(len(upload.Content)),
		Status:    domain.StatusUploading,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.docStore.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}

	if err := s.transition(ctx, doc, domain.StatusProcessing); err != nil {
		return nil, err
	}

	result, err := extractor.Extract(ctx, &upload)
	if err != nil {
		return doc, s.fail(ctx, doc, fmt.Errorf("extract text: %w", err))
	}
	if result == nil || result.Text == "" {
		return doc, s.fail(ctx, doc, domain.ErrEmptyDocument)
	}
	if len(result.Text)/charsPerPage > maxEstimatedPages {
		return doc, s.fail(ctx, doc, fmt.Errorf("%w: estimated %d pages (max %d)",
			domain.ErrDocumentTooLarge, len(result.Text)/charsPerPage, maxEstimatedPages))
	}

	doc.Content = result.Text
	logger.Debug("Extracted %d chars", len(doc.Content))

	chunks, err := s.pipeline.Process(ctx, doc)
	if err != nil {
		return doc, s.fail(ctx, doc, fmt.Errorf("chunk content: %w", err))
	}
	logger.Debug("Produced %d chunks", len(chunks))

	if err := s.docStore.SaveChunks(ctx, chunks); err != nil {
		return doc, s.fail(ctx, doc, fmt.Errorf("save chunks: %w", err))
	}

	if err := s.transition(ctx, doc, domain.StatusCompleted); err != nil {
		return doc, err
	}

	logger.Info("Document %q ingested: %d chunks", doc.Name, len(chunks))
	return doc, nil
}

// Get retrieves a document by ID.
func (s *LibraryService) Get(ctx context.Context, documentID string) (*domain.Document, error) {
	return s.docStore.GetDocument(ctx, documentID)
}

// List returns all documents, ordered by creation time.
func (s *LibraryService) List(ctx context.Context) ([]domain.Document, error) {
	return s.docStore.ListDocuments(ctx)
}

// Content returns the document's extracted text.
func (s *LibraryService) Content(ctx context.Context, documentID string) (string, error) {
	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return "", err
	}
	return doc.Content, nil
}

// Remove deletes a document and its chunks.
func (s *LibraryService) Remove(ctx context.Context, documentID string) error {
	if _, err := s.docStore.GetDocument(ctx, documentID); err != nil {
		return err
	}
	return s.docStore.DeleteDocument(ctx, documentID)
}

// transition persists a status change.
func (s *LibraryService) transition(ctx context.Context, doc *domain.Document, status domain.DocumentStatus) error {
	doc.Status = status
	doc.UpdatedAt = time.Now().UTC()
	if err := s.docStore.SaveDocument(ctx, doc); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// fail marks the document as errored and persists it. The original cause is
// returned; a save failure during error handling is logged, not returned.
func (s *LibraryService) fail(ctx context.Context, doc *domain.Document, cause error) error {
	doc.Status = domain.StatusError
	doc.Error = cause.Error()
	doc.UpdatedAt = time.Now().UTC()
	if err := s.docStore.SaveDocument(ctx, doc); err != nil {
		logger.Warn("Failed to persist error state for %s: %v", doc.ID, err)
	}
	return cause
}
