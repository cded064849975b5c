// Package chunker provides a fixed-size overlapping text chunking processor.
package chunker

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = 200

// Split cuts text into overlapping fixed-size windows.
//
// Starting at offset 0 it emits the window [start, min(start+size, len));
// when the window ends at the end of the text it stops, otherwise the next
// window starts overlap characters before the previous end. Each step
// advances by size-overlap characters, so termination is guaranteed by the
// parameter checks. Offsets are in characters (runes), not bytes.
//
// Empty text yields zero chunks. Text shorter than size yields exactly one
// chunk equal to the whole text. The final chunk always ends at the end of
// the text and may be shorter than size.
//
// Split is pure and deterministic: the returned chunks carry Content,
// Position and Start/End offsets but no IDs.
func Split(text string, size, overlap int) ([]domain.Chunk, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", domain.ErrInvalidParameter, size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("%w: overlap must be in [0, size), got %d", domain.ErrInvalidParameter, overlap)
	}

	runes := []rune(text)
	length := len(runes)
	if length == 0 {
		return nil, nil
	}

	estimated := (length / (size - overlap)) + 1
	chunks := make([]domain.Chunk, 0, estimated)

	start := 0
	for position := 0; ; position++ {
		end := start + size
		if end > length {
			end = length
		}

		chunks = append(chunks, domain.Chunk{
			Content:  string(runes[start:end]),
			Position: position,
			Start:    start,
			End:      end,
		})

		if end == length {
			break
		}
		start = end - overlap
	}

	return chunks, nil
}

// Processor splits document content into fixed-size chunks.
// It implements the PostProcessor interface.
type Processor struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker processor.
type Option func(*Processor)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(p *Processor) {
		if size > 0 {
			p.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(p *Processor) {
		if overlap >= 0 {
			p.overlap = overlap
		}
	}
}

// New creates a new chunker processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(p)
	}

	// Ensure overlap doesn't exceed chunk size
	if p.overlap >= p.chunkSize {
		p.overlap = p.chunkSize / 4
	}

	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "chunker"
}

// Process splits the document content into chunks.
// Input chunks are ignored; this processor creates new chunks from document content.
func (p *Processor) Process(_ context.Context, doc *domain.Document, _ []domain.Chunk) ([]domain.Chunk, error) {
	chunks, err := Split(doc.Content, p.chunkSize, p.overlap)
	if err != nil {
		return nil, err
	}

	for i := range chunks {
		chunks[i].ID = uuid.New().String()
		chunks[i].DocumentID = doc.ID
	}

	return chunks, nil
}
