package driving

import (
	"context"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

// AskService answers questions against the document library.
type AskService interface {
	// Ask selects relevant text from completed documents, assembles a
	// bounded context, and generates an answer with source attributions.
	Ask(ctx context.Context, question string, opts domain.AskOptions) (*domain.Answer, error)

	// Sources returns the raw relevance matches for a question without
	// calling the language model. Used for "Sources" badges and the
	// search command.
	Sources(ctx context.Context, question string, maxResults int) ([]domain.RelevanceMatch, error)
}
