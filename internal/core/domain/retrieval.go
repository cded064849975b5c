package domain

import (
	"fmt"
	"strings"
)

// Candidate is a unit of text offered to the relevance selector.
// A candidate is either a single chunk or a whole document's text.
type Candidate struct {
	// SourceID identifies the document the text came from.
	SourceID string

	// SourceName is the document's display name, carried through for
	// attribution in assembled context.
	SourceName string

	// ChunkIndex is the 1-based chunk number, or 1 as a page placeholder
	// when the candidate is whole-document text.
	ChunkIndex int

	// Text is the candidate content.
	Text string
}

// RelevanceMatch is a text span selected as likely relevant to a question.
// Matches are transient per query and never persisted.
type RelevanceMatch struct {
	// SourceID identifies the source document.
	SourceID string

	// SourceName is the document's display name.
	SourceName string

	// ChunkIndex is the chunk number the span came from.
	ChunkIndex int

	// Text is the matched span.
	Text string

	// Score is the keyword-overlap score in [0, 1]. A score of 0 marks a
	// fallback match returned when nothing overlapped the question.
	Score float64
}

// ContextBlock is one source's contribution to an assembled context.
type ContextBlock struct {
	// SourceID identifies the source document.
	SourceID string

	// SourceName is the document's display name.
	SourceName string

	// ChunkIndexes lists the chunks that contributed, in match order.
	ChunkIndexes []int

	// Text is the source's concatenated matched text, truncated to the
	// per-source character budget.
	Text string
}

// AssembledContext is the bounded, attributed context handed to the
// language model alongside the user's question.
type AssembledContext struct {
	// Blocks are the per-source text blocks, ordered by first match.
	Blocks []ContextBlock
}

// IsEmpty reports whether no source contributed any text. Callers should
// substitute a "no relevant documents" message rather than prompting the
// model with blank context.
func (c AssembledContext) IsEmpty() bool {
	return len(c.Blocks) == 0
}

// Render formats the context for inclusion in a prompt. Every block is
// prefixed with its source attribution so the model can cite documents.
func (c AssembledContext) Render() string {
	if c.IsEmpty() {
		return ""
	}

	parts := make([]string, 0, len(c.Blocks))
	for _, block := range c.Blocks {
		name := block.SourceName
		if name == "" {
			name = block.SourceID
		}
		parts = append(parts, fmt.Sprintf("[Source: %s]\n%s", name, block.Text))
	}

	return strings.Join(parts, "\n---\n")
}

// Source attributes part of an answer to a document.
type Source struct {
	// DocumentID is the source document's identifier.
	DocumentID string

	// DocumentName is the source document's display name.
	DocumentName string

	// ChunkIndex is the chunk (or page placeholder) the answer drew from.
	ChunkIndex int

	// Score is the relevance score in [0, 1].
	Score float64
}

// Answer is the result of asking a question against the library.
type Answer struct {
	// Question is the question as asked.
	Question string

	// Text is the generated (or fallback) answer.
	Text string

	// Sources lists the documents the answer drew from.
	Sources []Source

	// Confidence is the highest relevance score among the sources, or 0
	// when the answer came from fallback context.
	Confidence float64
}

// AskOptions configures a question against the library.
type AskOptions struct {
	// MaxResults caps how many relevance matches feed the context.
	// Zero or negative uses the configured default.
	MaxResults int

	// SourceBudget is the per-source character budget for assembled
	// context. Zero uses the configured default.
	SourceBudget int
}
