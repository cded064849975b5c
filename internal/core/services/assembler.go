package services

import (
	"fmt"
	"strings"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

// DefaultSourceBudget is the default per-source character budget for
// assembled context.
const DefaultSourceBudget = 1500

// ContextAssembler combines relevance matches from one or more documents
// into a single bounded-size context with per-block attribution.
type ContextAssembler struct {
	sourceBudget int
}

// AssemblerOption configures a ContextAssembler.
type AssemblerOption func(*ContextAssembler)

// WithSourceBudget sets the default per-source character budget.
func WithSourceBudget(n int) AssemblerOption {
	return func(a *ContextAssembler) {
		if n > 0 {
			a.sourceBudget = n
		}
	}
}

// NewContextAssembler creates an assembler with the given options.
func NewContextAssembler(opts ...AssemblerOption) *ContextAssembler {
	a := &ContextAssembler{
		sourceBudget: DefaultSourceBudget,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble groups matches by source document, truncates each source's
// concatenated text to perSourceBudget characters, and returns the blocks
// in the order each source first appeared in the input.
//
// A zero budget uses the assembler's default; a negative budget is an
// ErrInvalidParameter. Empty input yields an AssembledContext that reports
// IsEmpty, so the caller can substitute a "no relevant documents" message
// instead of prompting the model with blank context.
func (a *ContextAssembler) Assemble(matches []domain.RelevanceMatch, perSourceBudget int) (domain.AssembledContext, error) {
	if perSourceBudget < 0 {
		return domain.AssembledContext{}, fmt.Errorf(
			"%w: per-source budget must not be negative, got %d", domain.ErrInvalidParameter, perSourceBudget)
	}
	if perSourceBudget == 0 {
		perSourceBudget = a.sourceBudget
	}

	order := make([]string, 0, len(matches))
	blocks := make(map[string]*domain.ContextBlock)

	for _, m := range matches {
		block, ok := blocks[m.SourceID]
		if !ok {
			order = append(order, m.SourceID)
			block = &domain.ContextBlock{
				SourceID:   m.SourceID,
				SourceName: m.SourceName,
			}
			blocks[m.SourceID] = block
		}

		if block.Text != "" {
			block.Text += " "
		}
		block.Text += m.Text
		block.ChunkIndexes = append(block.ChunkIndexes, m.ChunkIndex)
	}

	result := domain.AssembledContext{}
	for _, id := range order {
		block := blocks[id]
		block.Text = truncate(block.Text, perSourceBudget)
		if block.Text == "" {
			continue
		}
		result.Blocks = append(result.Blocks, *block)
	}

	return result, nil
}

// truncate hard-cuts text to limit characters, backing up to the last word
// boundary when one exists in the second half of the cut.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	cut := string(runes[:limit])
	if idx := strings.LastIndexByte(cut, ' '); idx > limit/2 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ")
}
