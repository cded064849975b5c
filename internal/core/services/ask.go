package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driving"
	"github.com/askdoc-labs/askdoc-cli/internal/logger"
)

// Ensure AskService implements the interface.
var _ driving.AskService = (*AskService)(nil)

// noAnswerText is returned when no document text relates to the question.
const noAnswerText = "I couldn't find any relevant information in the uploaded documents to answer your question."

// answerPromptFormat grounds the model in the assembled context.
const answerPromptFormat = `You are a helpful assistant that answers questions based on provided document context. Follow these guidelines:

1. Answer using ONLY the information provided in the context below
2. If the context doesn't contain enough information, say so clearly
3. Quote specific parts of the documents when relevant
4. Be accurate, concise, and helpful

CONTEXT:
%s

QUESTION: %s

ANSWER:`

// AskService answers questions against the document library by selecting
// relevant text, assembling a bounded context, and calling the language
// model. The llmService is optional: when nil, Ask returns the assembled
// context verbatim instead of a generated answer.
type AskService struct {
	docStore   driven.DocumentStore
	selector   *RelevanceSelector
	assembler  *ContextAssembler
	llmService driven.LLMService
	prompts    driven.PromptStore
}

// AskOption configures an AskService.
type AskOption func(*AskService)

// WithPromptStore sets a store for user-editable prompt templates.
// Without one, the embedded answer prompt is used.
func WithPromptStore(prompts driven.PromptStore) AskOption {
	return func(s *AskService) {
		s.prompts = prompts
	}
}

// NewAskService creates a new ask service.
// The llmService parameter is optional (can be nil).
func NewAskService(
	docStore driven.DocumentStore,
	selector *RelevanceSelector,
	assembler *ContextAssembler,
	llmService driven.LLMService,
	opts ...AskOption,
) *AskService {
	s := &AskService{
		docStore:   docStore,
		selector:   selector,
		assembler:  assembler,
		llmService: llmService,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ask selects relevant text from completed documents, assembles a bounded
// context, and generates an answer with source attributions.
func (s *AskService) Ask(ctx context.Context, question string, opts domain.AskOptions) (*domain.Answer, error) {
	logger.Section("Question Execution")
	logger.Debug("Question: %q", question)

	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is empty", domain.ErrInvalidInput)
	}

	matches, err := s.Sources(ctx, question, opts.MaxResults)
	if err != nil {
		return nil, err
	}
	logger.Debug("Relevance matches: %d", len(matches))

	assembled, err := s.assembler.Assemble(matches, opts.SourceBudget)
	if err != nil {
		return nil, fmt.Errorf("assemble context: %w", err)
	}

	answer := &domain.Answer{
		Question:   question,
		Sources:    toSources(matches),
		Confidence: maxScore(matches),
	}

	if assembled.IsEmpty() {
		logger.Info("No context assembled, returning fallback answer")
		answer.Text = noAnswerText
		answer.Sources = nil
		answer.Confidence = 0
		return answer, nil
	}

	if s.llmService == nil {
		logger.Info("LLM unavailable, returning extractive context")
		answer.Text = assembled.Render()
		return answer, nil
	}

	prompt := fmt.Sprintf(s.answerTemplate(), assembled.Render(), question)
	logger.Debug("Prompt length: %d chars, model: %s", len(prompt), s.llmService.ModelName())

	text, err := s.llmService.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   1024,
		Temperature: 0.7,
	})
	if err != nil {
		if errors.Is(err, domain.ErrQuotaExceeded) {
			logger.Warn("LLM quota exceeded")
			return nil, err
		}
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	answer.Text = strings.TrimSpace(text)
	return answer, nil
}

// Sources returns the raw relevance matches for a question without calling
// the language model. Completed documents contribute their chunks as
// candidates; documents without chunks contribute their whole text with the
// page placeholder index.
func (s *AskService) Sources(ctx context.Context, question string, maxResults int) ([]domain.RelevanceMatch, error) {
	candidates, err := s.gatherCandidates(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("Candidates: %d", len(candidates))

	return s.selector.Select(question, candidates, maxResults), nil
}

// gatherCandidates snapshots the completed documents into selector input.
func (s *AskService) gatherCandidates(ctx context.Context) ([]domain.Candidate, error) {
	docs, err := s.docStore.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	var candidates []domain.Candidate
	for i := range docs {
		doc := &docs[i]
		if doc.Status != domain.StatusCompleted {
			continue
		}

		chunks, err := s.docStore.GetChunks(ctx, doc.ID)
		if err != nil {
			return nil, fmt.Errorf("get chunks for %s: %w", doc.ID, err)
		}

		if len(chunks) == 0 {
			candidates = append(candidates, domain.Candidate{
				SourceID:   doc.ID,
				SourceName: doc.Name,
				ChunkIndex: 1, // page placeholder for whole-text candidates
				Text:       doc.Content,
			})
			continue
		}

		for _, chunk := range chunks {
			candidates = append(candidates, domain.Candidate{
				SourceID:   doc.ID,
				SourceName: doc.Name,
				ChunkIndex: chunk.Position + 1,
				Text:       chunk.Content,
			})
		}
	}

	return candidates, nil
}

// answerTemplate returns the configured answer prompt template, falling
// back to the embedded default.
func (s *AskService) answerTemplate() string {
	if s.prompts == nil {
		return answerPromptFormat
	}
	template, err := s.prompts.Load(driven.PromptAnswer)
	if err != nil || template == "" {
		logger.Warn("Falling back to embedded answer prompt: %v", err)
		return answerPromptFormat
	}
	return template
}

// toSources converts matches to answer attributions.
func toSources(matches []domain.RelevanceMatch) []domain.Source {
	sources := make([]domain.Source, 0, len(matches))
	for _, m := range matches {
		sources = append(sources, domain.Source{
			DocumentID:   m.SourceID,
			DocumentName: m.SourceName,
			ChunkIndex:   m.ChunkIndex,
			Score:        m.Score,
		})
	}
	return sources
}

// maxScore returns the highest match score.
func maxScore(matches []domain.RelevanceMatch) float64 {
	best := 0.0
	for _, m := range matches {
		if m.Score > best {
			best = m.Score
		}
	}
	return best
}
