package mcp

import (
	"context"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

// mockAskService is a mock implementation of driving.AskService.
type mockAskService struct {
	answer  *domain.Answer
	matches []domain.RelevanceMatch
	err     error

	lastQuestion string
	lastOpts     domain.AskOptions
	lastLimit    int
}

func (m *mockAskService) Ask(_ context.Context, question string, opts domain.AskOptions) (*domain.Answer, error) {
	m.lastQuestion = question
	m.lastOpts = opts
	return m.answer, m.err
}

func (m *mockAskService) Sources(_ context.Context, question string, maxResults int) ([]domain.RelevanceMatch, error) {
	m.lastQuestion = question
	m.lastLimit = maxResults
	return m.matches, m.err
}

// mockLibraryService is a mock implementation of driving.LibraryService.
type mockLibraryService struct {
	documents []domain.Document
	document  *domain.Document
	content   string
	err       error
}

func (m *mockLibraryService) Add(_ context.Context, _ domain.Upload) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockLibraryService) Get(_ context.Context, _ string) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockLibraryService) List(_ context.Context) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockLibraryService) Content(_ context.Context, _ string) (string, error) {
	return m.content, m.err
}

func (m *mockLibraryService) Remove(_ context.Context, _ string) error {
	return m.err
}
