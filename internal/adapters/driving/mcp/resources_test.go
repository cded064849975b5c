package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

func TestExtractDocumentID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid document URI",
			uri:      "askdoc://documents/doc-456",
			expected: "doc-456",
		},
		{
			name:     "invalid prefix",
			uri:      "file://documents/doc-456",
			expected: "",
		},
		{
			name:     "missing document id",
			uri:      "askdoc://documents/",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractDocumentID(tt.uri)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestServer_handleDocumentsResource(t *testing.T) {
	ctx := context.Background()

	newRequest := func(uri string) *mcp.ReadResourceRequest {
		return &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: uri},
		}
	}

	t.Run("returns document list", func(t *testing.T) {
		mockLibrary := &mockLibraryService{
			documents: []domain.Document{
				{
					ID:       "doc-1",
					Name:     "climate.txt",
					MIMEType: "text/plain",
					Status:   domain.StatusCompleted,
				},
			},
		}

		server, err := NewServer(&Ports{Ask: &mockAskService{}, Library: mockLibrary})
		require.NoError(t, err)

		result, err := server.handleDocumentsResource(ctx, newRequest("askdoc://documents"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, "doc-1")
		assert.Contains(t, result.Contents[0].Text, "climate.txt")
		assert.Contains(t, result.Contents[0].Text, "completed")
	})

	t.Run("nil library returns empty list", func(t *testing.T) {
		server, err := NewServer(&Ports{Ask: &mockAskService{}})
		require.NoError(t, err)

		result, err := server.handleDocumentsResource(ctx, newRequest("askdoc://documents"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		mockLibrary := &mockLibraryService{err: errors.New("store down")}
		server, err := NewServer(&Ports{Ask: &mockAskService{}, Library: mockLibrary})
		require.NoError(t, err)

		_, err = server.handleDocumentsResource(ctx, newRequest("askdoc://documents"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store down")
	})
}

func TestServer_handleDocumentContentResource(t *testing.T) {
	ctx := context.Background()

	newRequest := func(uri string) *mcp.ReadResourceRequest {
		return &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: uri},
		}
	}

	t.Run("returns document content", func(t *testing.T) {
		mockLibrary := &mockLibraryService{content: "The extracted text."}
		server, err := NewServer(&Ports{Ask: &mockAskService{}, Library: mockLibrary})
		require.NoError(t, err)

		result, err := server.handleDocumentContentResource(ctx, newRequest("askdoc://documents/doc-1"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
		assert.Equal(t, "The extracted text.", result.Contents[0].Text)
	})

	t.Run("nil library returns not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Ask: &mockAskService{}})
		require.NoError(t, err)

		_, err = server.handleDocumentContentResource(ctx, newRequest("askdoc://documents/doc-1"))
		assert.Error(t, err)
	})

	t.Run("malformed URI returns not found", func(t *testing.T) {
		mockLibrary := &mockLibraryService{content: "text"}
		server, err := NewServer(&Ports{Ask: &mockAskService{}, Library: mockLibrary})
		require.NoError(t, err)

		_, err = server.handleDocumentContentResource(ctx, newRequest("askdoc://other/doc-1"))
		assert.Error(t, err)
	})

	t.Run("returns error on content failure", func(t *testing.T) {
		mockLibrary := &mockLibraryService{err: domain.ErrNotFound}
		server, err := NewServer(&Ports{Ask: &mockAskService{}, Library: mockLibrary})
		require.NoError(t, err)

		_, err = server.handleDocumentContentResource(ctx, newRequest("askdoc://documents/missing"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
