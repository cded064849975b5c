package plaintext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

func TestNew(t *testing.T) {
	extractor := New()
	require.NotNil(t, extractor)
	assert.IsType(t, &Extractor{}, extractor)
}

func TestSupportedMIMETypes(t *testing.T) {
	extractor := New()
	mimeTypes := extractor.SupportedMIMETypes()

	require.NotEmpty(t, mimeTypes)
	assert.Contains(t, mimeTypes, "text/plain")
	assert.Contains(t, mimeTypes, "application/json")
}

func TestPriority(t *testing.T) {
	extractor := New()
	assert.Equal(t, 5, extractor.Priority())
}

func TestExtract_Success(t *testing.T) {
	extractor := New()
	ctx := context.Background()

	upload := &domain.Upload{
		Name:     "document.txt",
		MIMEType: "text/plain",
		Content:  []byte("This is plain text content."),
	}

	result, err := extractor.Extract(ctx, upload)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "This is plain text content.", result.Text)
}

func TestExtract_NilUpload(t *testing.T) {
	extractor := New()

	_, err := extractor.Extract(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExtract_EmptyContent(t *testing.T) {
	extractor := New()

	result, err := extractor.Extract(context.Background(), &domain.Upload{
		Name:     "empty.txt",
		MIMEType: "text/plain",
	})

	require.NoError(t, err)
	assert.Empty(t, result.Text)
}

func TestExtract_PreservesUnicode(t *testing.T) {
	extractor := New()

	result, err := extractor.Extract(context.Background(), &domain.Upload{
		Name:     "unicode.txt",
		MIMEType: "text/plain",
		Content:  []byte("héllo wörld — 日本語"),
	})

	require.NoError(t, err)
	assert.Equal(t, "héllo wörld — 日本語", result.Text)
}
