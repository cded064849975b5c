package cli

import (
	"context"
	"testing"
	"time"

	"github.com/askdoc-labs/askdoc-cli/internal/adapters/driven/storage/memory"
	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/services"
	"github.com/askdoc-labs/askdoc-cli/internal/extractors"
	"github.com/askdoc-labs/askdoc-cli/internal/postprocessors"
	"github.com/askdoc-labs/askdoc-cli/internal/postprocessors/chunker"
)

// setupTestServices swaps the package-level services for memory-backed
// ones so commands run without touching the filesystem or network.
// The returned cleanup restores the uninitialised state.
func setupTestServices() func() {
	store := memory.NewDocumentStore()
	cfg := memory.NewConfigStore()

	registry := extractors.NewRegistry()
	extractors.RegisterDefaults(registry)
	pipeline := postprocessors.NewPipeline(chunker.New())

	configStore = cfg
	docStore = store
	libraryService = services.NewLibraryService(store, registry, pipeline)
	askService = services.NewAskService(
		store,
		services.NewRelevanceSelector(),
		services.NewContextAssembler(),
		nil,
	)

	return func() {
		configStore = nil
		docStore = nil
		libraryService = nil
		askService = nil
	}
}

// seedDocument stores a completed document with a single chunk.
func seedDocument(t *testing.T, id, name, content string) {
	t.Helper()

	store, ok := docStore.(*memory.DocumentStore)
	if !ok {
		t.Fatal("docStore is not the memory store; call setupTestServices first")
	}

	ctx := context.Background()
	now := time.Now().UTC()
	doc := &domain.Document{
		ID:        id,
		Name:      name,
		MIMEType:  "text/plain",
		Size:      int64(len(content)),
		Content:   content,
		Status:    domain.StatusCompleted,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := store.SaveDocument(ctx, doc); err != nil {
		t.Fatalf("seed document: %v", err)
	}

	chunks := []domain.Chunk{
		{
			ID:         id + "-chunk-0",
			DocumentID: id,
			Content:    content,
			Position:   0,
			Start:      0,
			End:        len([]rune(content)),
		},
	}
	if err := store.SaveChunks(ctx, chunks); err != nil {
		t.Fatalf("seed chunks: %v", err)
	}
}
