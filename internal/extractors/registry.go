package extractors

import (
	"fmt"
	"sort"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
)

// Registry selects the appropriate extractor for an upload.
// It maintains extractors keyed by MIME type and dispatches to the
// highest-priority one that supports the type.
type Registry struct {
	byMIME map[string][]driven.Extractor
}

// NewRegistry creates a new extractor registry.
func NewRegistry() *Registry {
	return &Registry{
		byMIME: make(map[string][]driven.Extractor),
	}
}

// Register adds an extractor to the registry.
func (r *Registry) Register(extractor driven.Extractor) {
	for _, mime := range extractor.SupportedMIMETypes() {
		r.byMIME[mime] = append(r.byMIME[mime], extractor)
		// Highest priority first.
		sort.SliceStable(r.byMIME[mime], func(i, j int) bool {
			return r.byMIME[mime][i].Priority() > r.byMIME[mime][j].Priority()
		})
	}
}

// Pick returns the highest-priority extractor for the MIME type.
// Returns domain.ErrUnsupportedType when no extractor handles it.
func (r *Registry) Pick(mimeType string) (driven.Extractor, error) {
	extractors, ok := r.byMIME[mimeType]
	if !ok || len(extractors) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, mimeType)
	}
	return extractors[0], nil
}

// SupportedMIMETypes returns all MIME types that can be extracted.
func (r *Registry) SupportedMIMETypes() []string {
	types := make([]string, 0, len(r.byMIME))
	for mime := range r.byMIME {
		types = append(types, mime)
	}
	sort.Strings(types)
	return types
}
