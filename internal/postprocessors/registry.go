package postprocessors

import (
	"fmt"

	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
)

// BuilderFunc constructs a PostProcessor from per-processor settings
// taken from user configuration. A nil or empty map means defaults.
type BuilderFunc func(cfg map[string]any) (driven.PostProcessor, error)

// Registry maps processor names to builders so the ingest pipeline can be
// assembled from configuration.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates an empty processor registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a builder under the given name. The name should match the
// processor's Name() so pipeline logs line up with configuration keys.
// Registering the same name twice replaces the earlier builder.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build constructs the named processor with the given settings.
func (r *Registry) Build(name string, cfg map[string]any) (driven.PostProcessor, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("no post-processor registered for %q", name)
	}
	return builder(cfg)
}

// Has reports whether a builder is registered under the given name.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}
