// Package cli provides the cobra command tree for the askdoc CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askdoc-labs/askdoc-cli/internal/adapters/driven/ai"
	configfile "github.com/askdoc-labs/askdoc-cli/internal/adapters/driven/config/file"
	"github.com/askdoc-labs/askdoc-cli/internal/adapters/driven/storage/memory"
	"github.com/askdoc-labs/askdoc-cli/internal/adapters/driven/storage/sqlite"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driving"
	"github.com/askdoc-labs/askdoc-cli/internal/core/services"
	"github.com/askdoc-labs/askdoc-cli/internal/extractors"
	"github.com/askdoc-labs/askdoc-cli/internal/logger"
	"github.com/askdoc-labs/askdoc-cli/internal/postprocessors"
)

// version is set at build time via -ldflags.
var version = "dev"

// Persistent flags.
var (
	verbose   bool
	dataDir   string
	useMemory bool
)

// Services wired by initServices. Tests swap these for mocks.
var (
	configStore    driven.ConfigStore
	libraryService driving.LibraryService
	askService     driving.AskService

	llmResult *ai.InitResult
	docStore  driven.DocumentStore
)

var rootCmd = &cobra.Command{
	Use:   "askdoc",
	Short: "Ask questions against your own documents",
	Long: `askdoc maintains a small library of uploaded documents and answers
questions from their content. Answers cite the documents they drew from.

Documents are extracted, split into overlapping chunks, and stored locally.
Questions are matched against the chunks by keyword overlap; the best
matches are assembled into a bounded context for the language model.

Without a configured language model, answers degrade to the matched
passages themselves.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.askdoc/data)")
	rootCmd.PersistentFlags().BoolVar(&useMemory, "memory", false, "keep documents in memory only (no persistence)")
}

// Execute wires the services and runs the command tree.
func Execute() error {
	defer shutdown()
	return rootCmd.Execute()
}

// initServices builds the service graph once. Commands that need services
// call it from their RunE so flag values are already parsed.
func initServices() error {
	if libraryService != nil && askService != nil {
		return nil
	}

	if configStore == nil {
		if useMemory {
			configStore = memory.NewConfigStore()
		} else {
			cs, err := configfile.NewConfigStore("")
			if err != nil {
				return fmt.Errorf("initialise config: %w", err)
			}
			configStore = cs
		}
	}

	if docStore == nil {
		if useMemory {
			docStore = memory.NewDocumentStore()
		} else {
			store, err := sqlite.NewStore(dataDir)
			if err != nil {
				return fmt.Errorf("open document store: %w", err)
			}
			docStore = store
		}
	}

	registry := extractors.NewRegistry()
	extractors.RegisterDefaults(registry)

	pipeline, err := buildPipeline()
	if err != nil {
		return fmt.Errorf("build pipeline: %w", err)
	}

	var libraryOpts []services.LibraryOption
	if maxDocs := configStore.GetInt("library.max_documents"); maxDocs > 0 {
		libraryOpts = append(libraryOpts, services.WithMaxDocuments(maxDocs))
	}
	libraryService = services.NewLibraryService(docStore, registry, pipeline, libraryOpts...)

	var selectorOpts []services.SelectorOption
	if maxResults := configStore.GetInt("ask.max_results"); maxResults > 0 {
		selectorOpts = append(selectorOpts, services.WithMaxResults(maxResults))
	}
	if fallback := configStore.GetInt("ask.fallback_length"); fallback > 0 {
		selectorOpts = append(selectorOpts, services.WithFallbackLength(fallback))
	}
	selector := services.NewRelevanceSelector(selectorOpts...)

	var assemblerOpts []services.AssemblerOption
	if budget := configStore.GetInt("ask.source_budget"); budget > 0 {
		assemblerOpts = append(assemblerOpts, services.WithSourceBudget(budget))
	}
	assembler := services.NewContextAssembler(assemblerOpts...)

	llmResult = ai.Initialise(configStore)
	for _, warning := range llmResult.Warnings {
		logger.Warn("%s", warning)
	}

	var askOpts []services.AskOption
	if prompts, err := configfile.NewPromptStore(""); err == nil {
		askOpts = append(askOpts, services.WithPromptStore(prompts))
	} else {
		logger.Warn("Prompt store unavailable: %v", err)
	}
	askService = services.NewAskService(docStore, selector, assembler, llmResult.LLMService, askOpts...)

	return nil
}

// buildPipeline constructs the post-processing pipeline from configuration.
func buildPipeline() (driven.PostProcessorPipeline, error) {
	registry := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(registry)

	chunkerCfg := map[string]any{}
	if size := configStore.GetInt("chunker.chunk_size"); size > 0 {
		chunkerCfg["chunk_size"] = size
	}
	if overlap := configStore.GetInt("chunker.overlap"); overlap > 0 {
		chunkerCfg["overlap"] = overlap
	}

	chunker, err := registry.Build("chunker", chunkerCfg)
	if err != nil {
		return nil, err
	}

	return postprocessors.NewPipeline(chunker), nil
}

// shutdown releases resources held by the service graph.
func shutdown() {
	if llmResult != nil {
		llmResult.Close()
		llmResult = nil
	}
	if store, ok := docStore.(*sqlite.Store); ok {
		if err := store.Close(); err != nil {
			logger.Warn("Closing document store: %v", err)
		}
	}
}
