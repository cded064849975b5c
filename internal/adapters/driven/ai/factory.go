// Package ai provides factory functions for creating LLM service adapters.
package ai

import (
	"context"
	"fmt"
	"os"
	"time"

	ollamallm "github.com/askdoc-labs/askdoc-cli/internal/adapters/driven/llm/ollama"
	openaillm "github.com/askdoc-labs/askdoc-cli/internal/adapters/driven/llm/openai"
	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
	"github.com/askdoc-labs/askdoc-cli/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// Configuration keys for the LLM provider.
const (
	KeyProvider = "llm.provider"
	KeyModel    = "llm.model"
	KeyBaseURL  = "llm.base_url"
	KeyAPIKey   = "llm.api_key"
)

// EnvAPIKey is the environment fallback for the OpenAI API key. The
// config store value takes precedence when both are set.
const EnvAPIKey = "OPENAI_API_KEY"

// InitResult contains the result of LLM service initialisation.
type InitResult struct {
	LLMService driven.LLMService
	Warnings   []string // Non-fatal issues that caused fallback.
	FellBack   bool     // True if fell back to extractive-only answers.
}

// Close releases all resources held by InitResult.
func (r *InitResult) Close() {
	if r.LLMService != nil {
		r.LLMService.Close()
	}
}

// LoadSettings reads LLM provider settings from the config store, with an
// environment fallback for the API key.
func LoadSettings(cfg driven.ConfigStore) *domain.LLMSettings {
	if cfg == nil {
		return &domain.LLMSettings{
			APIKey: os.Getenv(EnvAPIKey),
		}
	}

	settings := &domain.LLMSettings{
		Provider: domain.AIProvider(cfg.GetString(KeyProvider)),
		Model:    cfg.GetString(KeyModel),
		BaseURL:  cfg.GetString(KeyBaseURL),
		APIKey:   cfg.GetString(KeyAPIKey),
	}
	if settings.APIKey == "" {
		settings.APIKey = os.Getenv(EnvAPIKey)
	}

	// Unset provider with an API key present means OpenAI.
	if settings.Provider == "" && settings.APIKey != "" {
		settings.Provider = domain.AIProviderOpenAI
	}

	return settings
}

// Initialise builds an LLM service from configuration, validating
// connectivity. On any failure it degrades to a nil service with a
// warning so questions still return extractive context.
func Initialise(cfg driven.ConfigStore) *InitResult {
	result := &InitResult{}

	settings := LoadSettings(cfg)
	if !settings.IsConfigured() {
		return result
	}

	svc, err := CreateAndValidateLLMService(settings)
	if err != nil {
		result.Warnings = append(result.Warnings, err.Error())
		result.FellBack = true
		return result
	}

	result.LLMService = svc
	return result
}

// CreateAndValidateLLMService creates an LLM service and validates connectivity.
// Returns the service if successful, or an error with guidance.
func CreateAndValidateLLMService(settings *domain.LLMSettings) (driven.LLMService, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	svc, err := CreateLLMService(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Run 'askdoc config set llm.provider <provider>' to fix",
			domain.ErrLLMUnavailable, err)
	}

	if svc == nil {
		return nil, nil
	}

	// Validate connectivity.
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). Run 'askdoc config set llm.provider <provider>' to fix",
			domain.ErrLLMUnavailable, err)
	}

	return svc, nil
}

// ValidateLLMConfig validates an LLM configuration by creating a service and pinging it.
// This is intended for validating credentials when configuration changes.
func ValidateLLMConfig(settings *domain.LLMSettings) error {
	if settings == nil || !settings.IsConfigured() {
		return nil
	}

	svc, err := CreateLLMService(settings)
	if err != nil {
		return err
	}
	if svc == nil {
		return nil
	}
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return svc.Ping(ctx)
}

// CreateLLMService creates the appropriate LLM service based on settings.
// Returns nil if the provider is not configured.
func CreateLLMService(settings *domain.LLMSettings) (driven.LLMService, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	switch settings.Provider {
	case domain.AIProviderOllama:
		return ollamallm.NewLLMService(ollamallm.LLMConfig{
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		}), nil

	case domain.AIProviderOpenAI:
		return openaillm.NewLLMService(openaillm.LLMConfig{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", settings.Provider)
	}
}
