package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/askdoc-labs/askdoc-cli/internal/adapters/driven/ai"
	"github.com/askdoc-labs/askdoc-cli/internal/logger"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Gets, sets, deletes, or lists configuration values.

Common keys:
  llm.provider        LLM provider ("openai" or "ollama")
  llm.model           model name (e.g. gpt-4o-mini, llama3.2)
  llm.api_key         API key (or set OPENAI_API_KEY)
  llm.base_url        API endpoint override
  chunker.chunk_size  characters per chunk (default 1000)
  chunker.overlap     overlapping characters between chunks (default 200)
  ask.max_results     passages drawn on per question (default 3)
  ask.source_budget   context characters per source (default 1500)
  ask.fallback_length  characters shown when nothing matches (default 300)
  library.max_documents  document cap (default 20)`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configDeleteCmd = &cobra.Command{
	Use:   "delete [key]",
	Short: "Delete a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigDelete,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration keys and values",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configDeleteCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	val, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q is not set", args[0])
	}
	cmd.Printf("%v\n", val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	key, raw := args[0], args[1]
	if err := configStore.Set(key, parseConfigValue(raw)); err != nil {
		return fmt.Errorf("setting %q: %w", key, err)
	}
	cmd.Printf("Set %s\n", key)

	// Changing provider settings is the moment to catch bad credentials.
	if strings.HasPrefix(key, "llm.") {
		if err := ai.ValidateLLMConfig(ai.LoadSettings(configStore)); err != nil {
			logger.Warn("LLM configuration could not be validated: %v", err)
			cmd.Println("Warning: the LLM provider is not reachable with this configuration.")
		}
	}
	return nil
}

func runConfigDelete(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	if err := configStore.Delete(args[0]); err != nil {
		return fmt.Errorf("deleting %q: %w", args[0], err)
	}
	cmd.Printf("Deleted %s\n", args[0])
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	if err := initServices(); err != nil {
		return err
	}

	keys := configStore.Keys()
	if len(keys) == 0 {
		cmd.Println("No configuration set.")
		return nil
	}

	for _, key := range keys {
		val, _ := configStore.Get(key)
		if key == "llm.api_key" {
			val = redactSecret(fmt.Sprintf("%v", val))
		}
		cmd.Printf("%s = %v\n", key, val)
	}
	return nil
}

// parseConfigValue converts a raw CLI string into a typed value so the
// TOML store round-trips ints and bools properly.
func parseConfigValue(raw string) any {
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}

// redactSecret hides all but the last four characters of a secret.
func redactSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}
