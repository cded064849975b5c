package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCmd_Use(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)
}

func TestConfigCmd_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range configCmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["get"])
	assert.True(t, names["set"])
	assert.True(t, names["delete"])
	assert.True(t, names["list"])
}

func TestConfigSetAndGet(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "set", "chunker.chunk_size", "800"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Set chunker.chunk_size")

	// Values parse into native types.
	val, ok := configStore.Get("chunker.chunk_size")
	require.True(t, ok)
	assert.Equal(t, 800, val)

	buf.Reset()
	rootCmd.SetArgs([]string{"config", "get", "chunker.chunk_size"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "800")
}

func TestConfigGet_MissingKey(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "get", "nonexistent"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not set")
}

func TestConfigDelete(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	require.NoError(t, configStore.Set("ask.max_results", 5))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "delete", "ask.max_results"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Deleted ask.max_results")

	_, ok := configStore.Get("ask.max_results")
	assert.False(t, ok)
}

func TestConfigList(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	require.NoError(t, configStore.Set("ask.max_results", 5))
	require.NoError(t, configStore.Set("llm.model", "gpt-4o-mini"))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "ask.max_results = 5")
	assert.Contains(t, buf.String(), "llm.model = gpt-4o-mini")
}

func TestConfigList_RedactsAPIKey(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	require.NoError(t, configStore.Set("llm.api_key", "sk-secret-value-1234"))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "****1234")
	assert.NotContains(t, buf.String(), "sk-secret-value-1234")
}

func TestParseConfigValue(t *testing.T) {
	assert.Equal(t, 42, parseConfigValue("42"))
	assert.Equal(t, true, parseConfigValue("true"))
	assert.Equal(t, false, parseConfigValue("false"))
	assert.Equal(t, "gpt-4o-mini", parseConfigValue("gpt-4o-mini"))
}

func TestRedactSecret(t *testing.T) {
	assert.Equal(t, "****", redactSecret("abc"))
	assert.Equal(t, "****5678", redactSecret("sk-12345678"))
}
