package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
}

func TestConfigStore_Set_Success(t *testing.T) {
	store := NewConfigStore()

	err := store.Set("key1", "value1")
	require.NoError(t, err)

	val, ok := store.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, "value1", val)
}

func TestConfigStore_Set_Update(t *testing.T) {
	store := NewConfigStore()

	err := store.Set("key1", "original")
	require.NoError(t, err)

	err = store.Set("key1", "updated")
	require.NoError(t, err)

	val, ok := store.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
}

func TestConfigStore_Set_MultipleKeys(t *testing.T) {
	store := NewConfigStore()

	keys := map[string]any{
		"string_key": "string_value",
		"int_key":    42,
		"bool_key":   true,
		"float_key":  3.14,
	}

	for k, v := range keys {
		err := store.Set(k, v)
		require.NoError(t, err)
	}

	for k, expected := range keys {
		val, ok := store.Get(k)
		assert.True(t, ok)
		assert.Equal(t, expected, val)
	}
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	store := NewConfigStore()

	val, ok := store.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_GetString_Success(t *testing.T) {
	store := NewConfigStore()

	_ = store.Set("key1", "string_value")

	val := store.GetString("key1")
	assert.Equal(t, "string_value", val)
}

func TestConfigStore_GetString_WrongType(t *testing.T) {
	store := NewConfigStore()

	_ = store.Set("key1", 123) // int, not string

	val := store.GetString("key1")
	assert.Equal(t, "", val)
}

func TestConfigStore_GetString_NotFound(t *testing.T) {
	store := NewConfigStore()

	val := store.GetString("nonexistent")
	assert.Equal(t, "", val)
}

func TestConfigStore_GetInt(t *testing.T) {
	store := NewConfigStore()

	_ = store.Set("int_val", 42)
	_ = store.Set("int64_val", int64(123))
	_ = store.Set("float_val", float64(123.7))
	_ = store.Set("string_val", "not_a_number")

	assert.Equal(t, 42, store.GetInt("int_val"))
	assert.Equal(t, 123, store.GetInt("int64_val"))
	assert.Equal(t, 123, store.GetInt("float_val"))
	assert.Equal(t, 0, store.GetInt("string_val"))
	assert.Equal(t, 0, store.GetInt("nonexistent"))
}

func TestConfigStore_GetBool(t *testing.T) {
	store := NewConfigStore()

	_ = store.Set("enabled", true)
	_ = store.Set("disabled", false)
	_ = store.Set("string_val", "true") // string, not bool

	assert.True(t, store.GetBool("enabled"))
	assert.False(t, store.GetBool("disabled"))
	assert.False(t, store.GetBool("string_val"))
	assert.False(t, store.GetBool("nonexistent"))
}

func TestConfigStore_Delete(t *testing.T) {
	store := NewConfigStore()

	_ = store.Set("key1", "value1")

	err := store.Delete("key1")
	require.NoError(t, err)

	val, ok := store.Get("key1")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_Delete_Missing(t *testing.T) {
	store := NewConfigStore()

	err := store.Delete("nonexistent")
	assert.NoError(t, err)
}

func TestConfigStore_Keys_Sorted(t *testing.T) {
	store := NewConfigStore()

	_ = store.Set("llm.model", "gpt-4o-mini")
	_ = store.Set("ask.max_results", 3)
	_ = store.Set("chunker.chunk_size", 800)

	keys := store.Keys()
	assert.Equal(t, []string{"ask.max_results", "chunker.chunk_size", "llm.model"}, keys)
}

func TestConfigStore_Keys_Empty(t *testing.T) {
	store := NewConfigStore()

	assert.Empty(t, store.Keys())
}

func TestConfigStore_Keys_AfterDelete(t *testing.T) {
	store := NewConfigStore()

	_ = store.Set("key1", "a")
	_ = store.Set("key2", "b")
	require.NoError(t, store.Delete("key1"))

	assert.Equal(t, []string{"key2"}, store.Keys())
}

func TestConfigStore_Concurrency_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	numGoroutines := 50

	// Concurrent sets
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", id)
			value := fmt.Sprintf("value-%d", id)
			_ = store.Set(key, value)
		}(i)
	}
	wg.Wait()

	// Concurrent gets
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = store.Get(fmt.Sprintf("key-%d", id))
		}(i)
	}
	wg.Wait()

	// Verify all were set
	for i := 0; i < numGoroutines; i++ {
		val, ok := store.Get(fmt.Sprintf("key-%d", i))
		assert.True(t, ok)
		assert.NotNil(t, val)
	}
}

func TestConfigStore_Concurrency_MixedOperations(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	numOperations := 100

	// Pre-populate
	for i := 0; i < 10; i++ {
		_ = store.Set(fmt.Sprintf("key-%d", i), fmt.Sprintf("value-%d", i))
	}

	wg.Add(numOperations)
	for i := 0; i < numOperations; i++ {
		go func(id int) {
			defer wg.Done()
			switch id % 5 {
			case 0:
				_ = store.Set(fmt.Sprintf("key-concurrent-%d", id), id)
			case 1:
				_, _ = store.Get(fmt.Sprintf("key-%d", id%10))
			case 2:
				_ = store.GetString(fmt.Sprintf("key-%d", id%10))
			case 3:
				_ = store.Keys()
			case 4:
				_ = store.Delete(fmt.Sprintf("key-concurrent-%d", id%10))
			}
		}(i)
	}
	wg.Wait()

	// Should not panic or deadlock
	_, _ = store.Get("key-0")
}

func TestConfigStore_Concurrency_UpdateSameKey(t *testing.T) {
	store := NewConfigStore()

	_ = store.Set("shared-key", "initial")

	var wg sync.WaitGroup
	numGoroutines := 50

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			_ = store.Set("shared-key", fmt.Sprintf("updated-%d", id))
		}(i)
	}
	wg.Wait()

	val, ok := store.Get("shared-key")
	assert.True(t, ok)
	assert.NotEqual(t, "initial", val)
}

func TestConfigStore_MultipleInstances(t *testing.T) {
	store1 := NewConfigStore()
	store2 := NewConfigStore()

	_ = store1.Set("key1", "value1")
	_ = store2.Set("key2", "value2")

	// Each store should be independent
	val1, ok1 := store1.Get("key1")
	assert.True(t, ok1)
	assert.Equal(t, "value1", val1)

	_, ok2 := store1.Get("key2")
	assert.False(t, ok2)

	val3, ok3 := store2.Get("key2")
	assert.True(t, ok3)
	assert.Equal(t, "value2", val3)

	_, ok4 := store2.Get("key1")
	assert.False(t, ok4)
}

func TestConfigStore_NilAndZeroValues(t *testing.T) {
	store := NewConfigStore()

	_ = store.Set("nil-key", nil)
	val1, ok1 := store.Get("nil-key")
	assert.True(t, ok1)
	assert.Nil(t, val1)

	_ = store.Set("zero-int", 0)
	assert.Equal(t, 0, store.GetInt("zero-int"))

	_ = store.Set("false-bool", false)
	assert.False(t, store.GetBool("false-bool"))

	_ = store.Set("empty-string", "")
	assert.Equal(t, "", store.GetString("empty-string"))
}
