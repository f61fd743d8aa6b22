package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wordfind-cli/internal/core/ports/driven"
)

func TestNewConfigStore(t *testing.T) {
	t.Run("creates store in given directory", func(t *testing.T) {
		tmpDir := t.TempDir()

		store, err := NewConfigStore(tmpDir)

		require.NoError(t, err)
		require.NotNil(t, store)
		assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
	})

	t.Run("defaults to home directory", func(t *testing.T) {
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("cannot determine home directory")
		}

		store, err := NewConfigStore("")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".wordfind", "config.toml"), store.Path())
	})

	t.Run("creates nested directories", func(t *testing.T) {
		nested := filepath.Join(t.TempDir(), "deep", "path")

		store, err := NewConfigStore(nested)

		require.NoError(t, err)
		require.NotNil(t, store)

		info, err := os.Stat(nested)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
	})

	t.Run("fails when directory creation fails", func(t *testing.T) {
		store, err := NewConfigStore("/dev/null/cannot/create/dirs")

		assert.Error(t, err)
		assert.Nil(t, store)
	})

	t.Run("fails on corrupted TOML", func(t *testing.T) {
		tmpDir := t.TempDir()
		err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not toml {{{[["), 0600)
		require.NoError(t, err)

		store, err := NewConfigStore(tmpDir)

		assert.Error(t, err)
		assert.Nil(t, store)
	})
}

func TestConfigStore_SetAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set(driven.KeyWordNetPath, "/data/wordnet"))
	require.NoError(t, store.Set(driven.KeyWorkers, 4))
	require.NoError(t, store.Set(driven.KeyRecursive, true))

	assert.Equal(t, "/data/wordnet", store.GetString(driven.KeyWordNetPath))
	assert.Equal(t, 4, store.GetInt(driven.KeyWorkers))
	assert.True(t, store.GetBool(driven.KeyRecursive))

	t.Run("missing keys yield zero values", func(t *testing.T) {
		val, ok := store.Get("nonexistent")
		assert.False(t, ok)
		assert.Nil(t, val)
		assert.Equal(t, "", store.GetString("nonexistent"))
		assert.Equal(t, 0, store.GetInt("nonexistent"))
		assert.False(t, store.GetBool("nonexistent"))
	})

	t.Run("wrong types yield zero values", func(t *testing.T) {
		assert.Equal(t, "", store.GetString(driven.KeyWorkers))
		assert.Equal(t, 0, store.GetInt(driven.KeyWordNetPath))
		assert.False(t, store.GetBool(driven.KeyWordNetPath))
	})

	t.Run("overwrite replaces the value", func(t *testing.T) {
		require.NoError(t, store.Set(driven.KeyWorkers, 8))
		assert.Equal(t, 8, store.GetInt(driven.KeyWorkers))
	})
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set(driven.KeyWorkers, 6))
	require.NoError(t, store1.Set(driven.KeyCaseSensitive, true))
	require.NoError(t, store1.Set(driven.KeyWordNetPath, "/opt/wn"))

	// A fresh instance loads what the first one saved
	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 6, store2.GetInt(driven.KeyWorkers))
	assert.True(t, store2.GetBool(driven.KeyCaseSensitive))
	assert.Equal(t, "/opt/wn", store2.GetString(driven.KeyWordNetPath))
}

func TestConfigStore_Load(t *testing.T) {
	t.Run("missing file starts empty", func(t *testing.T) {
		store, err := NewConfigStore(t.TempDir())
		require.NoError(t, err)

		_, ok := store.Get(driven.KeyWorkers)
		assert.False(t, ok)
	})

	t.Run("comment-only file starts empty", func(t *testing.T) {
		tmpDir := t.TempDir()
		err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("# nothing here\n"), 0600)
		require.NoError(t, err)

		store, err := NewConfigStore(tmpDir)
		require.NoError(t, err)

		_, ok := store.Get(driven.KeyWorkers)
		assert.False(t, ok)
	})

	t.Run("nested tables flatten to dotted keys", func(t *testing.T) {
		tmpDir := t.TempDir()
		content := []byte("[scan]\nworkers = 3\nrecursive = true\n\n[lexicon]\nwordnet_path = \"/data/wn\"\n")
		err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), content, 0600)
		require.NoError(t, err)

		store, err := NewConfigStore(tmpDir)
		require.NoError(t, err)

		assert.Equal(t, 3, store.GetInt(driven.KeyWorkers))
		assert.True(t, store.GetBool(driven.KeyRecursive))
		assert.Equal(t, "/data/wn", store.GetString(driven.KeyWordNetPath))
	})

	t.Run("load fails on corrupted content", func(t *testing.T) {
		store, err := NewConfigStore(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, store.Set(driven.KeyWorkers, 2))

		require.NoError(t, os.WriteFile(store.Path(), []byte("broken ][}{"), 0600))

		assert.Error(t, store.Load())
	})
}

func TestConfigStore_Save(t *testing.T) {
	t.Run("writes with restricted permissions", func(t *testing.T) {
		store, err := NewConfigStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Set(driven.KeyRestrict, true))

		info, err := os.Stat(store.Path())
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("set fails when the file is unwritable", func(t *testing.T) {
		store, err := NewConfigStore(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, store.Set(driven.KeyRestrict, true))

		// Replace the file with a directory to force a write error
		require.NoError(t, os.Remove(store.Path()))
		require.NoError(t, os.Mkdir(store.Path(), 0700))

		assert.Error(t, store.Set(driven.KeyRestrict, false))
	})
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			key := "key" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_, _ = store.Get(key)
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
