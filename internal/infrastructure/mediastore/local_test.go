package mediastore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "media")

	store, err := NewLocalStore(dir, "/media/")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, dir, store.Dir())
}

func TestLocalStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/media")
	require.NoError(t, err)

	url, err := store.Save("news/12345.jpg", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/media/news/12345.jpg", url)

	written, err := os.ReadFile(filepath.Join(dir, "news", "12345.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(written))
}

func TestLocalStore_Save_TrailingSlashBaseURL(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/media/")
	require.NoError(t, err)

	url, err := store.Save("a.png", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "/media/a.png", url, "base URL never doubles the slash")
}

func TestLocalStore_Save_CleansTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/media")
	require.NoError(t, err)

	url, err := store.Save("../escape.txt", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "/media/escape.txt", url)

	// The object lands inside the store root, not the parent directory.
	_, err = os.Stat(filepath.Join(dir, "escape.txt"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(filepath.Dir(dir), "escape.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStore_Save_EmptyKey(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/media")
	require.NoError(t, err)

	_, err = store.Save("", strings.NewReader("x"))
	assert.Error(t, err)

	_, err = store.Save("..", strings.NewReader("x"))
	assert.Error(t, err)
}
