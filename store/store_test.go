package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreMissingFile(t *testing.T) {
	s, err := OpenFile(filepath.Join(t.TempDir(), "best.json"))
	require.NoError(t, err)
	assert.Equal(t, 0, s.BestScore())
	assert.Equal(t, 0, s.BestLines())
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best.json")
	s, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, s.SetBestScore(1234))
	require.NoError(t, s.SetBestLines(56))

	again, err := OpenFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1234, again.BestScore())
	assert.Equal(t, 56, again.BestLines())
	assert.Equal(t, path, again.Path())
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	_, err := OpenFile(path)
	assert.Error(t, err)
}

func TestFileStoreWriteError(t *testing.T) {
	s, err := OpenFile(filepath.Join(t.TempDir(), "missing-dir", "best.json"))
	require.NoError(t, err)
	assert.Error(t, s.SetBestScore(10))
	assert.Equal(t, 10, s.BestScore())
}

func TestMemoryStore(t *testing.T) {
	var s ScoreStore = &MemoryStore{}
	require.NoError(t, s.SetBestScore(7))
	require.NoError(t, s.SetBestLines(2))
	assert.Equal(t, 7, s.BestScore())
	assert.Equal(t, 2, s.BestLines())
}
