package wordlist

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteLines(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteLines([]string{"ab", "ba", ""}))
	require.NoError(t, w.Close())

	assert.Equal(t, "ab\nba\n\n", buf.String())
}

func TestWriter_BuffersUntilClose(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteLines([]string{"ab"}))
	assert.Empty(t, buf.String())

	require.NoError(t, w.Close())
	assert.Equal(t, "ab\n", buf.String())
}

func TestNewFileWriterOrStdout(t *testing.T) {
	t.Run("empty path uses stdout", func(t *testing.T) {
		var stdout bytes.Buffer
		w, err := NewFileWriterOrStdout("  ", &stdout)
		require.NoError(t, err)

		require.NoError(t, w.WriteLines([]string{"x"}))
		require.NoError(t, w.Close())
		assert.Equal(t, "x\n", stdout.String())
	})

	t.Run("writes file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		w, err := NewFileWriterOrStdout(path, nil)
		require.NoError(t, err)

		require.NoError(t, w.WriteLines([]string{"a", "b"}))
		require.NoError(t, w.Close())
		require.NoError(t, w.Close(), "close is idempotent")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "a\nb\n", string(data))
	})

	t.Run("uncreatable file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing-dir", "out.txt")
		_, err := NewFileWriterOrStdout(path, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
