package logger

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json output honours level", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := New(&buf, "warn", "json")
		require.NoError(t, err)

		log.Info("hidden")
		log.Warn("shown", "person_id", 7)
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"person_id":7`)
	})

	t.Run("text is the default format", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := New(&buf, "", "")
		require.NoError(t, err)
		log.Info("hello", "op", "list")
		assert.Contains(t, buf.String(), "op=list")
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := New(&bytes.Buffer{}, "loud", "text")
		assert.Error(t, err)
		_, err = New(&bytes.Buffer{}, "info", "xml")
		assert.Error(t, err)
	})
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestOpenFile(t *testing.T) {
	w, err := OpenFile("")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "persondesk.log")
	w, err = OpenFile(path)
	require.NoError(t, err)
	_, err = w.Write([]byte("line\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.FileExists(t, path)
}
