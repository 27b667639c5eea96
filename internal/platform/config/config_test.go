package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"persondesk/pkg/platform/sentinel"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "persondesk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.MessageTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeConfig(t, `
client:
  api_url: http://records.internal:9000
  request_timeout: 2s
  log_level: debug
  message_ttl: 5s
`)
	t.Setenv("PERSONDESK_LOG_LEVEL", "warn")
	t.Setenv("PERSONDESK_MESSAGE_TTL", "1500ms")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://records.internal:9000", cfg.APIURL)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 1500*time.Millisecond, cfg.MessageTTL)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "client: [oops"))
		require.Error(t, err)
	})

	t.Run("bad duration in env", func(t *testing.T) {
		t.Setenv("PERSONDESK_REQUEST_TIMEOUT", "soon")
		_, err := Load("")
		assert.ErrorIs(t, err, sentinel.ErrInvalidInput)
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		t.Setenv("PERSONDESK_REQUEST_TIMEOUT", "0s")
		_, err := Load("")
		assert.ErrorIs(t, err, sentinel.ErrInvalidInput)
	})
}

func TestLoadFakeAPI(t *testing.T) {
	cfg, err := LoadFakeAPI("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFakeAPIAddr, cfg.Addr)

	t.Setenv("FAKEAPI_ADDR", "127.0.0.1:9999")
	cfg, err = LoadFakeAPI(writeConfig(t, "fakeapi:\n  addr: :7000\n  log_level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
}
