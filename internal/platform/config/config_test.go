package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "movie-quotes", cfg.App.Name)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, CorpusOnErrorFail, cfg.Corpus.OnError)
	require.Len(t, cfg.Corpus.Sources, 2)
	assert.Equal(t, "the-war-of-flower", cfg.Corpus.Sources[0].Name)
	assert.Equal(t, "data/quotes/the-war-of-flower.json", cfg.Corpus.Sources[0].Path)
	assert.Equal(t, "the-war-of-flower", cfg.Corpus.Sources[0].Movie)

	require.NoError(t, cfg.Validate())
}

func TestLoad_DurationParsing(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Client.Timeout)
	assert.Equal(t, 100*time.Millisecond, cfg.Client.Retry.InitialInterval)
	assert.Equal(t, 30*time.Second, cfg.Client.CircuitBreaker.Timeout)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

func TestLoad_SectionDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Log.File.Enabled)
	assert.Equal(t, "./logs/movie-quotes.log", cfg.Log.File.Path)
	assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.Log.File.MaxSizeMB)
	assert.True(t, cfg.Log.File.Compress)

	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "movie-quotes", cfg.Telemetry.ServiceName)
	assert.InDelta(t, 1.0, cfg.Telemetry.SamplingRate, 0)

	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, []string{"GET", "OPTIONS"}, cfg.CORS.AllowedMethods)
	assert.Equal(t, DefaultCORSMaxAge, cfg.CORS.MaxAge)

	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, DefaultRateLimitRequests, cfg.RateLimit.Requests)

	assert.Equal(t, DefaultClientRetryMaxAttempts, cfg.Client.Retry.MaxAttempts)
	assert.InDelta(t, DefaultClientRetryMultiplier, cfg.Client.Retry.Multiplier, 0)
	assert.Equal(t, DefaultClientCircuitMaxFailures, cfg.Client.CircuitBreaker.MaxFailures)
	assert.Equal(t, DefaultClientCircuitHalfOpenLimit, cfg.Client.CircuitBreaker.HalfOpenLimit)
}

func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_SERVER_REQUEST_TIMEOUT", "2s")
	t.Setenv("APP_LOG_LEVEL", "trace")
	t.Setenv("APP_LOG_FILE__ENABLED", "true")
	t.Setenv("APP_TELEMETRY_ENABLED", "true")
	t.Setenv("APP_RATE_LIMIT_REQUESTS", "7")
	t.Setenv("APP_CORPUS_ON_ERROR", "skip")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "trace", cfg.Log.Level)
	assert.True(t, cfg.Log.File.Enabled)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, 7, cfg.RateLimit.Requests)
	assert.Equal(t, CorpusOnErrorSkip, cfg.Corpus.OnError)
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"APP_SERVER_PORT", "server.port"},
		{"APP_SERVER_READ_TIMEOUT", "server.read_timeout"},
		{"APP_RATE_LIMIT_ENABLED", "rate_limit.enabled"},
		{"APP_CORS_MAX_AGE", "cors.max_age"},
		{"APP_CLIENT_CIRCUIT_BREAKER__MAX_FAILURES", "client.circuit_breaker.max_failures"},
		{"APP_LOG_FILE__MAX_SIZE", "log.file.max_size"},
		{"APP_UNKNOWN", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.in))
		})
	}
}

func TestLoadFrom_FilePrecedence(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "base.yaml", `
app:
  environment: dev
log:
  format: text
corpus:
  on_error: skip
  sources:
    - name: tazza
      path: /srv/quotes/tazza.yaml
      movie: the-war-of-flower
    - name: remote
      url: https://quotes.example.com/new-world.json
`)
	writeFile(t, dir, "prod.yaml", `
app:
  environment: prod
log:
  format: json
`)

	t.Run("base only", func(t *testing.T) {
		cfg, err := LoadFrom(dir, "")
		require.NoError(t, err)

		assert.Equal(t, "dev", cfg.App.Environment)
		assert.Equal(t, "text", cfg.Log.Format)
		assert.Equal(t, CorpusOnErrorSkip, cfg.Corpus.OnError)
		assert.Equal(t, []CorpusSourceConfig{
			{Name: "tazza", Path: "/srv/quotes/tazza.yaml", Movie: "the-war-of-flower"},
			{Name: "remote", URL: "https://quotes.example.com/new-world.json"},
		}, cfg.Corpus.Sources)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("profile overrides base", func(t *testing.T) {
		cfg, err := LoadFrom(dir, "prod")
		require.NoError(t, err)

		assert.Equal(t, "prod", cfg.App.Environment)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Len(t, cfg.Corpus.Sources, 2)
	})

	t.Run("env overrides profile", func(t *testing.T) {
		t.Setenv("APP_LOG_FORMAT", "pretty")

		cfg, err := LoadFrom(dir, "prod")
		require.NoError(t, err)

		assert.Equal(t, "pretty", cfg.Log.Format)
	})

	t.Run("missing profile falls back", func(t *testing.T) {
		cfg, err := LoadFrom(dir, "nonexistent")
		require.NoError(t, err)

		assert.Equal(t, "dev", cfg.App.Environment)
	})
}

func TestLoadFrom_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", "server: [unterminated")

	_, err := LoadFrom(dir, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading base config")
}

func TestDefaults(t *testing.T) {
	d := defaults()

	assert.Equal(t, "movie-quotes", d["app.name"])
	assert.Equal(t, DefaultServerPort, d["server.port"])
	assert.Equal(t, "json", d["log.format"])
	assert.Equal(t, CorpusOnErrorFail, d["corpus.on_error"])
	assert.Equal(t, DefaultClientRetryMaxAttempts, d["client.retry.max_attempts"])
}
