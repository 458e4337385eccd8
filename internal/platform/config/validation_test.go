package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a fully valid configuration for testing.
func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "movie-quotes",
			Version:     "1.0.0",
			Environment: "test",
		},
		Server: ServerConfig{
			Port:            3000,
			Host:            "0.0.0.0",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RequestTimeout:  5 * time.Second,
			MaxRequestSize:  1 << 20,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET"},
			MaxAge:         300,
		},
		RateLimit: RateLimitConfig{
			Requests: 100,
			Window:   time.Minute,
		},
		Client: ClientConfig{
			Timeout: 10 * time.Second,
			Retry: RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     5 * time.Second,
				Multiplier:      2.0,
				JitterFactor:    0.25,
			},
			CircuitBreaker: CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 3,
			},
			Transport: TransportConfig{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		Corpus: CorpusConfig{
			OnError: CorpusOnErrorFail,
			Sources: []CorpusSourceConfig{
				{Name: "new-world", Path: "data/quotes/new-world.json", Movie: "new-world"},
			},
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr []string
	}{
		{
			name:    "missing app name",
			mutate:  func(c *Config) { c.App.Name = "" },
			wantErr: []string{"app.name is required"},
		},
		{
			name:    "invalid environment",
			mutate:  func(c *Config) { c.App.Environment = "staging" },
			wantErr: []string{"app.environment must be one of"},
		},
		{
			name:    "port too high",
			mutate:  func(c *Config) { c.Server.Port = 65536 },
			wantErr: []string{"server.port must be at most 65535"},
		},
		{
			name:    "zero port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: []string{"server.port is required"},
		},
		{
			name:    "request timeout too short",
			mutate:  func(c *Config) { c.Server.RequestTimeout = 10 * time.Millisecond },
			wantErr: []string{"server.requesttimeout must be at least"},
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: []string{"log.level must be one of: trace debug info warn error"},
		},
		{
			name:    "log level is case sensitive",
			mutate:  func(c *Config) { c.Log.Level = "INFO" },
			wantErr: []string{"log.level"},
		},
		{
			name:    "invalid log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: []string{"log.format"},
		},
		{
			name:    "file logging without path",
			mutate:  func(c *Config) { c.Log.File.Enabled = true },
			wantErr: []string{"log.file.path is required when"},
		},
		{
			name: "log file too large",
			mutate: func(c *Config) {
				c.Log.File = LogFileConfig{Enabled: true, Path: "/tmp/q.log", MaxSizeMB: 2048}
			},
			wantErr: []string{"log.file.maxsizemb must be at most 1024"},
		},
		{
			name:    "telemetry without endpoint",
			mutate:  func(c *Config) { c.Telemetry = TelemetryConfig{Enabled: true, ServiceName: "movie-quotes"} },
			wantErr: []string{"telemetry.endpoint is required when"},
		},
		{
			name:    "sampling rate above one",
			mutate:  func(c *Config) { c.Telemetry.SamplingRate = 1.5 },
			wantErr: []string{"telemetry.samplingrate must be at most 1"},
		},
		{
			name:    "cors without origins",
			mutate:  func(c *Config) { c.CORS.AllowedOrigins = nil },
			wantErr: []string{"cors.allowedorigins is required"},
		},
		{
			name: "rate limit enabled without budget",
			mutate: func(c *Config) {
				c.RateLimit = RateLimitConfig{Enabled: true, Window: time.Minute}
			},
			wantErr: []string{"ratelimit.requests is required when"},
		},
		{
			name: "rate limit with negative window",
			mutate: func(c *Config) {
				c.RateLimit = RateLimitConfig{Enabled: true, Requests: 10, Window: -time.Second}
			},
			wantErr: []string{"rate_limit.window must be positive"},
		},
		{
			name:    "retry attempts above bound",
			mutate:  func(c *Config) { c.Client.Retry.MaxAttempts = 11 },
			wantErr: []string{"client.retry.maxattempts must be at most 10"},
		},
		{
			name:    "multiplier below bound",
			mutate:  func(c *Config) { c.Client.Retry.Multiplier = 1.0 },
			wantErr: []string{"client.retry.multiplier must be at least 1.1"},
		},
		{
			name:    "breaker timeout too short",
			mutate:  func(c *Config) { c.Client.CircuitBreaker.Timeout = 500 * time.Millisecond },
			wantErr: []string{"client.circuitbreaker.timeout must be at least 1s"},
		},
		{
			name:    "invalid corpus policy",
			mutate:  func(c *Config) { c.Corpus.OnError = "ignore" },
			wantErr: []string{"corpus.onerror must be one of: fail skip"},
		},
		{
			name:    "no corpus sources",
			mutate:  func(c *Config) { c.Corpus.Sources = nil },
			wantErr: []string{"corpus.sources is required"},
		},
		{
			name: "source without location",
			mutate: func(c *Config) {
				c.Corpus.Sources = []CorpusSourceConfig{{Name: "empty"}}
			},
			wantErr: []string{
				"corpus.sources[0].path is required when url is empty",
				"corpus.sources[0].url is required when path is empty",
			},
		},
		{
			name: "source with both path and url",
			mutate: func(c *Config) {
				c.Corpus.Sources = []CorpusSourceConfig{
					{Name: "both", Path: "q.json", URL: "https://example.com/q.json"},
				}
			},
			wantErr: []string{"corpus.sources[0].path must be empty when url is set"},
		},
		{
			name: "source with malformed url",
			mutate: func(c *Config) {
				c.Corpus.Sources = []CorpusSourceConfig{{Name: "bad", URL: "not a url"}}
			},
			wantErr: []string{"corpus.sources[0].url must be a valid URL"},
		},
		{
			name: "source with unknown movie",
			mutate: func(c *Config) {
				c.Corpus.Sources[0].Movie = "parasite"
			},
			wantErr: []string{`corpus.sources[0].movie: unknown movie "parasite"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")

			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestConfig_Validate_AcceptedValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"trace level", func(c *Config) { c.Log.Level = "trace" }},
		{"pretty format", func(c *Config) { c.Log.Format = "pretty" }},
		{"skip policy", func(c *Config) { c.Corpus.OnError = CorpusOnErrorSkip }},
		{"remote source", func(c *Config) {
			c.Corpus.Sources = append(c.Corpus.Sources, CorpusSourceConfig{
				Name: "remote",
				URL:  "https://quotes.example.com/tazza.json",
			})
		}},
		{"source without movie", func(c *Config) { c.Corpus.Sources[0].Movie = "" }},
		{"rate limit enabled", func(c *Config) { c.RateLimit.Enabled = true }},
		{"file logging", func(c *Config) {
			c.Log.File = LogFileConfig{Enabled: true, Path: "/var/log/q.log", MaxSizeMB: 10}
		}},
		{"telemetry", func(c *Config) {
			c.Telemetry = TelemetryConfig{
				Enabled:      true,
				Endpoint:     "localhost:4317",
				ServiceName:  "movie-quotes",
				SamplingRate: 0.5,
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := validConfig()
	cfg.App.Name = ""
	cfg.Server.Port = 0
	cfg.Corpus.OnError = ""

	err := cfg.Validate()
	require.Error(t, err)

	assert.Contains(t, err.Error(), "app.name")
	assert.Contains(t, err.Error(), "server.port")
	assert.Contains(t, err.Error(), "corpus.onerror")
}

func TestFormatFieldPath(t *testing.T) {
	tests := []struct {
		namespace string
		expected  string
	}{
		{"Config.Server.Port", "server.port"},
		{"Config.Corpus.Sources[1].URL", "corpus.sources[1].url"},
		{"Config.App", "app"},
		{"Port", "port"},
	}

	for _, tt := range tests {
		t.Run(tt.namespace, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFieldPath(tt.namespace))
		})
	}
}
