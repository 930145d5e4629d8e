// Package config provides configuration loading and validation for the client.
// Configuration is layered: built-in defaults -> base.yaml -> {profile}.yaml ->
// optional user TOML file -> environment variables.
package config

import "time"

// Config holds all configuration for the client.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	UI        UIConfig        `koanf:"ui"`
}

// ServerConfig holds settings for the headless HTTP shell (todo serve).
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings. An empty File means stderr
// for the HTTP shell and a file under the temp dir for the terminal UI.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	File   string `koanf:"file"`
}

// ClientConfig holds remote to-do API client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
// MaxAttempts of 1 disables retries.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds outbound token-bucket settings.
// RequestsPerSecond of 0 disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	Timezone  string        `koanf:"timezone"`
	NoticeTTL time.Duration `koanf:"notice_ttl"`
	AltScreen bool          `koanf:"alt_screen"`
	Keys      KeyConfig     `koanf:"keys"`
}

// KeyConfig maps each list action to one or more key names as understood by
// Bubble Tea (e.g. "a", "enter", "ctrl+c").
type KeyConfig struct {
	Up          []string `koanf:"up"`
	Down        []string `koanf:"down"`
	Add         []string `koanf:"add"`
	Edit        []string `koanf:"edit"`
	Detail      []string `koanf:"detail"`
	Delete      []string `koanf:"delete"`
	Filter      []string `koanf:"filter"`
	ClearFilter []string `koanf:"clear_filter"`
	Refresh     []string `koanf:"refresh"`
	Help        []string `koanf:"help"`
	Quit        []string `koanf:"quit"`
}

// Location resolves the configured display time zone. Call after Validate.
func (u *UIConfig) Location() *time.Location {
	loc, err := time.LoadLocation(u.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
