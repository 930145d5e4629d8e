package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Telemetry.validate(),
		c.UI.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text", "pretty":
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text, pretty; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	} else if u, err := url.Parse(cl.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("client.base_url must be an absolute URL, got %q", cl.BaseURL))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must not be negative, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1 when limiting, got %d",
			cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (u *UIConfig) validate() error {
	var errs []error

	if _, err := time.LoadLocation(u.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("ui.timezone: %w", err))
	}
	if u.NoticeTTL <= 0 {
		errs = append(errs, errors.New("ui.notice_ttl must be positive"))
	}

	errs = append(errs, u.Keys.validate())

	return errors.Join(errs...)
}

func (k *KeyConfig) validate() error {
	actions := []struct {
		name string
		keys []string
	}{
		{"up", k.Up},
		{"down", k.Down},
		{"add", k.Add},
		{"edit", k.Edit},
		{"detail", k.Detail},
		{"delete", k.Delete},
		{"filter", k.Filter},
		{"clear_filter", k.ClearFilter},
		{"refresh", k.Refresh},
		{"help", k.Help},
		{"quit", k.Quit},
	}

	var errs []error
	owner := make(map[string]string)
	for _, a := range actions {
		if len(a.keys) == 0 {
			errs = append(errs, fmt.Errorf("ui.keys.%s must bind at least one key", a.name))
		}
		for _, key := range a.keys {
			if prev, ok := owner[key]; ok {
				errs = append(errs, fmt.Errorf("ui.keys.%s: key %q already bound to %s", a.name, key, prev))
				continue
			}
			owner[key] = a.name
		}
	}

	return errors.Join(errs...)
}
