package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 1
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	// DefaultBaseURL is the public deployment of the to-do API.
	DefaultBaseURL = "https://calm-plum-jaguar-tutu.cyclic.app"
)

// defaults returns the built-in configuration values.
// These are loaded first and can be overridden by every other layer.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "127.0.0.1",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "40s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",
		"log.file":   "",

		"client.base_url":                        DefaultBaseURL,
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           1,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-client",

		"ui.timezone":          "Local",
		"ui.notice_ttl":        "3s",
		"ui.alt_screen":        true,
		"ui.keys.up":           []string{"up", "k"},
		"ui.keys.down":         []string{"down", "j"},
		"ui.keys.add":          []string{"a"},
		"ui.keys.edit":         []string{"e"},
		"ui.keys.detail":       []string{"enter"},
		"ui.keys.delete":       []string{"d", "x"},
		"ui.keys.filter":       []string{"f"},
		"ui.keys.clear_filter": []string{"F"},
		"ui.keys.refresh":      []string{"r"},
		"ui.keys.help":         []string{"?"},
		"ui.keys.quit":         []string{"q", "ctrl+c"},
	}
}
