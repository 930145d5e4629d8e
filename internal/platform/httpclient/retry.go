package httpclient

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/jsamuelsen11/todo-client/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// attemptsFor returns how many times a request with the given method may be
// sent. Only idempotent methods are replayed: a POST that reached the API may
// already have stored a record, so it is sent once.
func (rc retryConfig) attemptsFor(method string) int {
	if !isIdempotent(method) {
		return 1
	}
	return rc.maxAttempts
}

// isIdempotent reports whether repeating a request with method leaves the
// remote list as a single send would.
func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// doWithRetry sends req, replaying idempotent requests with exponential
// backoff on transport failures, 429 and 5xx. The final response is written
// to resp with its body open; on an exhausted retryable status both resp and
// the returned error are set.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}
	attempts := c.retryCfg.attemptsFor(req.Method)

	var body []byte
	if attempts > 1 {
		var err error
		if body, err = bufferRequestBody(req); err != nil {
			return err
		}
	}

	var lastErr error
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.waitForRetry(ctx, req, attempt, attempts, lastErr); err != nil {
				return err
			}
			resetRequestBody(req, body)
		}

		r, err := c.httpClient.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return err
			}
			lastErr = err
			continue
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		if attempt == attempts-1 {
			*resp = r
			return lastErr
		}
		drainResponseBody(r)
	}

	return lastErr
}

// bufferRequestBody reads and closes the request body so it can be replayed.
// Returns nil if the body is nil.
func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()

	resetRequestBody(req, b)
	return b, nil
}

// resetRequestBody replaces the request body with a fresh reader over b.
func resetRequestBody(req *http.Request, b []byte) {
	if b == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(b))
	req.ContentLength = int64(len(b))
}

// drainResponseBody discards the body so the connection can be reused.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// waitForRetry logs the upcoming attempt and sleeps for the backoff delay or
// until ctx is done.
func (c *Client) waitForRetry(ctx context.Context, req *http.Request, attempt, attempts int, lastErr error) error {
	delay := backoff(attempt, c.retryCfg)

	logging.FromContextOr(ctx, c.logger).WarnContext(ctx, "retrying todo API request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", attempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// backoff returns the delay before retry number attempt (1 is the first
// retry): initialInterval * multiplier^(attempt-1), capped at maxInterval,
// then jittered by ±25%.
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))
	delay = min(delay, float64(cfg.maxInterval))
	return time.Duration(max(jitter(delay), 0))
}

// jitter spreads d uniformly over [d-25%, d+25%].
func jitter(d float64) float64 {
	return d + d*jitterFraction*(2*secureRandFloat64()-1)
}

// IEEE 754 double-precision constants for random float generation.
const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}

// isRetryable reports whether a transport error may be retried. Cancellation
// and deadline expiry are final; anything else (network errors included) is
// worth another attempt.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports whether the API answered with 429 or a 5xx.
func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}
