package deepl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"translatebot/internal/domain"
	"translatebot/internal/ports/output"
)

const (
	// DefaultEndpoint is the translate endpoint of the free API tier.
	DefaultEndpoint = "https://api-free.deepl.com/v2/translate"

	// RequestTimeout bounds a single translate call.
	RequestTimeout = 10 * time.Second

	maxErrorBody = 512
)

var _ output.Translator = (*Client)(nil)

// Client calls the DeepL translate endpoint. It is safe for concurrent use.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
	breaker  *gobreaker.CircuitBreaker
}

type Option func(*Client)

// WithEndpoint overrides the translate URL (paid tier, tests).
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if strings.TrimSpace(endpoint) != "" {
			c.endpoint = strings.TrimSpace(endpoint)
		}
	}
}

// WithHTTPClient replaces the default client and its timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithBreakerSettings replaces the circuit breaker configuration.
func WithBreakerSettings(st gobreaker.Settings) Option {
	return func(c *Client) {
		c.breaker = gobreaker.NewCircuitBreaker(st)
	}
}

// NewClient builds a client authenticating with the given auth key.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		token:    token,
		http:     &http.Client{Timeout: RequestTimeout},
		breaker:  gobreaker.NewCircuitBreaker(DefaultBreakerSettings()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultBreakerSettings opens after 5 consecutive provider failures and
// probes again after 30 seconds.
func DefaultBreakerSettings() gobreaker.Settings {
	return gobreaker.Settings{
		Name:         "deepl",
		MaxRequests:  1,
		Timeout:      30 * time.Second,
		IsSuccessful: providerHealthy,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
}

// StatusError is a non-2xx answer from DeepL.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("deepl status %d: %s", e.StatusCode, e.Message)
}

// callerError marks a failure caused by the caller's context ending.
type callerError struct {
	err error
}

func (e *callerError) Error() string { return e.err.Error() }
func (e *callerError) Unwrap() error { return e.err }

// providerHealthy reports whether err leaves the provider's health intact.
// Only transport failures, timeouts, 429 and 5xx count against the breaker;
// rejected requests and cancelled callers do not.
func providerHealthy(err error) bool {
	if err == nil {
		return true
	}
	var cerr *callerError
	if errors.As(err, &cerr) {
		return true
	}
	var serr *StatusError
	if errors.As(err, &serr) {
		return serr.StatusCode != http.StatusTooManyRequests && serr.StatusCode < 500
	}
	return false
}

type translateResponse struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Translate sends text to DeepL. Multiple returned segments are joined with
// a newline. Every failure is a *domain.ProviderError; nothing is retried.
func (c *Client) Translate(ctx context.Context, text string, target domain.Language, source *domain.Language) (string, error) {
	out, err := c.breaker.Execute(func() (interface{}, error) {
		translated, err := c.do(ctx, text, target, source)
		if err != nil && ctx.Err() != nil {
			return nil, &callerError{err: err}
		}
		return translated, err
	})
	if err != nil {
		return "", &domain.ProviderError{Err: err}
	}
	return out.(string), nil
}

func (c *Client) do(ctx context.Context, text string, target domain.Language, source *domain.Language) (string, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("target_lang", target.Code())
	if source != nil {
		form.Set("source_lang", source.Code())
	}

	endpoint, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	query := endpoint.Query()
	query.Set("auth_key", c.token)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build translate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("send translate request: %w", redact(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read translate response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var payload errorResponse
		msg := truncate(strings.TrimSpace(string(body)), maxErrorBody)
		if jsonErr := json.Unmarshal(body, &payload); jsonErr == nil && strings.TrimSpace(payload.Message) != "" {
			msg = payload.Message
		}
		return "", &StatusError{StatusCode: resp.StatusCode, Message: msg}
	}

	var parsed translateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode translate response: %w", err)
	}

	segments := make([]string, len(parsed.Translations))
	for i, t := range parsed.Translations {
		segments[i] = t.Text
	}
	return strings.Join(segments, "\n"), nil
}

// redact drops the request URL, which carries the auth key, from transport errors.
func redact(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s: %w", uerr.Op, uerr.Err)
	}
	return err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
