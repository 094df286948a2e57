// Package speech is the outbound sink for spoken prompts. The
// consultation core only ever emits plain text; this client hands that
// text to an external synthesizer over HTTP. Audio synthesis and
// playback stay entirely outside the core contracts.
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// Synthesizer is the interface the API layer speaks to. A nil or
// disabled sink is represented by not wiring a Synthesizer at all.
type Synthesizer interface {
	Speak(ctx context.Context, text string) error
}

// Config represents configuration for the speech sink client
type Config struct {
	BaseURL     string        `json:"base_url"`
	Voice       string        `json:"voice"`
	Timeout     time.Duration `json:"timeout"`
	RateLimit   int           `json:"rate_limit"` // requests per second
	MaxRequests uint32        `json:"max_requests"`
	Interval    time.Duration `json:"interval"`
	CBTimeout   time.Duration `json:"cb_timeout"`
	Failures    uint32        `json:"failures"`
}

// Client posts prompt text to an external text-to-speech service. Calls
// are paced by a token-bucket limiter and guarded by a circuit breaker
// so a slow or failing synthesizer never stalls the consultation.
type Client struct {
	baseURL        string
	voice          string
	httpClient     *http.Client
	rateLimit      *rate.Limiter
	circuitBreaker *gobreaker.CircuitBreaker
	logger         *logrus.Logger
}

type synthesizeRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice,omitempty"`
}

// NewClient creates a new speech sink client
func NewClient(config Config, logger *logrus.Logger) *Client {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	if config.RateLimit == 0 {
		config.RateLimit = 3
	}
	if config.MaxRequests == 0 {
		config.MaxRequests = 3
	}
	if config.Interval == 0 {
		config.Interval = 10 * time.Second
	}
	if config.CBTimeout == 0 {
		config.CBTimeout = 5 * time.Second
	}
	if config.Failures == 0 {
		config.Failures = 5
	}

	cbSettings := gobreaker.Settings{
		Name:        "SpeechSink",
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.CBTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.Failures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"circuit_breaker": name,
				"from_state":      from,
				"to_state":        to,
			}).Warn("Circuit breaker state changed")
		},
	}

	return &Client{
		baseURL: config.BaseURL,
		voice:   config.Voice,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		rateLimit:      rate.NewLimiter(rate.Limit(config.RateLimit), 1),
		circuitBreaker: gobreaker.NewCircuitBreaker(cbSettings),
		logger:         logger,
	}
}

// Speak submits text for synthesis. Errors are returned for the caller
// to log; the consultation itself never depends on the outcome.
func (c *Client) Speak(ctx context.Context, text string) error {
	if err := c.rateLimit.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait failed: %w", err)
	}

	_, err := c.circuitBreaker.Execute(func() (interface{}, error) {
		return nil, c.synthesize(ctx, text)
	})
	if err != nil {
		return fmt.Errorf("speech synthesis failed: %w", err)
	}

	c.logger.WithField("text_length", len(text)).Debug("Submitted prompt for synthesis")
	return nil
}

// synthesize performs the HTTP round trip to the synthesizer.
func (c *Client) synthesize(ctx context.Context, text string) error {
	body, err := json.Marshal(synthesizeRequest{Text: text, Voice: c.voice})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/synthesize", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("synthesizer returned status %d: %s", resp.StatusCode, string(payload))
	}

	return nil
}
