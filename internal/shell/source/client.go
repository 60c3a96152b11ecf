package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// maxErrorBody caps how much of a failed response ends up in a FetchError.
const maxErrorBody = 512

// Client fetches deployment documents over HTTP, retrying connection errors
// and 5xx/429 responses with exponential backoff.
type Client struct {
	username string
	password string
	http     *retryablehttp.Client
	logger   *slog.Logger
}

// Config holds HTTP client configuration.
type Config struct {
	Username     string // basic auth is sent only when set
	Password     string
	Timeout      time.Duration // per attempt
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// NewClient creates a new deployment client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient.Timeout = timeout
	rc.Logger = logger
	rc.RetryMax = cfg.RetryMax
	if cfg.RetryWaitMin > 0 {
		rc.RetryWaitMin = cfg.RetryWaitMin
	}
	if cfg.RetryWaitMax > 0 {
		rc.RetryWaitMax = cfg.RetryWaitMax
	}
	// hand the last response back so the status can be reported
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		username: cfg.Username,
		password: cfg.Password,
		http:     rc,
		logger:   logger,
	}
}

// Fetch GETs url and returns the response body.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	c.logger.Debug("fetching deployment", "url", url, "auth", c.username != "")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("fetched deployment", "url", url, "bytes", len(body))
	return body, nil
}
