package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/forgelabs/forgectl/internal/config"
	"github.com/forgelabs/forgectl/internal/errors"
	"github.com/forgelabs/forgectl/internal/log"
)

// Client talks to the Forge identity service (an Ory-Kratos-style API).
// Every call happens at most once per run; the client performs no retries.
type Client struct {
	BaseURL     string
	JWTTemplate string
	HTTPClient  *http.Client

	logger *log.Logger
}

// NewClient creates a client from the resolved configuration
func NewClient(cfg config.Config, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Client{
		BaseURL:     cfg.IdentityURL,
		JWTTemplate: cfg.JWTTemplate,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// get performs a GET against an absolute URL with the given headers and
// returns the response body. A send/connect failure is a transport error.
func (c *Client) get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, errors.NewTransportError(url, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return c.do(req)
}

// postJSON performs a POST with a JSON body against an absolute URL and
// returns the response body.
func (c *Client) postJSON(ctx context.Context, url string, body any) ([]byte, int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, errors.NewTransportError(url, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, int, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, 0, errors.NewTransportError(req.URL.String(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, errors.NewTransportError(req.URL.String(), err)
	}

	c.logger.Debug("identity request completed",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	return body, resp.StatusCode, nil
}
