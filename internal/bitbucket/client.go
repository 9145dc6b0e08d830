package bitbucket

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bbcloud/bbctl/internal/config"
)

const userAgent = "bbctl/1.0"

// Client issues authenticated requests against the Bitbucket Cloud REST API.
type Client struct {
	baseURL string
	http    *http.Client
	cfg     *config.Config
	logger  *slog.Logger
	Logger  *slog.Logger
}

// NewClient builds a client from the global configuration loaded at startup.
func NewClient(ctx context.Context) (*Client, error) {
	if config.GlobalCfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if config.GlobalLogger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	logger := config.GlobalLogger
	logger.Debug("Initializing Bitbucket client", "url", config.GlobalCfg.APIURL, "workspace", config.GlobalCfg.Workspace)

	if config.GlobalCfg.HasBasicAuth() {
		logger.Debug("Using basic auth", "username", config.GlobalCfg.Username)
	} else {
		logger.Debug("Using bearer token authentication")
	}

	return &Client{
		baseURL: strings.TrimRight(config.GlobalCfg.APIURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		cfg:     config.GlobalCfg,
		logger:  logger,
		Logger:  logger,
	}, nil
}

// Workspace returns the workspace all requests are scoped to.
func (c *Client) Workspace() string {
	return c.cfg.Workspace
}

// do performs a single JSON request. A non-nil out receives the decoded 2xx
// body. Non-2xx responses become *APIError, transport failures *RequestError.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cfg.HasBasicAuth() {
		req.SetBasicAuth(c.cfg.Username, c.cfg.AppPassword)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	c.logger.Debug("HTTP request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("HTTP response", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var envelope errorEnvelope
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil {
			apiErr.Message = envelope.Error.Message
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to decode response body: %w", err)
		}
	}
	return nil
}
