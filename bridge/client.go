package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const DefaultBaseURL = "https://bridge.lto.network"

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the remote bridge-conversion API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
	}
}

// GenerateAddress asks the bridge for a one-time conversion address. The
// captcha response travels with the request and is consumed by the service,
// so callers must only get here on a cache miss.
func (c *Client) GenerateAddress(ctx context.Context, req GenerateAddressRequest) (string, error) {
	var resp GenerateAddressResponse
	if err := c.postJSON(ctx, "/generate-address", req, &resp); err != nil {
		return "", err
	}
	if resp.Address == "" {
		return "", fmt.Errorf("bridge returned no address")
	}
	return resp.Address, nil
}

// Stats fetches the aggregate burn statistics.
func (c *Client) Stats(ctx context.Context) (*StatsResponse, error) {
	var resp StatsResponse
	if err := c.getJSON(ctx, "/stats", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Faucet requests test tokens for recipient. Pass-through collaborator, the
// response body is not interpreted.
func (c *Client) Faucet(ctx context.Context, recipient, captchaResponse string) error {
	return c.postJSON(ctx, "/faucet", FaucetRequest{
		Recipient:       recipient,
		CaptchaResponse: captchaResponse,
	}, nil)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("bridge %s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cannot decode bridge response: %w", err)
	}
	return nil
}
