package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client invokes named SQL procedures on the reporting warehouse over its
// PostgREST endpoint. It holds no mutable state and is safe for concurrent
// use; construct one in the composition root and inject it where needed.
type Client struct {
	session *http.Client
	baseURL string
	apiKey  string
}

func NewClient(baseURL, apiKey string) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("warehouse base URL is empty")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("warehouse api key is empty")
	}

	return &Client{
		session: &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}, nil
}

// Call invokes a named procedure with a flat argument object and decodes
// the returned rows into out (a pointer to a slice). A null or empty
// response body decodes to an empty result, never an error.
func (c *Client) Call(ctx context.Context, procedure string, args any, out any) error {
	endpoint := fmt.Sprintf("%s/rest/v1/rpc/%s", c.baseURL, procedure)

	payload, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("marshal args for %s: %w", procedure, err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("call %s: %w", procedure, err)
	}

	if err := c.do(req, out); err != nil {
		return fmt.Errorf("call %s: %w", procedure, err)
	}
	return nil
}

// Select reads rows from a table with PostgREST filter parameters, for the
// simple reads that have no procedure behind them.
func (c *Client) Select(ctx context.Context, table string, params url.Values, out any) error {
	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("select %s: %w", table, err)
	}

	if err := c.do(req, out); err != nil {
		return fmt.Errorf("select %s: %w", table, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// do executes the request and decodes the response. Non-2xx responses are
// parsed into *RemoteError so callers can branch on the error code.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.session.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		re := &RemoteError{}
		if jsonErr := json.Unmarshal(b, re); jsonErr != nil || *re == (RemoteError{}) {
			re.Message = strings.TrimSpace(string(b))
			re.Code = fmt.Sprintf("http_%d", resp.StatusCode)
		}
		return re
	}

	if out == nil {
		return nil
	}

	// Absent data is an empty result, not an error.
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
