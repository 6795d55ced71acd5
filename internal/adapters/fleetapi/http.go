package fleetapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fleet-console/internal/platform/metrics"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// APIError is a non-2xx response from the fleet API. Message carries the
// "message" field of the body when the API sent one.
type APIError struct {
	Code    int
	Message string
	Body    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api status %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("api status %d: %s", e.Code, e.Body)
}

// UserMessage is the text the API meant for the operator, if any.
func (e *APIError) UserMessage() string { return e.Message }

func (c *Client) newRequest(
	ctx context.Context,
	method string,
	path string,
	body io.Reader,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		resp.Body.Close()
		return nil, newAPIError(resp.StatusCode, b)
	}
	return resp, nil
}

func newAPIError(code int, body []byte) *APIError {
	e := &APIError{
		Code: code,
		Body: strings.TrimSpace(string(body)),
	}
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		e.Message = strings.TrimSpace(payload.Message)
	}
	return e
}

// call issues one request and decodes the JSON response into out. in and out
// may be nil. An empty response body leaves out untouched. Nothing is retried.
func (c *Client) call(
	ctx context.Context,
	method string,
	resource string,
	path string,
	in any,
	out any,
) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.do(req)
	metrics.APIRequestDuration.WithLabelValues(resource, method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(resource, method, statusLabel(err)).Inc()
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	metrics.APIRequestsTotal.WithLabelValues(resource, method, strconv.Itoa(resp.StatusCode)).Inc()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

func statusLabel(err error) string {
	if e, ok := err.(*APIError); ok {
		return strconv.Itoa(e.Code)
	}
	return "error"
}
