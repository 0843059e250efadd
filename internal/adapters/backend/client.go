package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// TokenSource supplies the bearer token attached to outgoing requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Client talks to the remote exchange backend. Every response uses the
// {success, data, message, error} envelope; see decode for the unwrapping
// rule applied to data.
type Client struct {
	http    *http.Client
	baseURL string
	tokens  TokenSource
}

func NewClient(httpClient *http.Client, baseURL string, tokens TokenSource) *Client {
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		tokens:  tokens,
	}
}

// APIError carries the upstream failure message verbatim; the UI surfaces
// Message to the user without rewording.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// Envelope metadata keys that never count as the payload.
var metaKeys = map[string]struct{}{
	"cache":      {},
	"latency_ms": {},
	"requestId":  {},
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request for %s: %w", path, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request for %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response for %s: %w", path, err)
	}

	var env envelope
	if err = json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to decode response for %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || (env.Success != nil && !*env.Success) {
		msg := env.Message
		if msg == "" {
			msg = env.Error
		}
		if msg == "" {
			msg = "Request failed"
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}

	payload := raw
	if len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		payload = unwrapPayload(env.Data)
	}
	if err = json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("failed to decode payload for %s: %w", path, err)
	}
	return nil
}

// unwrapPayload applies the envelope convention: when data is an object with
// exactly one key besides the metadata keys, callers receive that key's
// value, not the wrapper.
func unwrapPayload(data json.RawMessage) json.RawMessage {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		// arrays and scalars pass through as-is
		return data
	}
	var payloadKey string
	count := 0
	for k := range obj {
		if _, meta := metaKeys[k]; meta {
			continue
		}
		payloadKey = k
		count++
	}
	if count == 1 {
		return obj[payloadKey]
	}
	return data
}
