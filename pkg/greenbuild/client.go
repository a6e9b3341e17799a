package greenbuild

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const genericErrorMessage = "something went wrong, please try again"

// RemoteError carries the server-provided message from a {"message": ...}
// error body, or the generic fallback when the body had none.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
}

// Client is a thin caller for the marketplace REST API. Success bodies are
// {"data": ...} envelopes; do unwraps one level into out.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return &RemoteError{Message: genericErrorMessage}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg := genericErrorMessage
		var errBody struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(res.Body).Decode(&errBody); err == nil && errBody.Message != "" {
			msg = errBody.Message
		}
		return &RemoteError{StatusCode: res.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return &RemoteError{StatusCode: res.StatusCode, Message: genericErrorMessage}
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return &RemoteError{StatusCode: res.StatusCode, Message: genericErrorMessage}
	}
	return nil
}

func remoteMessage(err error) string {
	if re, ok := err.(*RemoteError); ok && re.Message != "" {
		return re.Message
	}
	return genericErrorMessage
}
