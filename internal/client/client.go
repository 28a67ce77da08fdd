// Package client is the typed HTTP client for the context-manager API,
// used by the manusctl CLI.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

var defaultBaseURL = "http://localhost:8080/api"

// Client talks to the context-manager REST API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a new API client. The base URL can be overridden with the
// MANUS_API_URL environment variable.
func New() *Client {
	baseURL := os.Getenv("MANUS_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// makeRequest makes an HTTP request and returns the response body
func (c *Client) makeRequest(method, endpoint string, body interface{}) ([]byte, error) {
	url := c.BaseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

func (c *Client) get(endpoint string, out interface{}) error {
	body, err := c.makeRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func (c *Client) post(endpoint string, in, out interface{}) error {
	body, err := c.makeRequest(http.MethodPost, endpoint, in)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func (c *Client) put(endpoint string, in, out interface{}) error {
	body, err := c.makeRequest(http.MethodPut, endpoint, in)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}
