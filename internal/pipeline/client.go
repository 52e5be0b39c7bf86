// Package pipeline talks to an external image-edit endpoint. It is the one
// layer allowed to surface errors directly to the operator; everything the
// assemblers do stays inside the never-crash placeholder contract.
package pipeline

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 120 * time.Second

// Client speaks the edit endpoint's JSON protocol via direct HTTP.
type Client struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// NewClient returns a client with defaults applied.
func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		BaseURL: strings.TrimSpace(baseURL),
		APIKey:  strings.TrimSpace(apiKey),
		Model:   strings.TrimSpace(model),
	}
}

// EditRequest carries one prompt-guided image edit.
type EditRequest struct {
	Prompt   string
	Negative string
	// Image is the encoded source image (PNG or JPEG bytes).
	Image []byte
	Steps int
}

// EditResponse carries the edited image bytes.
type EditResponse struct {
	Image   []byte
	Created int64
}

type editWireRequest struct {
	Model    string `json:"model,omitempty"`
	Prompt   string `json:"prompt"`
	Negative string `json:"negative_prompt,omitempty"`
	Image    string `json:"image_b64"`
	Steps    int    `json:"steps,omitempty"`
}

type editWireResponse struct {
	Created int64 `json:"created"`
	Data    []struct {
		B64JSON string `json:"b64_json,omitempty"`
	} `json:"data"`
}

// Edit posts the request and decodes the first returned image.
func (c *Client) Edit(ctx context.Context, req *EditRequest) (*EditResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("edit client not configured")
	}
	if req == nil {
		return nil, fmt.Errorf("request is required")
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, fmt.Errorf("prompt is required")
	}
	if len(req.Image) == 0 {
		return nil, fmt.Errorf("image is required")
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	payload := editWireRequest{
		Model:    c.Model,
		Prompt:   req.Prompt,
		Negative: req.Negative,
		Image:    base64.StdEncoding.EncodeToString(req.Image),
		Steps:    req.Steps,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	url := strings.TrimRight(c.BaseURL, "/") + "/images/edits"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if c.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("edit endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var parsed editWireResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Data) == 0 || strings.TrimSpace(parsed.Data[0].B64JSON) == "" {
		return nil, fmt.Errorf("edit endpoint returned no image")
	}

	decoded, err := base64.StdEncoding.DecodeString(parsed.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("decode image base64: %w", err)
	}

	return &EditResponse{Image: decoded, Created: parsed.Created}, nil
}
