package nexa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Client is the Nexa API client
type Client struct {
	baseURL     string
	bearerToken string
	httpClient  *http.Client
	csrf        CSRFTokenSource
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithCSRFTokenSource sets a custom CSRF token source
func WithCSRFTokenSource(source CSRFTokenSource) ClientOption {
	return func(c *Client) {
		c.csrf = source
	}
}

// NewClient creates a new Nexa client
func NewClient(baseURL, bearerToken string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		bearerToken: bearerToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.csrf == nil {
		c.csrf = newCSRFTokenProvider(c)
	}

	return c
}

// GenerateDocument submits form data to a template's generation endpoint.
// A binary response comes back as document bytes plus the filename from
// Content-Disposition; a JSON response comes back as a message.
func (c *Client) GenerateDocument(ctx context.Context, endpoint, userID string, formData map[string]string) (*DocumentResult, error) {
	req := GenerateRequest{UserID: userID, FormData: formData}

	resp, err := c.doPost(ctx, endpoint, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiErrorFromResponse(resp)
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, docxContentType) {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read document: %w", err)
		}
		return &DocumentResult{
			Filename: filenameFromDisposition(resp.Header.Get("Content-Disposition")),
			Data:     data,
		}, nil
	}

	var body messageBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &DocumentResult{Message: body.Message}, nil
}

// doPost sends an authenticated JSON POST. A 403 whose body mentions CSRF
// triggers exactly one token refresh and one retry before the error is
// surfaced.
func (c *Client) doPost(ctx context.Context, path string, body interface{}) (*http.Response, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.send(ctx, path, jsonBody)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusForbidden {
		peek, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()

		if !strings.Contains(strings.ToLower(string(peek)), "csrf") {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: messageFromBody(peek)}
		}

		c.csrf.Invalidate()
		return c.send(ctx, path, jsonBody)
	}

	return resp, nil
}

func (c *Client) send(ctx context.Context, path string, jsonBody []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)

	token, err := c.csrf.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain CSRF token: %w", err)
	}
	req.Header.Set("X-CSRF-Token", token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

func apiErrorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return &APIError{StatusCode: resp.StatusCode, Message: messageFromBody(body)}
}

// messageFromBody extracts the server's {"message": ...}, falling back to a
// generic string so callers always have something to show
func messageFromBody(body []byte) string {
	var parsed messageBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	if len(body) > 0 {
		return string(body)
	}
	return "request failed"
}

// filenameFromDisposition pulls the filename out of a Content-Disposition
// header. An empty result means the caller should fall back to its own name.
func filenameFromDisposition(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err == nil && params["filename"] != "" {
		return params["filename"]
	}

	// ParseMediaType rejects unencoded non-ASCII filenames, which the server
	// emits for Cyrillic document titles; fall back to a naive scan
	const marker = `filename="`
	start := strings.Index(header, marker)
	if start < 0 {
		return ""
	}
	rest := header[start+len(marker):]
	end := strings.Index(rest, `"`)
	if end < 0 {
		return ""
	}
	return rest[:end]
}
