package nexa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// CSRFTokenSource supplies the X-CSRF-Token header value. Token returns the
// current token, fetching one if none is cached; Invalidate drops the cache
// so the next Token call fetches fresh.
type CSRFTokenSource interface {
	Token(ctx context.Context) (string, error)
	Invalidate()
}

// csrfTokenProvider caches the last-fetched token behind a mutex. When
// several goroutines miss the cache at once, only the lock holder fetches;
// the rest reuse its result.
type csrfTokenProvider struct {
	mu     sync.Mutex
	token  string
	client *Client
}

func newCSRFTokenProvider(client *Client) *csrfTokenProvider {
	return &csrfTokenProvider{client: client}
}

func (p *csrfTokenProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" {
		return p.token, nil
	}

	token, err := p.fetch(ctx)
	if err != nil {
		return "", err
	}

	p.token = token
	return token, nil
}

func (p *csrfTokenProvider) Invalidate() {
	p.mu.Lock()
	p.token = ""
	p.mu.Unlock()
}

func (p *csrfTokenProvider) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", p.client.baseURL+"/api/csrf-token", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create CSRF request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.client.bearerToken)

	resp, err := p.client.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch CSRF token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var result struct {
		CSRFToken string `json:"csrfToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode CSRF response: %w", err)
	}
	if result.CSRFToken == "" {
		return "", fmt.Errorf("server returned an empty CSRF token")
	}

	return result.CSRFToken, nil
}
