package nexa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestClientCSRFRefreshAndRetryOnce(t *testing.T) {
	var tokenFetches, generateCalls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/csrf-token":
			n := tokenFetches.Add(1)
			token := "stale-token"
			if n > 1 {
				token = "fresh-token"
			}
			json.NewEncoder(w).Encode(map[string]string{"csrfToken": token})
		case "/api/documents/generate/test":
			generateCalls.Add(1)
			if r.Header.Get("X-CSRF-Token") != "fresh-token" {
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(map[string]string{"message": "Invalid CSRF token"})
				return
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "bearer-token")

	result, err := client.GenerateDocument(context.Background(), "/api/documents/generate/test", "user-1", nil)
	if err != nil {
		t.Fatalf("GenerateDocument: %v", err)
	}
	if result.Message != "ok" {
		t.Errorf("message = %q, want ok", result.Message)
	}

	// Exactly one refetch and one retried request
	if got := tokenFetches.Load(); got != 2 {
		t.Errorf("token fetches = %d, want 2 (initial + one refresh)", got)
	}
	if got := generateCalls.Load(); got != 2 {
		t.Errorf("generate calls = %d, want 2 (initial + one retry)", got)
	}
}

func TestClientCSRFRetryDoesNotLoop(t *testing.T) {
	var generateCalls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/csrf-token" {
			json.NewEncoder(w).Encode(map[string]string{"csrfToken": "always-rejected"})
			return
		}
		generateCalls.Add(1)
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid CSRF token"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "bearer-token")

	resp, err := client.doPost(context.Background(), "/api/documents/generate/test", GenerateRequest{})
	if err != nil {
		t.Fatalf("doPost: %v", err)
	}
	resp.Body.Close()

	// The retried 403 is returned to the caller, not retried again
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}
	if got := generateCalls.Load(); got != 2 {
		t.Errorf("generate calls = %d, want exactly 2", got)
	}
}

func TestClientNonCSRF403IsNotRetried(t *testing.T) {
	var generateCalls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/csrf-token" {
			json.NewEncoder(w).Encode(map[string]string{"csrfToken": "tok"})
			return
		}
		generateCalls.Add(1)
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "Admin access required"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "bearer-token")

	_, err := client.GenerateDocument(context.Background(), "/api/documents/generate/test", "user-1", nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "Admin access required") {
		t.Errorf("err = %v, want the server message", err)
	}
	if got := generateCalls.Load(); got != 1 {
		t.Errorf("generate calls = %d, want 1 (no retry)", got)
	}
}

func TestClientBinaryResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/csrf-token" {
			json.NewEncoder(w).Encode(map[string]string{"csrfToken": "tok"})
			return
		}
		if r.Header.Get("Authorization") != "Bearer bearer-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", docxContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="Contract_Ana.docx"`)
		w.Write([]byte{0x50, 0x4b, 0x03, 0x04})
	}))
	defer server.Close()

	client := NewClient(server.URL, "bearer-token")

	result, err := client.GenerateDocument(context.Background(), "/api/documents/generate/test", "user-1", map[string]string{"a": "b"})
	if err != nil {
		t.Fatalf("GenerateDocument: %v", err)
	}

	if !result.IsDocument() {
		t.Fatal("expected a binary document result")
	}
	if result.Filename != "Contract_Ana.docx" {
		t.Errorf("filename = %q, want Contract_Ana.docx", result.Filename)
	}
	if len(result.Data) != 4 {
		t.Errorf("data length = %d, want 4", len(result.Data))
	}
}

func TestFilenameFromDisposition(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{`attachment; filename="Contract_Ana.docx"`, "Contract_Ana.docx"},
		{`attachment; filename="Договор_Ана.docx"`, "Договор_Ана.docx"},
		{``, ""},
		{`attachment`, ""},
	}

	for _, tt := range tests {
		if got := filenameFromDisposition(tt.header); got != tt.want {
			t.Errorf("filenameFromDisposition(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestCSRFTokenProviderCaches(t *testing.T) {
	var fetches atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		json.NewEncoder(w).Encode(map[string]string{"csrfToken": "tok"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "bearer-token")
	provider := newCSRFTokenProvider(client)

	for i := 0; i < 3; i++ {
		if _, err := provider.Token(context.Background()); err != nil {
			t.Fatalf("Token: %v", err)
		}
	}
	if got := fetches.Load(); got != 1 {
		t.Errorf("fetches = %d, want 1 (cached after first)", got)
	}

	provider.Invalidate()
	if _, err := provider.Token(context.Background()); err != nil {
		t.Fatalf("Token after Invalidate: %v", err)
	}
	if got := fetches.Load(); got != 2 {
		t.Errorf("fetches = %d, want 2 after invalidation", got)
	}
}
