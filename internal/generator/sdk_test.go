package generator

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nguyentantai21042004/quote-reel/internal/config"
	"github.com/nguyentantai21042004/quote-reel/internal/logger"
)

func testSDKConfig(baseURL string) config.GeneratorConfig {
	cfg := testGeneratorConfig(baseURL + "/v1beta")
	cfg.Provider = config.ProviderGeminiSDK
	return cfg
}

func TestGeminiSDKGenerateSuccess(t *testing.T) {
	var gotPath, gotKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"\"Believe in yourself\"\n"}]}}]}`)
	}))
	defer srv.Close()

	g := newGeminiSDK(testSDKConfig(srv.URL), srv.Client(), logger.NewNop())
	text, err := g.Generate(context.Background(), "confidence")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if text != "Believe in yourself" {
		t.Errorf("Generate() = %q, want %q", text, "Believe in yourself")
	}
	if gotPath != "/v1beta/models/gemini-1.5-flash-latest:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("x-goog-api-key = %q, want test-key", gotKey)
	}
}

func TestGeminiSDKGenerateFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"bad request", http.StatusBadRequest, `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`, ErrRequest},
		{"forbidden", http.StatusForbidden, `{"error":{"code":403,"message":"denied","status":"PERMISSION_DENIED"}}`, ErrRequest},
		{"no candidates", http.StatusOK, `{"candidates":[]}`, ErrNoCandidates},
		{"candidates field absent", http.StatusOK, `{}`, ErrNoCandidates},
		{"missing content", http.StatusOK, `{"candidates":[{}]}`, ErrMalformed},
		{"blank text", http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"  "}]}}]}`, ErrEmptyText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			g := newGeminiSDK(testSDKConfig(srv.URL), srv.Client(), logger.NewNop())
			text, err := g.Generate(context.Background(), "anything")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Generate() error = %v, want %v", err, tt.wantErr)
			}
			if text != "" {
				t.Errorf("Generate() text = %q, want empty on failure", text)
			}
		})
	}
}
