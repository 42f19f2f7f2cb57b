package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/nguyentantai21042004/quote-reel/internal/config"
	"github.com/nguyentantai21042004/quote-reel/internal/logger"
)

func TestNewSelectsProvider(t *testing.T) {
	tests := []struct {
		provider string
		want     string
		wantErr  bool
	}{
		{"", config.ProviderGemini, false},
		{config.ProviderGemini, config.ProviderGemini, false},
		{config.ProviderGeminiSDK, config.ProviderGeminiSDK, false},
		{config.ProviderCohere, config.ProviderCohere, false},
		{"markov", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			g, err := New(config.GeneratorConfig{Provider: tt.provider}, logger.NewNop())
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && g.Provider() != tt.want {
				t.Errorf("Provider() = %q, want %q", g.Provider(), tt.want)
			}
		})
	}
}

func TestProvidersRequireAPIKey(t *testing.T) {
	for _, provider := range []string{config.ProviderGemini, config.ProviderGeminiSDK, config.ProviderCohere} {
		t.Run(provider, func(t *testing.T) {
			g, err := New(config.GeneratorConfig{Provider: provider}, logger.NewNop())
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if _, err := g.Generate(context.Background(), "topic"); !errors.Is(err, ErrMissingAPIKey) {
				t.Errorf("Generate() error = %v, want ErrMissingAPIKey", err)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	tests := []struct {
		name     string
		template string
		topic    string
		want     string
	}{
		{"with verb", "Generate a short 10-15 word quote about: %s", " grit ", "Generate a short 10-15 word quote about: grit"},
		{"without verb", "Write a motto about", "rain", "Write a motto about rain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildPrompt(tt.template, tt.topic); got != tt.want {
				t.Errorf("buildPrompt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleanCaption(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Believe in yourself\n", "Believe in yourself"},
		{`"Keep going."`, "Keep going."},
		{"“Rise again.”", "Rise again."},
		{`Say "yes" more`, `Say "yes" more`},
		{`""`, `""`},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := cleanCaption(tt.in); got != tt.want {
				t.Errorf("cleanCaption(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitAPIVersion(t *testing.T) {
	tests := []struct {
		in          string
		wantBase    string
		wantVersion string
	}{
		{"", "", ""},
		{defaultGeminiBaseURL, "", ""},
		{"http://127.0.0.1:8080/v1beta", "http://127.0.0.1:8080/", "v1beta"},
		{"http://127.0.0.1:8080/", "http://127.0.0.1:8080/", ""},
		{"https://proxy.internal/gemini", "https://proxy.internal/gemini/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			base, version := splitAPIVersion(tt.in)
			if base != tt.wantBase || version != tt.wantVersion {
				t.Errorf("splitAPIVersion(%q) = (%q, %q), want (%q, %q)", tt.in, base, version, tt.wantBase, tt.wantVersion)
			}
		})
	}
}
