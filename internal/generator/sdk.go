package generator

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/quote-reel/internal/config"
	"github.com/nguyentantai21042004/quote-reel/internal/logger"
)

// implGeminiSDK produces the same caption through the official genai client
type implGeminiSDK struct {
	cfg    config.GeneratorConfig
	client *http.Client
	logger logger.Logger
}

func newGeminiSDK(cfg config.GeneratorConfig, client *http.Client, log logger.Logger) *implGeminiSDK {
	return &implGeminiSDK{cfg: cfg, client: client, logger: log}
}

func (g *implGeminiSDK) Provider() string { return config.ProviderGeminiSDK }

func (g *implGeminiSDK) Generate(ctx context.Context, topic string) (string, error) {
	if g.cfg.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	clientCfg := &genai.ClientConfig{
		APIKey:     g.cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: g.client,
	}
	if base, version := splitAPIVersion(g.cfg.BaseURL); base != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: base, APIVersion: version}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return "", fmt.Errorf("%w: create client: %v", ErrRequest, err)
	}

	result, err := client.Models.GenerateContent(ctx, g.cfg.Model, genai.Text(buildPrompt(g.cfg.PromptTemplate, topic)), nil)
	if err != nil {
		g.logger.Error(ctx, "Gemini API Error: %v", err)
		return "", fmt.Errorf("%w: generate content: %v", ErrRequest, err)
	}

	if result == nil || len(result.Candidates) == 0 {
		return "", ErrNoCandidates
	}
	if result.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: candidate has no content", ErrMalformed)
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			text += part.Text
		}
	}

	text = cleanCaption(text)
	if text == "" {
		return "", ErrEmptyText
	}
	return text, nil
}

// splitAPIVersion turns ".../v1beta" into the base URL and version the SDK expects.
// The public default endpoint is left to the SDK.
func splitAPIVersion(baseURL string) (string, string) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" || baseURL == defaultGeminiBaseURL {
		return "", ""
	}

	idx := strings.LastIndex(baseURL, "/")
	if idx < 0 {
		return baseURL + "/", ""
	}
	last := baseURL[idx+1:]
	if strings.HasPrefix(last, "v1") {
		return baseURL[:idx+1], last
	}
	return baseURL + "/", ""
}
