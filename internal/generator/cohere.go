package generator

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
	"github.com/cohere-ai/cohere-go/v2/core"

	"github.com/nguyentantai21042004/quote-reel/internal/config"
	"github.com/nguyentantai21042004/quote-reel/internal/logger"
)

// implCohere asks Cohere's chat endpoint for the caption
type implCohere struct {
	cfg    config.GeneratorConfig
	client *cohereclient.Client
	logger logger.Logger
}

func newCohere(cfg config.GeneratorConfig, httpClient *http.Client, log logger.Logger) *implCohere {
	var client *cohereclient.Client
	if cfg.APIKey != "" {
		opts := []core.RequestOption{
			cohereclient.WithToken(cfg.APIKey),
			cohereclient.WithHTTPClient(httpClient),
		}
		if cfg.BaseURL != "" {
			opts = append(opts, cohereclient.WithBaseURL(strings.TrimRight(cfg.BaseURL, "/")))
		}
		client = cohereclient.NewClient(opts...)
	}
	return &implCohere{cfg: cfg, client: client, logger: log}
}

func (c *implCohere) Provider() string { return config.ProviderCohere }

func (c *implCohere) Generate(ctx context.Context, topic string) (string, error) {
	if c.client == nil {
		return "", ErrMissingAPIKey
	}

	model := c.cfg.Model
	resp, err := c.client.Chat(ctx, &cohere.ChatRequest{
		Message: buildPrompt(c.cfg.PromptTemplate, topic),
		Model:   &model,
	})
	if err != nil {
		c.logger.Error(ctx, "Cohere API Error: %v", err)
		return "", fmt.Errorf("%w: chat: %v", ErrRequest, err)
	}
	if resp == nil {
		return "", ErrNoCandidates
	}

	text := cleanCaption(resp.Text)
	if text == "" {
		return "", ErrEmptyText
	}
	return text, nil
}
