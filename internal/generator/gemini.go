package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/nguyentantai21042004/quote-reel/internal/config"
	"github.com/nguyentantai21042004/quote-reel/internal/logger"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

// Response fields are pointers so a missing field can be told apart from an empty one.
type geminiResponse struct {
	Candidates []struct {
		Content *struct {
			Parts []struct {
				Text *string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// implGemini calls the generateContent REST endpoint directly.
// The API key travels as the "key" query parameter.
type implGemini struct {
	cfg    config.GeneratorConfig
	client *http.Client
	logger logger.Logger
}

func newGemini(cfg config.GeneratorConfig, client *http.Client, log logger.Logger) *implGemini {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultGeminiBaseURL
	}
	return &implGemini{cfg: cfg, client: client, logger: log}
}

func (g *implGemini) Provider() string { return config.ProviderGemini }

// Generate sends exactly one request, no retries
func (g *implGemini) Generate(ctx context.Context, topic string) (string, error) {
	if g.cfg.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	payload := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{{Text: buildPrompt(g.cfg.PromptTemplate, topic)}},
		}},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return "", fmt.Errorf("%w: encode payload: %v", ErrRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint(), &buf)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRequest, redactURL(err))
	}
	req.Header.Set("Content-Type", "application/json")

	g.logger.Debug(ctx, "Calling Gemini model %s", g.cfg.Model)

	resp, err := g.client.Do(req)
	if err != nil {
		err = redactURL(err)
		g.logger.Error(ctx, "General Error: %v", err)
		return "", fmt.Errorf("%w: %v", ErrRequest, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		g.logger.Error(ctx, "Gemini API Error: %d", resp.StatusCode)
		g.logger.Error(ctx, "%s", strings.TrimSpace(string(body)))
		return "", fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}

	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		g.logger.Error(ctx, "General Error: decode response: %v", err)
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return extractGeminiText(out)
}

func (g *implGemini) endpoint() string {
	base := strings.TrimRight(g.cfg.BaseURL, "/")
	model := url.PathEscape(g.cfg.Model)
	return fmt.Sprintf("%s/models/%s:generateContent?key=%s", base, model, url.QueryEscape(g.cfg.APIKey))
}

// extractGeminiText reads candidates[0].content.parts[0].text
func extractGeminiText(resp geminiResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", ErrNoCandidates
	}

	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 || content.Parts[0].Text == nil {
		return "", fmt.Errorf("%w: candidate has no text part", ErrMalformed)
	}

	text := cleanCaption(*content.Parts[0].Text)
	if text == "" {
		return "", ErrEmptyText
	}
	return text, nil
}

// redactURL drops the request URL from transport errors so the API key never reaches logs
func redactURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s: %w", strings.ToLower(uerr.Op), uerr.Err)
	}
	return err
}
