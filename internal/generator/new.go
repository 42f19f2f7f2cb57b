package generator

import (
	"fmt"
	"net/http"

	"github.com/nguyentantai21042004/quote-reel/internal/config"
	"github.com/nguyentantai21042004/quote-reel/internal/logger"
)

// New creates the Generator selected by cfg.Provider.
// A missing API key is not an error here: Generate reports it and the caller falls back.
func New(cfg config.GeneratorConfig, log logger.Logger) (Generator, error) {
	client := &http.Client{Timeout: cfg.Timeout}

	switch cfg.Provider {
	case config.ProviderGemini, "":
		return newGemini(cfg, client, log), nil
	case config.ProviderGeminiSDK:
		return newGeminiSDK(cfg, client, log), nil
	case config.ProviderCohere:
		return newCohere(cfg, client, log), nil
	default:
		return nil, fmt.Errorf("unsupported generator provider %q", cfg.Provider)
	}
}
