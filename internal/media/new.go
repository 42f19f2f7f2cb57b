package media

import (
	"math/rand/v2"

	"github.com/nguyentantai21042004/quote-reel/internal/config"
	"github.com/nguyentantai21042004/quote-reel/internal/logger"
)

type implSelector struct {
	cfg    config.MediaConfig
	logger logger.Logger
	intn   func(n int) int
}

// New creates a Selector reading the configured image and sound directories
func New(cfg config.MediaConfig, log logger.Logger) Selector {
	return &implSelector{
		cfg:    cfg,
		logger: log,
		intn:   rand.IntN,
	}
}
