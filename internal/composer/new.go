package composer

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/quote-reel/internal/config"
	"github.com/nguyentantai21042004/quote-reel/internal/logger"
	"github.com/nguyentantai21042004/quote-reel/pkg/executor"
)

type implComposer struct {
	video     config.VideoConfig
	ffmpeg    config.FFmpegConfig
	outputDir string
	executor  executor.Executor
	logger    logger.Logger

	intn  func(n int) int
	newID func() string
}

// New creates a Composer that renders with ffmpeg through exec
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Composer {
	return &implComposer{
		video:     cfg.Video,
		ffmpeg:    cfg.FFmpeg,
		outputDir: cfg.Paths.Output,
		executor:  exec,
		logger:    log,
		intn:      rand.IntN,
		newID:     uuid.NewString,
	}
}
