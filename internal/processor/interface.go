package processor

import (
	"context"

	"github.com/nguyentantai21042004/quote-reel/internal/composer"
	"github.com/nguyentantai21042004/quote-reel/internal/media"
)

// Result summarizes one run
type Result struct {
	Caption      string
	UsedFallback bool
	Media        media.Selection
	Video        composer.Result
	// Published is the remote location of the clip, empty when publishing is off or failed
	Published string
}

// Processor defines the topic-to-clip pipeline
type Processor interface {
	Process(ctx context.Context, topic string) (Result, error)
}
