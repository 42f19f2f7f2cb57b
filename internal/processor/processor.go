package processor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/quote-reel/internal/composer"
)

// Process runs generate -> select -> compose -> publish.
// Only media selection and composition abort the run.
func (p *implProcessor) Process(ctx context.Context, topic string) (Result, error) {
	startTime := time.Now()
	var res Result

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting clip for topic: %q", topic)
	p.logger.Info(ctx, "========================================")

	// Step 1: Caption
	res.Caption, res.UsedFallback = p.caption(ctx, topic)
	p.logger.Info(ctx, "Generated Text: %s", res.Caption)

	// Step 2: Media
	sel, err := p.selector.Select(ctx)
	if err != nil {
		return res, fmt.Errorf("select media: %w", err)
	}
	res.Media = sel
	p.logger.Info(ctx, "Using Image: %s", sel.ImagePath)
	p.logger.Info(ctx, "Using Audio: %s", sel.AudioPath)

	// Step 3: Render
	out, err := p.composer.Compose(ctx, composer.Job{
		ImagePath: sel.ImagePath,
		AudioPath: sel.AudioPath,
		Caption:   res.Caption,
	})
	if err != nil {
		return res, fmt.Errorf("create video: %w", err)
	}
	res.Video = out

	// Step 4: Optional upload, failures only warn
	if p.publisher != nil {
		location, err := p.publisher.Publish(ctx, out.Path)
		if err != nil {
			p.logger.Warn(ctx, "Failed to publish %s: %v", out.Path, err)
		} else {
			res.Published = location
			p.logger.Info(ctx, "Published: %s", location)
		}
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Clip completed: %s (%.2fs)", out.Path, out.Duration)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime).Round(time.Millisecond))
	p.logger.Info(ctx, "========================================")

	return res, nil
}

// caption asks the generator for text and substitutes the fallback on any failure
func (p *implProcessor) caption(ctx context.Context, topic string) (string, bool) {
	if p.generator == nil {
		p.logger.Warn(ctx, "No text generator configured")
		return p.fallback, true
	}

	text, err := p.generator.Generate(ctx, topic)
	if err != nil {
		p.logger.Warn(ctx, "Text generation via %s failed: %v", p.generator.Provider(), err)
		p.logger.Info(ctx, "Using fallback text")
		return p.fallback, true
	}

	text = strings.TrimSpace(text)
	if text == "" {
		p.logger.Info(ctx, "Using fallback text")
		return p.fallback, true
	}

	return text, false
}
