package composer

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// probeDuration asks ffprobe for the container duration in seconds
func (c *implComposer) probeDuration(ctx context.Context, path string) (float64, error) {
	out, err := c.executor.Execute(ctx, c.ffmpeg.ProbePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w", path, err)
	}

	d, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration of %s: %w", path, err)
	}
	return d, nil
}
