package composer

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Compose renders job into a new file in the output directory.
// Partial output is left in place when ffmpeg fails.
func (c *implComposer) Compose(ctx context.Context, job Job) (Result, error) {
	startTime := time.Now()

	if strings.TrimSpace(job.Caption) == "" {
		return Result{}, ErrEmptyCaption
	}

	width, height, err := imageSize(job.ImagePath)
	if err != nil {
		return Result{}, fmt.Errorf("read image: %w", err)
	}
	// yuv420p needs even dimensions
	width, height = width-width%2, height-height%2
	if width < 2 || height < 2 {
		return Result{}, fmt.Errorf("read image: %s is too small (%dx%d)", job.ImagePath, width, height)
	}

	background, err := parseColor(c.video.BackgroundColor)
	if err != nil {
		return Result{}, fmt.Errorf("background color: %w", err)
	}
	style, err := c.newCaptionStyle(width, height)
	if err != nil {
		return Result{}, err
	}

	audioDuration, err := c.probeDuration(ctx, job.AudioPath)
	if err != nil {
		return Result{}, fmt.Errorf("probe audio: %w", err)
	}
	if audioDuration < c.video.Duration {
		return Result{}, fmt.Errorf("%w: %s is %.2fs, need %.2fs", ErrAudioTooShort, job.AudioPath, audioDuration, c.video.Duration)
	}

	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}
	outputPath, err := c.nextOutputPath()
	if err != nil {
		return Result{}, err
	}

	// Isolated temp dir per render; ffmpeg runs inside it so the
	// subtitle filter only sees a plain relative file name.
	tempDir, err := os.MkdirTemp("", "quotereel-*")
	if err != nil {
		return Result{}, fmt.Errorf("create temp dir: %w", err)
	}
	defer c.cleanupTempDir(ctx, tempDir)

	captionFile := "caption-" + c.newID() + ".ass"
	if err := writeASS(filepath.Join(tempDir, captionFile), style, job.Caption); err != nil {
		return Result{}, fmt.Errorf("write caption: %w", err)
	}

	spec := renderSpec{
		CaptionFile: captionFile,
		Width:       width,
		Height:      height,
		Background:  background,
	}
	if spec.ImagePath, err = filepath.Abs(job.ImagePath); err != nil {
		return Result{}, fmt.Errorf("resolve image path: %w", err)
	}
	if spec.AudioPath, err = filepath.Abs(job.AudioPath); err != nil {
		return Result{}, fmt.Errorf("resolve audio path: %w", err)
	}
	if spec.OutputPath, err = filepath.Abs(outputPath); err != nil {
		return Result{}, fmt.Errorf("resolve output path: %w", err)
	}

	args := c.buildArgs(spec)
	c.logger.Info(ctx, "Rendering %dx%d clip (%.0fs, %s, %d fps): %s", width, height, c.video.Duration, c.ffmpeg.Encoder, c.ffmpeg.FrameRate, outputPath)
	c.logger.Debug(ctx, "FFmpeg command in dir %s: %s %s", tempDir, c.ffmpeg.BinaryPath, strings.Join(args, " "))

	if _, err := c.executor.ExecuteInDir(ctx, tempDir, c.ffmpeg.BinaryPath, args...); err != nil {
		return Result{}, fmt.Errorf("ffmpeg render: %w", err)
	}

	duration, err := c.probeDuration(ctx, outputPath)
	if err != nil {
		return Result{}, fmt.Errorf("probe output: %w", err)
	}

	c.logger.Info(ctx, "Rendered %s (%.2fs) in %s", outputPath, duration, time.Since(startTime).Round(time.Millisecond))
	return Result{Path: outputPath, Duration: duration}, nil
}

// imageSize reads only the image header
func imageSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}

// cleanupTempDir removes the render scratch directory, logs warning if fails
func (c *implComposer) cleanupTempDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		c.logger.Warn(ctx, "Failed to cleanup temp dir %s: %v", dir, err)
	} else {
		c.logger.Debug(ctx, "Cleaned up temp dir: %s", dir)
	}
}
