package config

import (
	"fmt"
	"strings"
	"time"
)

// Generator providers
const (
	ProviderGemini    = "gemini"
	ProviderGeminiSDK = "gemini-sdk"
	ProviderCohere    = "cohere"
)

type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Media     MediaConfig     `yaml:"media"`
	Video     VideoConfig     `yaml:"video"`
	FFmpeg    FFmpegConfig    `yaml:"ffmpeg"`
	Paths     PathsConfig     `yaml:"paths"`
	Storage   StorageConfig   `yaml:"storage"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type GeneratorConfig struct {
	Provider       string        `yaml:"provider"`
	Model          string        `yaml:"model"`
	BaseURL        string        `yaml:"base_url"`
	APIKey         string        `yaml:"api_key"`
	Timeout        time.Duration `yaml:"timeout"`
	PromptTemplate string        `yaml:"prompt_template"`
	Fallback       string        `yaml:"fallback"`
}

type MediaConfig struct {
	ImagesDir       string   `yaml:"images_dir"`
	SoundsDir       string   `yaml:"sounds_dir"`
	ImageExtensions []string `yaml:"image_extensions"`
	AudioExtensions []string `yaml:"audio_extensions"`
}

// VideoConfig holds the styling constants of a rendered clip
type VideoConfig struct {
	Duration           float64 `yaml:"duration"`
	FontName           string  `yaml:"font_name"`
	FontSize           int     `yaml:"font_size"`
	FontColor          string  `yaml:"font_color"`
	StrokeColor        string  `yaml:"stroke_color"`
	StrokeWidth        int     `yaml:"stroke_width"`
	TextVerticalOffset float64 `yaml:"text_vertical_offset"`
	TextWidthRatio     float64 `yaml:"text_width_ratio"`
	BackgroundColor    string  `yaml:"background_color"`
	FadeDuration       float64 `yaml:"fade_duration"`
	CaptionFade        float64 `yaml:"caption_fade"`
}

type FFmpegConfig struct {
	BinaryPath  string `yaml:"binary_path"`
	ProbePath   string `yaml:"probe_path"`
	Encoder     string `yaml:"encoder"`
	AudioCodec  string `yaml:"audio_codec"`
	FrameRate   int    `yaml:"frame_rate"`
	Threads     int    `yaml:"threads"`
	Preset      string `yaml:"preset"`
	CRF         int    `yaml:"crf"`
	PixelFormat string `yaml:"pixel_format"`
}

type PathsConfig struct {
	Output string `yaml:"output"`
}

type StorageConfig struct {
	S3 S3Config `yaml:"s3"`
}

// S3Config enables uploading rendered clips when Bucket is set
type S3Config struct {
	Bucket       string `yaml:"bucket"`
	Region       string `yaml:"region"`
	Profile      string `yaml:"profile"`
	Prefix       string `yaml:"prefix"`
	UsePathStyle bool   `yaml:"use_path_style"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) Validate() error {
	if c.Media.ImagesDir == "" {
		return fmt.Errorf("media.images_dir is required")
	}
	if c.Media.SoundsDir == "" {
		return fmt.Errorf("media.sounds_dir is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Video.Duration <= 0 {
		return fmt.Errorf("video.duration must be positive")
	}
	if c.Video.FadeDuration <= 0 || 2*c.Video.FadeDuration > c.Video.Duration {
		return fmt.Errorf("video.fade_duration must be positive and at most half of video.duration")
	}
	if c.Video.CaptionFade < 0 {
		return fmt.Errorf("video.caption_fade must not be negative")
	}
	if c.Video.TextVerticalOffset < 0 || c.Video.TextVerticalOffset >= 1 {
		return fmt.Errorf("video.text_vertical_offset must be in [0, 1)")
	}

	c.Generator.Provider = strings.ToLower(strings.TrimSpace(c.Generator.Provider))
	switch c.Generator.Provider {
	case "":
		c.Generator.Provider = ProviderGemini
	case ProviderGemini, ProviderGeminiSDK, ProviderCohere:
	default:
		return fmt.Errorf("generator.provider %q is not supported", c.Generator.Provider)
	}

	if c.Generator.Model == "" {
		switch c.Generator.Provider {
		case ProviderCohere:
			c.Generator.Model = "command-r"
		default:
			c.Generator.Model = "gemini-1.5-flash-latest"
		}
	}
	if c.Generator.Timeout == 0 {
		c.Generator.Timeout = 30 * time.Second
	}
	if c.Generator.PromptTemplate == "" {
		c.Generator.PromptTemplate = defaultPromptTemplate
	}
	if c.Generator.Fallback == "" {
		c.Generator.Fallback = DefaultFallbackCaption
	}

	if len(c.Media.ImageExtensions) == 0 {
		c.Media.ImageExtensions = []string{".png", ".jpg", ".jpeg"}
	}
	if len(c.Media.AudioExtensions) == 0 {
		c.Media.AudioExtensions = []string{".mp3", ".wav"}
	}

	if c.Video.FontName == "" {
		c.Video.FontName = "Impact"
	}
	if c.Video.FontSize == 0 {
		c.Video.FontSize = 100
	}
	if c.Video.FontColor == "" {
		c.Video.FontColor = "white"
	}
	if c.Video.StrokeColor == "" {
		c.Video.StrokeColor = "black"
	}
	if c.Video.TextWidthRatio <= 0 || c.Video.TextWidthRatio > 1 {
		c.Video.TextWidthRatio = 0.8
	}
	if c.Video.BackgroundColor == "" {
		c.Video.BackgroundColor = "black"
	}

	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.ProbePath == "" {
		c.FFmpeg.ProbePath = "ffprobe"
	}
	if c.FFmpeg.Encoder == "" {
		c.FFmpeg.Encoder = "libx264"
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "aac"
	}
	if c.FFmpeg.FrameRate == 0 {
		c.FFmpeg.FrameRate = 24
	}
	if c.FFmpeg.Threads == 0 {
		c.FFmpeg.Threads = 4
	}
	if c.FFmpeg.Preset == "" {
		c.FFmpeg.Preset = "fast"
	}
	if c.FFmpeg.CRF == 0 {
		c.FFmpeg.CRF = 18
	}
	if c.FFmpeg.PixelFormat == "" {
		c.FFmpeg.PixelFormat = "yuv420p"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	return nil
}
