package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFallbackCaption is used whenever text generation fails
const DefaultFallbackCaption = "Stay motivated and keep pushing forward!"

const defaultPromptTemplate = "Generate a short 10-15 word quote about: %s"

// Environment variables holding provider secrets
const (
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvCohereAPIKey = "COHERE_API_KEY"
)

// Default returns the configuration used when no config file is present
func Default() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Provider: ProviderGemini,
		},
		Media: MediaConfig{
			ImagesDir: "./images",
			SoundsDir: "./sounds",
		},
		Video: VideoConfig{
			Duration:           15,
			StrokeWidth:        2,
			TextVerticalOffset: 0.6,
			FadeDuration:       2,
			CaptionFade:        0.5,
		},
		Paths: PathsConfig{
			Output: "./video",
		},
	}
}

// Load reads a YAML config file on top of Default, applies environment
// secrets and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// ApplyEnv fills the provider API key from the environment.
// An environment value wins over the file so secrets can stay out of it.
func (c *Config) ApplyEnv(getenv func(string) string) {
	name := EnvGeminiAPIKey
	if strings.EqualFold(strings.TrimSpace(c.Generator.Provider), ProviderCohere) {
		name = EnvCohereAPIKey
	}
	if v := strings.TrimSpace(getenv(name)); v != "" {
		c.Generator.APIKey = v
	}
}
