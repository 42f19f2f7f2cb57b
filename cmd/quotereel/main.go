package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/quote-reel/internal/composer"
	"github.com/nguyentantai21042004/quote-reel/internal/config"
	"github.com/nguyentantai21042004/quote-reel/internal/console"
	"github.com/nguyentantai21042004/quote-reel/internal/generator"
	"github.com/nguyentantai21042004/quote-reel/internal/logger"
	"github.com/nguyentantai21042004/quote-reel/internal/media"
	"github.com/nguyentantai21042004/quote-reel/internal/processor"
	"github.com/nguyentantai21042004/quote-reel/internal/publisher"
	"github.com/nguyentantai21042004/quote-reel/pkg/executor"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	topicFlag := flag.String("topic", "", "topic to write the quote about (prompted when empty)")
	flag.Parse()

	cfg, usedDefaults, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithRunID(ctx, uuid.NewString())

	if usedDefaults {
		log.Info(ctx, "No config file at %s, using built-in defaults", *configPath)
	}
	log.Debug(ctx, "Images: %s, Sounds: %s, Output: %s", cfg.Media.ImagesDir, cfg.Media.SoundsDir, cfg.Paths.Output)

	// Initialize dependencies
	gen, err := generator.New(cfg.Generator, log)
	if err != nil {
		log.Error(ctx, "Failed to create text generator: %v", err)
		return 1
	}

	pub, err := publisher.New(ctx, cfg.Storage.S3, log)
	if err != nil {
		log.Warn(ctx, "Publishing disabled: %v", err)
		pub = nil
	}

	proc := processor.New(processor.Deps{
		Generator: gen,
		Selector:  media.New(cfg.Media, log),
		Composer:  composer.New(cfg, executor.New(), log),
		Publisher: pub,
		Logger:    log,
	}, cfg.Generator.Fallback)

	topic := *topicFlag
	if topic == "" {
		topic, err = console.ReadTopic(os.Stdin, os.Stdout)
		if err != nil {
			console.Failure(os.Stderr, "Failed to read prompt: %v", err)
			return 1
		}
	}

	res, err := proc.Process(ctx, topic)
	if res.UsedFallback {
		console.Info(os.Stdout, "Using fallback text")
	}
	if err != nil {
		if errors.Is(err, media.ErrNoMedia) {
			console.Failure(os.Stderr, "%v", err)
		} else {
			console.Failure(os.Stderr, "Video creation failed: %v", err)
		}
		return 1
	}

	console.Success(os.Stdout, "Success! Video saved to: %s", res.Video.Path)
	if res.Published != "" {
		console.Info(os.Stdout, "Uploaded to: %s", res.Published)
	}
	return 0
}

// loadConfig reads the config file, falling back to defaults when it does not exist
func loadConfig(path string) (*config.Config, bool, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		cfg := config.Default()
		cfg.ApplyEnv(os.Getenv)
		if err := cfg.Validate(); err != nil {
			return nil, false, err
		}
		return cfg, true, nil
	}

	cfg, err := config.Load(path)
	return cfg, false, err
}
