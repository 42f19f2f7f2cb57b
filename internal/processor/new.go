package processor

import (
	"github.com/nguyentantai21042004/quote-reel/internal/composer"
	"github.com/nguyentantai21042004/quote-reel/internal/generator"
	"github.com/nguyentantai21042004/quote-reel/internal/logger"
	"github.com/nguyentantai21042004/quote-reel/internal/media"
	"github.com/nguyentantai21042004/quote-reel/internal/publisher"
)

type implProcessor struct {
	generator generator.Generator
	selector  media.Selector
	composer  composer.Composer
	publisher publisher.Publisher
	fallback  string
	logger    logger.Logger
}

// Deps groups the collaborators of a Processor. Publisher may be nil.
type Deps struct {
	Generator generator.Generator
	Selector  media.Selector
	Composer  composer.Composer
	Publisher publisher.Publisher
	Logger    logger.Logger
}

// New creates a new Processor instance using fallback whenever generation fails
func New(deps Deps, fallback string) Processor {
	return &implProcessor{
		generator: deps.Generator,
		selector:  deps.Selector,
		composer:  deps.Composer,
		publisher: deps.Publisher,
		fallback:  fallback,
		logger:    deps.Logger,
	}
}
