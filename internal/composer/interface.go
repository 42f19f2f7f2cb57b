package composer

import (
	"context"
	"errors"
)

var (
	ErrEmptyCaption  = errors.New("caption is empty")
	ErrAudioTooShort = errors.New("audio is shorter than the clip")
	ErrNoOutputName  = errors.New("no free output file name")
)

// Job is everything a single render needs besides the styling configuration
type Job struct {
	ImagePath string
	AudioPath string
	Caption   string
}

// Result describes the rendered file
type Result struct {
	Path     string
	Duration float64
}

// Composer renders a captioned clip from an image and a soundtrack
type Composer interface {
	Compose(ctx context.Context, job Job) (Result, error)
}
