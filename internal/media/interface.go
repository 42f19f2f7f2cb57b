package media

import (
	"context"
	"errors"
)

// ErrNoMedia is returned when a directory holds no file with an allowed extension
var ErrNoMedia = errors.New("no matching media found")

// Selection is one randomly chosen image and audio file
type Selection struct {
	ImagePath string
	AudioPath string
}

// Selector picks the media a clip is built from
type Selector interface {
	Select(ctx context.Context) (Selection, error)
}
