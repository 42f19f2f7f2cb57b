package publisher

import "context"

// Publisher copies a rendered clip somewhere outside the output directory
type Publisher interface {
	// Publish uploads the file at path and returns its remote location
	Publish(ctx context.Context, path string) (string, error)
}
