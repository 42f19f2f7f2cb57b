package composer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const maxNameAttempts = 20

// nextOutputPath draws video_<1000..9999>.mp4 names until one is free
func (c *implComposer) nextOutputPath() (string, error) {
	for i := 0; i < maxNameAttempts; i++ {
		name := fmt.Sprintf("video_%d.mp4", 1000+c.intn(9000))
		path := filepath.Join(c.outputDir, name)

		_, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", path, err)
		}
	}
	return "", fmt.Errorf("%w in %s after %d attempts", ErrNoOutputName, c.outputDir, maxNameAttempts)
}
