package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Select lists both directories and picks one file from each uniformly at random.
// The images directory is checked first so an empty one is reported before sounds.
func (s *implSelector) Select(ctx context.Context) (Selection, error) {
	images, err := listMatching(s.cfg.ImagesDir, s.cfg.ImageExtensions)
	if err != nil {
		return Selection{}, fmt.Errorf("list images: %w", err)
	}
	if len(images) == 0 {
		return Selection{}, fmt.Errorf("%w: no images found in %s", ErrNoMedia, s.cfg.ImagesDir)
	}

	sounds, err := listMatching(s.cfg.SoundsDir, s.cfg.AudioExtensions)
	if err != nil {
		return Selection{}, fmt.Errorf("list sounds: %w", err)
	}
	if len(sounds) == 0 {
		return Selection{}, fmt.Errorf("%w: no songs found in %s", ErrNoMedia, s.cfg.SoundsDir)
	}

	s.logger.Debug(ctx, "Found %d images and %d sounds", len(images), len(sounds))

	return Selection{
		ImagePath: images[s.intn(len(images))],
		AudioPath: sounds[s.intn(len(sounds))],
	}, nil
}

// listMatching returns the regular, non-hidden files in dir whose extension is allowed.
// Extensions compare case-insensitively.
func listMatching(dir string, extensions []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if hasExtension(e.Name(), extensions) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	return files, nil
}

func hasExtension(name string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	for _, allowed := range extensions {
		allowed = strings.ToLower(allowed)
		if !strings.HasPrefix(allowed, ".") {
			allowed = "." + allowed
		}
		if ext == allowed {
			return true
		}
	}
	return false
}
