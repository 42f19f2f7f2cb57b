package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/quote-reel/internal/config"
	"github.com/nguyentantai21042004/quote-reel/internal/logger"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func newTestSelector(imagesDir, soundsDir string) *implSelector {
	return New(config.MediaConfig{
		ImagesDir:       imagesDir,
		SoundsDir:       soundsDir,
		ImageExtensions: []string{".png", ".jpg", ".jpeg"},
		AudioExtensions: []string{".mp3", ".wav"},
	}, logger.NewNop()).(*implSelector)
}

func TestSelectReturnsAllowedFiles(t *testing.T) {
	images, sounds := t.TempDir(), t.TempDir()
	touch(t, images, "a.png", "b.JPG", "c.jpeg", "notes.txt", ".hidden.png", "noext")
	touch(t, sounds, "song.MP3", "loop.wav", "cover.png")
	if err := os.Mkdir(filepath.Join(images, "folder.png"), 0755); err != nil {
		t.Fatal(err)
	}

	s := newTestSelector(images, sounds)
	allowedImages := map[string]bool{"a.png": true, "b.JPG": true, "c.jpeg": true}
	allowedSounds := map[string]bool{"song.MP3": true, "loop.wav": true}

	for i := 0; i < 50; i++ {
		sel, err := s.Select(context.Background())
		if err != nil {
			t.Fatalf("Select() error = %v", err)
		}
		if filepath.Dir(sel.ImagePath) != images || !allowedImages[filepath.Base(sel.ImagePath)] {
			t.Fatalf("ImagePath = %q is not an allowed image", sel.ImagePath)
		}
		if filepath.Dir(sel.AudioPath) != sounds || !allowedSounds[filepath.Base(sel.AudioPath)] {
			t.Fatalf("AudioPath = %q is not an allowed sound", sel.AudioPath)
		}
	}
}

func TestSelectUsesRandomIndex(t *testing.T) {
	images, sounds := t.TempDir(), t.TempDir()
	touch(t, images, "a.png", "b.png", "c.png")
	touch(t, sounds, "x.mp3", "y.mp3")

	s := newTestSelector(images, sounds)
	var bounds []int
	s.intn = func(n int) int {
		bounds = append(bounds, n)
		return n - 1
	}

	sel, err := s.Select(context.Background())
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if len(bounds) != 2 || bounds[0] != 3 || bounds[1] != 2 {
		t.Errorf("random bounds = %v, want [3 2]", bounds)
	}
	// os.ReadDir sorts by name
	if filepath.Base(sel.ImagePath) != "c.png" || filepath.Base(sel.AudioPath) != "y.mp3" {
		t.Errorf("Select() = %+v, want last entries", sel)
	}
}

func TestSelectEmptyDirectories(t *testing.T) {
	full := t.TempDir()
	touch(t, full, "a.png", "b.mp3")
	empty := t.TempDir()
	touch(t, empty, "readme.md")

	tests := []struct {
		name    string
		images  string
		sounds  string
		wantMsg string
	}{
		{"no images", empty, full, "no images found"},
		{"no sounds", full, empty, "no songs found"},
		{"both empty reports images first", empty, empty, "no images found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestSelector(tt.images, tt.sounds).Select(context.Background())
			if !errors.Is(err, ErrNoMedia) {
				t.Fatalf("Select() error = %v, want ErrNoMedia", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Select() error = %v, want message containing %q", err, tt.wantMsg)
			}
		})
	}
}

func TestSelectMissingDirectory(t *testing.T) {
	_, err := newTestSelector(filepath.Join(t.TempDir(), "missing"), t.TempDir()).Select(context.Background())
	if err == nil {
		t.Fatal("Select() should fail for a missing directory")
	}
	if errors.Is(err, ErrNoMedia) {
		t.Errorf("missing directory should surface the filesystem error, got %v", err)
	}
}

func TestHasExtension(t *testing.T) {
	tests := []struct {
		name string
		exts []string
		want bool
	}{
		{"photo.PNG", []string{".png"}, true},
		{"photo.png", []string{"PNG"}, true},
		{"photo.png.txt", []string{".png"}, false},
		{"png", []string{".png"}, false},
		{"track.wav", []string{".mp3"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasExtension(tt.name, tt.exts); got != tt.want {
				t.Errorf("hasExtension(%q, %v) = %v, want %v", tt.name, tt.exts, got, tt.want)
			}
		})
	}
}
