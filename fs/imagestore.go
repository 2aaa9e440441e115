// Package fs provides filesystem-backed storage implementations.
package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/fwojciec/rezept"
)

// Ensure ImageStore implements rezept.ImageStore at compile time.
var _ rezept.ImageStore = (*ImageStore)(nil)

// ImageStore implements rezept.ImageStore by writing images to a directory.
// Each image gets a random prefix so repeated extractions never collide.
type ImageStore struct {
	baseDir string
}

// NewImageStore creates a new ImageStore rooted at baseDir.
// The directory is created on first save.
func NewImageStore(baseDir string) *ImageStore {
	return &ImageStore{baseDir: baseDir}
}

func (s *ImageStore) SaveImage(name string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", err
	}

	// Strip any path components from the caller-provided name.
	ref := uuid.New().String() + "_" + filepath.Base(name)

	f, err := os.Create(filepath.Join(s.baseDir, ref))
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	return ref, nil
}

// Path returns the absolute location of a previously stored reference.
func (s *ImageStore) Path(ref string) string {
	return filepath.Join(s.baseDir, ref)
}
