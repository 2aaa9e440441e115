package mock

import (
	"io"

	"github.com/fwojciec/rezept"
)

var _ rezept.ImageStore = (*ImageStore)(nil)

// ImageStore is a mock implementation of rezept.ImageStore.
type ImageStore struct {
	SaveImageFn func(name string, r io.Reader) (string, error)
}

func (s *ImageStore) SaveImage(name string, r io.Reader) (string, error) {
	return s.SaveImageFn(name, r)
}
