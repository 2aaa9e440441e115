package rezept

import "io"

// ImageStore persists extracted recipe images.
type ImageStore interface {
	// SaveImage writes the image under a unique name derived from name
	// and returns a reference that can be stored with the recipe.
	SaveImage(name string, r io.Reader) (string, error)
}
