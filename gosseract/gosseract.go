// Package gosseract implements OCR text recognition using
// github.com/otiai10/gosseract (Tesseract bindings).
package gosseract

import (
	"bytes"
	"context"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"

	"github.com/fwojciec/rezept"
)

// Recognizer runs Tesseract over page images. The zero value is not
// usable; use NewRecognizer.
type Recognizer struct {
	// Languages passed to Tesseract, in priority order.
	Languages []string

	// PageSegMode controls Tesseract layout analysis. The default
	// treats the page as a single uniform block of text.
	PageSegMode gosseract.PageSegMode
}

var _ rezept.TextRecognizer = (*Recognizer)(nil)

// NewRecognizer returns a Recognizer tuned for German recipe pages.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		Languages:   []string{"deu", "eng"},
		PageSegMode: gosseract.PSM_SINGLE_BLOCK,
	}
}

// Recognize implements rezept.TextRecognizer. A fresh Tesseract client is
// created per call so Recognize is safe for concurrent use.
func (r *Recognizer) Recognize(ctx context.Context, img image.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", rezept.Errorf(rezept.EINTERNAL, "encode page image: %s", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(r.Languages...); err != nil {
		return "", rezept.Errorf(rezept.EINTERNAL, "set ocr language: %s", err)
	}
	if err := client.SetPageSegMode(r.PageSegMode); err != nil {
		return "", rezept.Errorf(rezept.EINTERNAL, "set page segmentation mode: %s", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", rezept.Errorf(rezept.EINTERNAL, "set ocr image: %s", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", rezept.Errorf(rezept.EINTERNAL, "ocr: %s", err)
	}
	return rezept.Normalize(text), nil
}
