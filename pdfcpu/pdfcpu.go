// Package pdfcpu implements PDF validation and embedded image extraction
// using github.com/pdfcpu/pdfcpu.
package pdfcpu

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/fwojciec/rezept"
)

// Processor validates PDF files and pulls out their embedded images.
type Processor struct{}

var _ rezept.Validator = (*Processor)(nil)
var _ rezept.ImageExtractor = (*Processor)(nil)

// NewProcessor returns a new Processor.
func NewProcessor() *Processor {
	return &Processor{}
}

// Validate implements rezept.Validator.
func (p *Processor) Validate(ctx context.Context, path string) error {
	_, err := readContext(path)
	return err
}

// ExtractImages implements rezept.ImageExtractor. Images are stored in
// page order under names derived from their page number and object name.
func (p *Processor) ExtractImages(ctx context.Context, path string, store rezept.ImageStore) ([]string, error) {
	pctx, err := readContext(path)
	if err != nil {
		return nil, err
	}

	var refs []string
	for pageNr := 1; pageNr <= pctx.PageCount; pageNr++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		images, err := pdfcpu.ExtractPageImages(pctx, pageNr, false)
		if err != nil {
			continue // a broken page should not sink the others
		}
		objNrs := make([]int, 0, len(images))
		for objNr := range images {
			objNrs = append(objNrs, objNr)
		}
		sort.Ints(objNrs)
		for _, objNr := range objNrs {
			img := images[objNr]
			name := fmt.Sprintf("page%d_%s.%s", pageNr, img.Name, img.FileType)
			ref, err := store.SaveImage(name, img.Reader)
			if err != nil {
				return nil, err
			}
			refs = append(refs, ref)
		}
	}
	return refs, nil
}

func readContext(path string) (*model.Context, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, rezept.Errorf(rezept.EUNREADABLE, "open pdf %s: %s", path, err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	pctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, rezept.Errorf(rezept.EUNREADABLE, "validate pdf %s: %s", path, err)
	}
	return pctx, nil
}
