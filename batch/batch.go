// Package batch provides bulk import of recipe PDFs from a directory.
// It coordinates discovery, deduplication, extraction and storage.
package batch

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/fwojciec/rezept"
	"github.com/fwojciec/rezept/bloom"
)

// Deduplication filter sizing.
const (
	// expectedDocuments is the expected number of PDFs for Bloom filter sizing.
	expectedDocuments = 10000
	// falsePositiveRate is the acceptable false positive rate for deduplication.
	falsePositiveRate = 0.01
)

// Importer walks a directory of PDFs and imports every new recipe it finds.
type Importer struct {
	Extractor   rezept.RecipeExtractor
	Recipes     rezept.RecipeService
	Limiter     *rate.Limiter // optional, throttles extraction starts
	Concurrency int
}

// Result holds the outcome of an import operation.
type Result struct {
	Imported int
	Skipped  int
	Failed   int
}

// ProgressEvent reports progress during an import operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Reason    string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting import progress.
type ProgressFunc func(event ProgressEvent)

// importResult holds the outcome of processing a single PDF.
type importResult struct {
	position   int
	path       string
	hash       string
	extraction *rezept.Extraction
	err        error
}

// ImportDir imports all PDFs below dir. Files whose content hash is
// already in the database, or that repeat within the run, are skipped
// before any extraction work is spent on them.
// The progress callback, if provided, receives events as the import proceeds.
func (imp *Importer) ImportDir(ctx context.Context, dir string, progress ProgressFunc) (*Result, error) {
	paths, err := FindPDFs(dir)
	if err != nil {
		return nil, fmt.Errorf("discover pdfs: %w", err)
	}

	var result Result

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: len(paths),
		})
	}

	// Hash everything up front and drop duplicates before extraction.
	seen := bloom.NewFilter(expectedDocuments, falsePositiveRate)
	jobs := make([]importResult, 0, len(paths))
	for _, path := range paths {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		hash, err := HashFile(path)
		if err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:  ProgressFailed,
					Total: len(paths),
					Path:  path,
					Error: err,
				})
			}
			continue
		}

		reason, err := imp.duplicateReason(ctx, seen, hash)
		if err != nil {
			return nil, err
		}
		if reason != "" {
			result.Skipped++
			if progress != nil {
				progress(ProgressEvent{
					Type:   ProgressSkipped,
					Total:  len(paths),
					Path:   path,
					Reason: reason,
				})
			}
			continue
		}
		seen.Add(hash)

		jobs = append(jobs, importResult{position: len(jobs), path: path, hash: hash})
	}

	// Set up concurrency
	concurrency := imp.Concurrency
	if concurrency <= 0 {
		concurrency = 2
	}

	// Channel for collecting results
	resultCh := make(chan importResult, len(jobs))

	// Progress tracking
	var completed atomic.Int64
	total := len(paths)

	// Start workers
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, job := range jobs {
			job := job
			g.Go(func() error {
				resultCh <- imp.processPDF(gctx, job)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order
	results := make([]importResult, len(jobs))
	for res := range resultCh {
		completed.Add(1)
		results[res.position] = res

		if progress == nil {
			continue
		}
		if res.err != nil {
			progress(ProgressEvent{
				Type:      ProgressFailed,
				Completed: int(completed.Load()),
				Total:     total,
				Path:      res.path,
				Error:     res.err,
			})
		} else {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				Path:      res.path,
			})
		}
	}

	// Save recipes and accumulate stats
	for _, res := range results {
		if res.err != nil {
			result.Failed++
			continue
		}

		if err := imp.Recipes.CreateRecipe(ctx, RecipeFromExtraction(res.extraction, res.hash)); err != nil {
			result.Failed++
			continue
		}
		result.Imported++
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &result, nil
}

// duplicateReason reports why a hash should be skipped, or "" to proceed.
// The Bloom filter catches repeats within the run; the database catches
// recipes imported earlier.
func (imp *Importer) duplicateReason(ctx context.Context, seen *bloom.Filter, hash string) (string, error) {
	if seen.Test(hash) {
		return "duplicate within this import", nil
	}

	existing, err := imp.Recipes.FindRecipes(ctx, rezept.RecipeFilter{PDFHash: &hash, Limit: 1})
	if err != nil {
		return "", fmt.Errorf("check existing recipes: %w", err)
	}
	if len(existing) > 0 {
		return "already imported", nil
	}
	return "", nil
}

// processPDF extracts a single PDF.
func (imp *Importer) processPDF(ctx context.Context, job importResult) importResult {
	if imp.Limiter != nil {
		if err := imp.Limiter.Wait(ctx); err != nil {
			job.err = err
			return job
		}
	}

	e := imp.Extractor.ExtractRecipe(ctx, job.path)
	if e.Err != "" {
		job.err = rezept.Errorf(rezept.EUNREADABLE, "%s", e.Err)
		return job
	}

	// Degraded extractions import too: every readable upload yields a
	// recipe record, even a mostly empty one.
	job.extraction = e
	return job
}

// RecipeFromExtraction converts an extraction into a recipe record.
func RecipeFromExtraction(e *rezept.Extraction, hash string) *rezept.Recipe {
	recipe := &rezept.Recipe{
		Title:        e.Title,
		Ingredients:  e.Ingredients,
		Instructions: e.Instructions,
		Servings:     e.Servings,
		PrepTime:     e.PrepTime,
		CookTime:     e.CookTime,
		Nutrition:    e.Nutrition,
		PDFPath:      e.SourcePath,
		PDFHash:      hash,
	}
	if len(e.Images) > 0 {
		recipe.ImagePath = e.Images[0]
	}
	return recipe
}

// FindPDFs returns all PDF paths below dir in lexical order.
func FindPDFs(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".pdf") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// HashFile computes the xxhash of a file's content.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum64()), nil
}
