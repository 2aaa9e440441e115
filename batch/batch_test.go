package batch_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/rezept"
	"github.com/fwojciec/rezept/batch"
	"github.com/fwojciec/rezept/mock"
)

// writePDF writes a fake PDF file and returns its path.
func writePDF(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// validExtractor returns an extractor that produces a valid extraction
// titled after the file's base name.
func validExtractor() *mock.RecipeExtractor {
	return &mock.RecipeExtractor{
		ExtractRecipeFn: func(ctx context.Context, path string) *rezept.Extraction {
			return &rezept.Extraction{
				SourcePath:   path,
				Title:        filepath.Base(path),
				Ingredients:  "200 g Mehl",
				Instructions: "Alles mischen",
			}
		},
	}
}

// collectingRecipes records created recipes and reports no existing ones.
func collectingRecipes(mu *sync.Mutex, created *[]*rezept.Recipe) *mock.RecipeService {
	return &mock.RecipeService{
		CreateRecipeFn: func(ctx context.Context, recipe *rezept.Recipe) error {
			mu.Lock()
			defer mu.Unlock()
			*created = append(*created, recipe)
			return nil
		},
		FindRecipesFn: func(ctx context.Context, filter rezept.RecipeFilter) ([]*rezept.Recipe, error) {
			return nil, nil
		},
	}
}

func TestImporter_ImportDir(t *testing.T) {
	t.Parallel()

	t.Run("imports every new pdf", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePDF(t, dir, "apfelkuchen.pdf", "pdf one")
		writePDF(t, dir, "linsensuppe.PDF", "pdf two")
		writePDF(t, dir, "notizen.txt", "not a pdf")

		var mu sync.Mutex
		var created []*rezept.Recipe
		imp := &batch.Importer{
			Extractor: validExtractor(),
			Recipes:   collectingRecipes(&mu, &created),
		}

		result, err := imp.ImportDir(context.Background(), dir, nil)
		require.NoError(t, err)

		assert.Equal(t, 2, result.Imported)
		assert.Zero(t, result.Skipped)
		assert.Zero(t, result.Failed)

		require.Len(t, created, 2)
		for _, recipe := range created {
			assert.NotEmpty(t, recipe.PDFHash)
			assert.NotEmpty(t, recipe.PDFPath)
		}
	})

	t.Run("skips duplicate content within the run", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePDF(t, dir, "original.pdf", "same bytes")
		writePDF(t, dir, "kopie.pdf", "same bytes")

		var mu sync.Mutex
		var created []*rezept.Recipe
		imp := &batch.Importer{
			Extractor: validExtractor(),
			Recipes:   collectingRecipes(&mu, &created),
		}

		result, err := imp.ImportDir(context.Background(), dir, nil)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Imported)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("skips recipes already in the database", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePDF(t, dir, "apfelkuchen.pdf", "pdf one")

		extractCalled := false
		imp := &batch.Importer{
			Extractor: &mock.RecipeExtractor{
				ExtractRecipeFn: func(ctx context.Context, path string) *rezept.Extraction {
					extractCalled = true
					return &rezept.Extraction{}
				},
			},
			Recipes: &mock.RecipeService{
				FindRecipesFn: func(ctx context.Context, filter rezept.RecipeFilter) ([]*rezept.Recipe, error) {
					require.NotNil(t, filter.PDFHash)
					return []*rezept.Recipe{{ID: "existing"}}, nil
				},
			},
		}

		result, err := imp.ImportDir(context.Background(), dir, nil)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Skipped)
		assert.Zero(t, result.Imported)
		assert.False(t, extractCalled, "known hashes should skip extraction entirely")
	})

	t.Run("imports degraded extractions", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePDF(t, dir, "zitronen_kuchen.pdf", "scanned, nothing recognized")

		var mu sync.Mutex
		var created []*rezept.Recipe
		imp := &batch.Importer{
			Extractor: &mock.RecipeExtractor{
				ExtractRecipeFn: func(ctx context.Context, path string) *rezept.Extraction {
					return &rezept.Extraction{SourcePath: path, Title: "zitronen kuchen"}
				},
			},
			Recipes: collectingRecipes(&mu, &created),
		}

		result, err := imp.ImportDir(context.Background(), dir, nil)
		require.NoError(t, err)

		// a readable upload always yields a record, even a mostly empty one
		assert.Equal(t, 1, result.Imported)
		assert.Zero(t, result.Failed)
		require.Len(t, created, 1)
		assert.Equal(t, "zitronen kuchen", created[0].Title)
		assert.Empty(t, created[0].Ingredients)
		assert.Empty(t, created[0].Instructions)
	})

	t.Run("counts unreadable documents as failed", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePDF(t, dir, "bericht.pdf", "not a recipe")

		var mu sync.Mutex
		var created []*rezept.Recipe
		recipes := collectingRecipes(&mu, &created)

		imp := &batch.Importer{
			Extractor: &mock.RecipeExtractor{
				ExtractRecipeFn: func(ctx context.Context, path string) *rezept.Extraction {
					return &rezept.Extraction{SourcePath: path, Err: "no recipe content found"}
				},
			},
			Recipes: recipes,
		}

		result, err := imp.ImportDir(context.Background(), dir, nil)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Failed)
		assert.Zero(t, result.Imported)
		assert.Empty(t, created)
	})

	t.Run("reports progress events", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePDF(t, dir, "a.pdf", "one")
		writePDF(t, dir, "b.pdf", "two")

		var mu sync.Mutex
		var created []*rezept.Recipe
		imp := &batch.Importer{
			Extractor: validExtractor(),
			Recipes:   collectingRecipes(&mu, &created),
		}

		var events []batch.ProgressEvent
		_, err := imp.ImportDir(context.Background(), dir, func(event batch.ProgressEvent) {
			events = append(events, event)
		})
		require.NoError(t, err)

		require.NotEmpty(t, events)
		assert.Equal(t, batch.ProgressStarted, events[0].Type)
		assert.Equal(t, 2, events[0].Total)
		assert.Equal(t, batch.ProgressFinished, events[len(events)-1].Type)

		completed := 0
		for _, event := range events {
			if event.Type == batch.ProgressCompleted {
				completed++
			}
		}
		assert.Equal(t, 2, completed)
	})

	t.Run("returns error when context is canceled", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writePDF(t, dir, "a.pdf", "one")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var mu sync.Mutex
		var created []*rezept.Recipe
		imp := &batch.Importer{
			Extractor: validExtractor(),
			Recipes:   collectingRecipes(&mu, &created),
		}

		_, err := imp.ImportDir(ctx, dir, nil)
		assert.Error(t, err)
	})
}

func TestFindPDFs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "unterordner"), 0755))
	writePDF(t, dir, "b.pdf", "x")
	writePDF(t, dir, "a.pdf", "x")
	writePDF(t, filepath.Join(dir, "unterordner"), "c.pdf", "x")
	writePDF(t, dir, "ignored.txt", "x")

	paths, err := batch.FindPDFs(dir)
	require.NoError(t, err)

	require.Len(t, paths, 3)
	assert.Equal(t, filepath.Join(dir, "a.pdf"), paths[0])
	assert.Equal(t, filepath.Join(dir, "b.pdf"), paths[1])
}

func TestHashFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := writePDF(t, dir, "a.pdf", "same content")
	second := writePDF(t, dir, "b.pdf", "same content")
	third := writePDF(t, dir, "c.pdf", "different content")

	h1, err := batch.HashFile(first)
	require.NoError(t, err)
	h2, err := batch.HashFile(second)
	require.NoError(t, err)
	h3, err := batch.HashFile(third)
	require.NoError(t, err)

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)

	_, err = batch.HashFile(filepath.Join(dir, "missing.pdf"))
	assert.Error(t, err)
}
