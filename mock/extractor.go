package mock

import (
	"context"

	"github.com/fwojciec/rezept"
)

var _ rezept.RecipeExtractor = (*RecipeExtractor)(nil)

type RecipeExtractor struct {
	ExtractRecipeFn func(ctx context.Context, path string) *rezept.Extraction
}

func (m *RecipeExtractor) ExtractRecipe(ctx context.Context, path string) *rezept.Extraction {
	return m.ExtractRecipeFn(ctx, path)
}
