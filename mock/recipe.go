package mock

import (
	"context"

	"github.com/fwojciec/rezept"
)

var _ rezept.RecipeService = (*RecipeService)(nil)

// RecipeService is a mock implementation of rezept.RecipeService.
type RecipeService struct {
	CreateRecipeFn   func(ctx context.Context, recipe *rezept.Recipe) error
	FindRecipeByIDFn func(ctx context.Context, id string) (*rezept.Recipe, error)
	FindRecipesFn    func(ctx context.Context, filter rezept.RecipeFilter) ([]*rezept.Recipe, error)
	UpdateRecipeFn   func(ctx context.Context, id string, upd rezept.RecipeUpdate) (*rezept.Recipe, error)
	DeleteRecipeFn   func(ctx context.Context, id string) error
}

func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *rezept.Recipe) error {
	return s.CreateRecipeFn(ctx, recipe)
}

func (s *RecipeService) FindRecipeByID(ctx context.Context, id string) (*rezept.Recipe, error) {
	return s.FindRecipeByIDFn(ctx, id)
}

func (s *RecipeService) FindRecipes(ctx context.Context, filter rezept.RecipeFilter) ([]*rezept.Recipe, error) {
	return s.FindRecipesFn(ctx, filter)
}

func (s *RecipeService) UpdateRecipe(ctx context.Context, id string, upd rezept.RecipeUpdate) (*rezept.Recipe, error) {
	return s.UpdateRecipeFn(ctx, id, upd)
}

func (s *RecipeService) DeleteRecipe(ctx context.Context, id string) error {
	return s.DeleteRecipeFn(ctx, id)
}
