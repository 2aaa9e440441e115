package rezept

import (
	"context"
	"time"
)

// Recipe represents a stored recipe extracted from a PDF.
type Recipe struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Ingredients  string    `json:"ingredients"`  // one ingredient per line
	Instructions string    `json:"instructions"` // one step per line
	Servings     string    `json:"servings,omitempty"`
	PrepTime     int       `json:"prepTime,omitempty"` // minutes
	CookTime     int       `json:"cookTime,omitempty"` // minutes
	Nutrition    Nutrition `json:"nutrition,omitzero"`
	PDFPath      string    `json:"pdfPath,omitempty"`
	PDFHash      string    `json:"pdfHash,omitempty"` // xxhash of the source PDF
	ImagePath    string    `json:"imagePath,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Validate returns an error if the recipe contains invalid fields. Only
// the title is mandatory: degraded extractions persist with empty
// ingredient and instruction blocks.
func (r *Recipe) Validate() error {
	if r.Title == "" {
		return Errorf(EINVALID, "recipe title required")
	}
	return nil
}

// RecipeService represents a service for managing stored recipes.
type RecipeService interface {
	// CreateRecipe creates a new recipe.
	CreateRecipe(ctx context.Context, recipe *Recipe) error

	// FindRecipeByID retrieves a recipe by ID.
	// Returns ENOTFOUND if recipe does not exist.
	FindRecipeByID(ctx context.Context, id string) (*Recipe, error)

	// FindRecipes retrieves recipes matching the filter.
	FindRecipes(ctx context.Context, filter RecipeFilter) ([]*Recipe, error)

	// UpdateRecipe updates an existing recipe.
	// Returns ENOTFOUND if recipe does not exist.
	UpdateRecipe(ctx context.Context, id string, upd RecipeUpdate) (*Recipe, error)

	// DeleteRecipe permanently removes a recipe.
	// Returns ENOTFOUND if recipe does not exist.
	DeleteRecipe(ctx context.Context, id string) error
}

// RecipeFilter represents a filter for FindRecipes.
type RecipeFilter struct {
	ID      *string `json:"id"`
	Title   *string `json:"title"` // substring match
	PDFHash *string `json:"pdfHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecipeUpdate represents fields that can be updated on a recipe.
type RecipeUpdate struct {
	Title        *string `json:"title"`
	Ingredients  *string `json:"ingredients"`
	Instructions *string `json:"instructions"`
	Servings     *string `json:"servings"`
	ImagePath    *string `json:"imagePath"`
}
