package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/rezept"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ rezept.RecipeService = (*RecipeService)(nil)

// RecipeService implements rezept.RecipeService using SQLite.
type RecipeService struct {
	db *DB
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(db *DB) *RecipeService {
	return &RecipeService{db: db}
}

const recipeColumns = `id, title, ingredients, instructions, servings, prep_time, cook_time,
	calories, fat, carbs, protein, pdf_path, pdf_hash, image_path, created_at, updated_at`

// CreateRecipe creates a new recipe.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *rezept.Recipe) error {
	if err := recipe.Validate(); err != nil {
		return err
	}

	recipe.ID = uuid.New().String()
	recipe.CreatedAt = time.Now().UTC()
	recipe.UpdatedAt = recipe.CreatedAt

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO recipes (`+recipeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, recipe.ID, recipe.Title, recipe.Ingredients, recipe.Instructions, recipe.Servings,
		recipe.PrepTime, recipe.CookTime,
		recipe.Nutrition.Calories, recipe.Nutrition.Fat, recipe.Nutrition.Carbs, recipe.Nutrition.Protein,
		recipe.PDFPath, recipe.PDFHash, recipe.ImagePath,
		recipe.CreatedAt.Format(time.RFC3339), recipe.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindRecipeByID retrieves a recipe by ID.
func (s *RecipeService) FindRecipeByID(ctx context.Context, id string) (*rezept.Recipe, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+recipeColumns+`
		FROM recipes
		WHERE id = ?
	`, id)

	recipe, err := scanRecipe(row.Scan)
	if err == sql.ErrNoRows {
		return nil, rezept.Errorf(rezept.ENOTFOUND, "recipe not found")
	}
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// FindRecipes retrieves recipes matching the filter.
func (s *RecipeService) FindRecipes(ctx context.Context, filter rezept.RecipeFilter) ([]*rezept.Recipe, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recipeColumns + " FROM recipes WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Title != nil {
		query.WriteString(" AND title LIKE ?")
		args = append(args, "%"+*filter.Title+"%")
	}
	if filter.PDFHash != nil {
		query.WriteString(" AND pdf_hash = ?")
		args = append(args, *filter.PDFHash)
	}

	query.WriteString(" ORDER BY created_at DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []*rezept.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows.Scan)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	return recipes, rows.Err()
}

// UpdateRecipe updates an existing recipe.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id string, upd rezept.RecipeUpdate) (*rezept.Recipe, error) {
	recipe, err := s.FindRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		recipe.Title = *upd.Title
	}
	if upd.Ingredients != nil {
		recipe.Ingredients = *upd.Ingredients
	}
	if upd.Instructions != nil {
		recipe.Instructions = *upd.Instructions
	}
	if upd.Servings != nil {
		recipe.Servings = *upd.Servings
	}
	if upd.ImagePath != nil {
		recipe.ImagePath = *upd.ImagePath
	}

	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	recipe.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE recipes
		SET title = ?, ingredients = ?, instructions = ?, servings = ?, image_path = ?, updated_at = ?
		WHERE id = ?
	`, recipe.Title, recipe.Ingredients, recipe.Instructions, recipe.Servings, recipe.ImagePath,
		recipe.UpdatedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// DeleteRecipe permanently removes a recipe.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM recipes WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return rezept.Errorf(rezept.ENOTFOUND, "recipe not found")
	}
	return nil
}

// scanRecipe reads one recipe row using the given scan function.
func scanRecipe(scan func(dest ...any) error) (*rezept.Recipe, error) {
	var recipe rezept.Recipe
	var createdAt, updatedAt string

	err := scan(&recipe.ID, &recipe.Title, &recipe.Ingredients, &recipe.Instructions, &recipe.Servings,
		&recipe.PrepTime, &recipe.CookTime,
		&recipe.Nutrition.Calories, &recipe.Nutrition.Fat, &recipe.Nutrition.Carbs, &recipe.Nutrition.Protein,
		&recipe.PDFPath, &recipe.PDFHash, &recipe.ImagePath, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if recipe.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if recipe.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &recipe, nil
}
