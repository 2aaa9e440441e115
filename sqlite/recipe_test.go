package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/rezept"
	"github.com/fwojciec/rezept/sqlite"
)

func testRecipe() *rezept.Recipe {
	return &rezept.Recipe{
		Title:        "Apfelkuchen",
		Ingredients:  "200 g Mehl\n100 g Zucker\n2 Eier",
		Instructions: "Mehl und Zucker mischen\nBei 180 Grad backen",
		Servings:     "4",
		PrepTime:     20,
		CookTime:     45,
		Nutrition:    rezept.Nutrition{Calories: 450, Fat: 12, Carbs: 55, Protein: 18},
		PDFPath:      "/rezepte/apfelkuchen.pdf",
		PDFHash:      "deadbeef01234567",
		ImagePath:    "abc_apfelkuchen.png",
	}
}

func TestRecipeService_CreateRecipe(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and timestamps", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecipeService(setupTestDB(t))
		recipe := testRecipe()

		err := s.CreateRecipe(context.Background(), recipe)
		require.NoError(t, err)

		assert.NotEmpty(t, recipe.ID)
		assert.False(t, recipe.CreatedAt.IsZero())
		assert.Equal(t, recipe.CreatedAt, recipe.UpdatedAt)
	})

	t.Run("round-trips all fields", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecipeService(setupTestDB(t))
		recipe := testRecipe()
		require.NoError(t, s.CreateRecipe(context.Background(), recipe))

		got, err := s.FindRecipeByID(context.Background(), recipe.ID)
		require.NoError(t, err)

		assert.Equal(t, recipe.Title, got.Title)
		assert.Equal(t, recipe.Ingredients, got.Ingredients)
		assert.Equal(t, recipe.Instructions, got.Instructions)
		assert.Equal(t, recipe.Servings, got.Servings)
		assert.Equal(t, recipe.PrepTime, got.PrepTime)
		assert.Equal(t, recipe.CookTime, got.CookTime)
		assert.Equal(t, recipe.Nutrition, got.Nutrition)
		assert.Equal(t, recipe.PDFHash, got.PDFHash)
		assert.Equal(t, recipe.ImagePath, got.ImagePath)
	})

	t.Run("rejects recipe without title", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecipeService(setupTestDB(t))
		err := s.CreateRecipe(context.Background(), &rezept.Recipe{Ingredients: "200 g Mehl"})

		assert.Equal(t, rezept.EINVALID, rezept.ErrorCode(err))
	})

	t.Run("accepts degraded recipe with only a title", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecipeService(setupTestDB(t))
		recipe := &rezept.Recipe{Title: "zitronen kuchen"}
		require.NoError(t, s.CreateRecipe(context.Background(), recipe))

		got, err := s.FindRecipeByID(context.Background(), recipe.ID)
		require.NoError(t, err)
		assert.Equal(t, "zitronen kuchen", got.Title)
		assert.Empty(t, got.Ingredients)
	})
}

func TestRecipeService_FindRecipeByID_NotFound(t *testing.T) {
	t.Parallel()

	s := sqlite.NewRecipeService(setupTestDB(t))
	_, err := s.FindRecipeByID(context.Background(), "missing")

	assert.Equal(t, rezept.ENOTFOUND, rezept.ErrorCode(err))
}

func TestRecipeService_FindRecipes(t *testing.T) {
	t.Parallel()

	t.Run("filters by pdf hash", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecipeService(setupTestDB(t))
		ctx := context.Background()

		first := testRecipe()
		require.NoError(t, s.CreateRecipe(ctx, first))
		second := testRecipe()
		second.Title = "Birnenkuchen"
		second.PDFHash = "feedface89abcdef"
		require.NoError(t, s.CreateRecipe(ctx, second))

		hash := first.PDFHash
		got, err := s.FindRecipes(ctx, rezept.RecipeFilter{PDFHash: &hash})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, first.ID, got[0].ID)
	})

	t.Run("filters by title substring", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecipeService(setupTestDB(t))
		ctx := context.Background()

		recipe := testRecipe()
		require.NoError(t, s.CreateRecipe(ctx, recipe))

		title := "pfelkuche"
		got, err := s.FindRecipes(ctx, rezept.RecipeFilter{Title: &title})
		require.NoError(t, err)
		require.Len(t, got, 1)

		title = "Linsensuppe"
		got, err = s.FindRecipes(ctx, rezept.RecipeFilter{Title: &title})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("applies limit", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecipeService(setupTestDB(t))
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			require.NoError(t, s.CreateRecipe(ctx, testRecipe()))
		}

		got, err := s.FindRecipes(ctx, rezept.RecipeFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}

func TestRecipeService_UpdateRecipe(t *testing.T) {
	t.Parallel()

	t.Run("updates selected fields", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecipeService(setupTestDB(t))
		ctx := context.Background()

		recipe := testRecipe()
		require.NoError(t, s.CreateRecipe(ctx, recipe))

		title := "Apfelkuchen nach Grossmutter"
		got, err := s.UpdateRecipe(ctx, recipe.ID, rezept.RecipeUpdate{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, title, got.Title)
		assert.Equal(t, recipe.Ingredients, got.Ingredients)

		reread, err := s.FindRecipeByID(ctx, recipe.ID)
		require.NoError(t, err)
		assert.Equal(t, title, reread.Title)
	})

	t.Run("returns ENOTFOUND for missing recipe", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecipeService(setupTestDB(t))
		title := "egal"
		_, err := s.UpdateRecipe(context.Background(), "missing", rezept.RecipeUpdate{Title: &title})

		assert.Equal(t, rezept.ENOTFOUND, rezept.ErrorCode(err))
	})
}

func TestRecipeService_DeleteRecipe(t *testing.T) {
	t.Parallel()

	t.Run("removes the recipe", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecipeService(setupTestDB(t))
		ctx := context.Background()

		recipe := testRecipe()
		require.NoError(t, s.CreateRecipe(ctx, recipe))
		require.NoError(t, s.DeleteRecipe(ctx, recipe.ID))

		_, err := s.FindRecipeByID(ctx, recipe.ID)
		assert.Equal(t, rezept.ENOTFOUND, rezept.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing recipe", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecipeService(setupTestDB(t))
		err := s.DeleteRecipe(context.Background(), "missing")

		assert.Equal(t, rezept.ENOTFOUND, rezept.ErrorCode(err))
	})
}
