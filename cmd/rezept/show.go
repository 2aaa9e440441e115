package main

import (
	"fmt"

	"github.com/fwojciec/rezept"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	recipe, err := deps.Recipes.FindRecipeByID(deps.Ctx, c.ID)
	if err != nil {
		if rezept.ErrorCode(err) == rezept.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: recipe %q not found. Use 'rezept list' to see stored recipes.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", rezept.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "# %s\n\n", recipe.Title)
	if recipe.Servings != "" {
		fmt.Fprintf(deps.Stdout, "Servings: %s\n", recipe.Servings)
	}
	if recipe.PrepTime > 0 {
		fmt.Fprintf(deps.Stdout, "Preparation: %d min\n", recipe.PrepTime)
	}
	if recipe.CookTime > 0 {
		fmt.Fprintf(deps.Stdout, "Cooking: %d min\n", recipe.CookTime)
	}

	fmt.Fprintf(deps.Stdout, "\n## Ingredients\n\n%s\n", recipe.Ingredients)
	fmt.Fprintf(deps.Stdout, "\n## Instructions\n\n%s\n", recipe.Instructions)

	if recipe.Nutrition != (rezept.Nutrition{}) {
		n := recipe.Nutrition
		fmt.Fprintf(deps.Stdout, "\n## Nutrition\n\n%d kcal, %.1f g fat, %.1f g carbs, %.1f g protein\n",
			n.Calories, n.Fat, n.Carbs, n.Protein)
	}

	if recipe.PDFPath != "" {
		fmt.Fprintf(deps.Stdout, "\nSource: %s\n", recipe.PDFPath)
	}
	return nil
}
