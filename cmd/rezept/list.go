package main

import (
	"fmt"

	"github.com/fwojciec/rezept"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := rezept.RecipeFilter{}
	if c.Title != "" {
		filter.Title = &c.Title
	}

	recipes, err := deps.Recipes.FindRecipes(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rezept.ErrorMessage(err))
		return err
	}

	if len(recipes) == 0 {
		fmt.Fprintln(deps.Stdout, "No recipes found. Use 'rezept batch' to import some.")
		return nil
	}

	for _, r := range recipes {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", r.ID, r.Title)
	}

	return nil
}
