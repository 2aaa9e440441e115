package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/rezept"
	"github.com/fwojciec/rezept/batch"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	e := deps.Extractor.ExtractRecipe(deps.Ctx, c.Path)

	out, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	if e.Err != "" {
		fmt.Fprintf(deps.Stderr, "error: %s\n", e.Err)
		return rezept.Errorf(rezept.EUNREADABLE, "%s", e.Err)
	}

	if c.Save {
		hash, err := batch.HashFile(c.Path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", rezept.ErrorMessage(err))
			return err
		}

		recipe := batch.RecipeFromExtraction(e, hash)
		if err := deps.Recipes.CreateRecipe(deps.Ctx, recipe); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", rezept.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved recipe %q (%s)\n", recipe.Title, recipe.ID)
	}

	return nil
}
