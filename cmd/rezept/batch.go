package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/rezept/batch"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d PDFs\n", event.Total)
		case batch.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  skip %s: %s\n", filepath.Base(event.Path), event.Reason)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %v\n", filepath.Base(event.Path), event.Error)
		case batch.ProgressFinished:
			// Summary printed after the import completes
		}
	}

	result, err := deps.Importer.ImportDir(deps.Ctx, c.Dir, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error importing: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d recipes (%d skipped, %d failed)\n",
		result.Imported, result.Skipped, result.Failed)
	return nil
}
