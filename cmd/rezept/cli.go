package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/rezept"
	"github.com/fwojciec/rezept/batch"
	"github.com/fwojciec/rezept/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Recipes   rezept.RecipeService
	Extractor rezept.RecipeExtractor
	Importer  *batch.Importer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract a recipe from a single PDF"`
	Batch   BatchCmd   `cmd:"" help:"Import all recipe PDFs from a directory"`
	List    ListCmd    `cmd:"" help:"List stored recipes"`
	Show    ShowCmd    `cmd:"" help:"Show a stored recipe"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored recipe"`
}

// PipelineFlags configure the extraction pipeline. They are shared by the
// extract and batch commands.
type PipelineFlags struct {
	Model       string        `help:"Path to a trained section classifier model"`
	Profiles    string        `help:"Path to a layout profiles YAML file"`
	DPI         int           `default:"300" help:"Rasterization resolution for OCR"`
	OCRTimeout  time.Duration `name:"ocr-timeout" default:"2m" help:"OCR time limit per document"`
	OCRRate     float64       `name:"ocr-rate" help:"OCR page recognitions per second (0 = unlimited)"`
	Concurrency int           `short:"c" default:"2" help:"Concurrent OCR page limit"`
	Verbose     bool          `short:"v" help:"Log pipeline operations to stderr"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Path string `arg:"" help:"PDF file to extract"`
	Save bool   `short:"s" help:"Save the extracted recipe to the database"`
	PipelineFlags
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Dir  string  `arg:"" help:"Directory to scan for PDFs"`
	Rate float64 `default:"1" help:"Extraction starts per second"`
	PipelineFlags
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Title string `short:"t" help:"Filter by title substring"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Recipe ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Recipe ID"`
	Force bool   `help:"Confirm deletion"`
}
