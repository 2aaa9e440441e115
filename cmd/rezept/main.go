package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"golang.org/x/time/rate"

	"github.com/fwojciec/rezept"
	"github.com/fwojciec/rezept/batch"
	"github.com/fwojciec/rezept/classify"
	"github.com/fwojciec/rezept/extract"
	"github.com/fwojciec/rezept/fitz"
	"github.com/fwojciec/rezept/fs"
	"github.com/fwojciec/rezept/gosseract"
	"github.com/fwojciec/rezept/pdf"
	"github.com/fwojciec/rezept/pdfcpu"
	"github.com/fwojciec/rezept/profile"
	rezslog "github.com/fwojciec/rezept/slog"
	"github.com/fwojciec/rezept/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path and image directory. Set before calling Run().
	DBPath    string
	ImagesDir string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RecipeService rezept.RecipeService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:    defaultDBPath(),
		ImagesDir: defaultImagesDir(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rezept"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'rezept --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set REZEPT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.RecipeService = sqlite.NewRecipeService(m.DB)
	deps.DB = m.DB
	deps.Recipes = m.RecipeService

	// Wire the extraction pipeline for commands that run it
	if cmd == "extract" {
		extractor, err := m.buildExtractor(stderr, cli.Extract.PipelineFlags)
		if err != nil {
			return err
		}
		deps.Extractor = extractor
	}

	if cmd == "batch" {
		extractor, err := m.buildExtractor(stderr, cli.Batch.PipelineFlags)
		if err != nil {
			return err
		}
		deps.Importer = &batch.Importer{
			Extractor:   extractor,
			Recipes:     m.RecipeService,
			Limiter:     rate.NewLimiter(rate.Limit(cli.Batch.Rate), 1),
			Concurrency: cli.Batch.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

// buildExtractor assembles the extraction pipeline from the given flags.
func (m *Main) buildExtractor(stderr io.Writer, flags PipelineFlags) (rezept.RecipeExtractor, error) {
	profiles := profile.Builtin()
	if flags.Profiles != "" {
		loaded, err := profile.Load(flags.Profiles)
		if err != nil {
			return nil, fmt.Errorf("failed to load profiles: %w", err)
		}
		profiles = loaded
	}

	var classifier rezept.SectionClassifier
	if flags.Model != "" {
		model, err := classify.LoadModel(flags.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to load classifier model: %w", err)
		}
		classifier = model
	}

	var layout rezept.LayoutExtractor = pdf.NewLayoutExtractor()
	var recognizer rezept.TextRecognizer = gosseract.NewRecognizer()
	if flags.OCRRate > 0 {
		recognizer = gosseract.NewRateLimited(recognizer, rate.Limit(flags.OCRRate))
	}

	var logger *slog.Logger
	if flags.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
		layout = rezslog.NewLoggingLayoutExtractor(layout, logger)
		recognizer = rezslog.NewLoggingTextRecognizer(recognizer, logger)
	}

	processor := pdfcpu.NewProcessor()
	var extractor rezept.RecipeExtractor = &extract.Extractor{
		Layout:      layout,
		Validator:   processor,
		Rasterizer:  fitz.NewRasterizer(),
		Recognizer:  recognizer,
		Classifier:  classifier,
		Images:      processor,
		ImageStore:  fs.NewImageStore(m.ImagesDir),
		Profiles:    profiles,
		DPI:         flags.DPI,
		OCRTimeout:  flags.OCRTimeout,
		Concurrency: flags.Concurrency,
	}
	if flags.Verbose {
		extractor = rezslog.NewLoggingRecipeExtractor(extractor, logger)
	}

	return extractor, nil
}

func defaultDBPath() string {
	if path := os.Getenv("REZEPT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "rezept.db"
	}
	dir := filepath.Join(home, ".rezept")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "rezept.db")
}

func defaultImagesDir() string {
	if path := os.Getenv("REZEPT_IMAGES"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "images"
	}
	return filepath.Join(home, ".rezept", "images")
}
