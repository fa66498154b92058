package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mdlesson"
	"github.com/fwojciec/mdlesson/fs"
	"github.com/fwojciec/mdlesson/goldmark"
	"github.com/fwojciec/mdlesson/goquery"
	"github.com/fwojciec/mdlesson/htmltomarkdown"
	mdslog "github.com/fwojciec/mdlesson/slog"
	"github.com/fwojciec/mdlesson/sqlite"
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
	// Catalog database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	LessonService mdlesson.LessonService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mdlesson"),
		kong.Description("Load, render and catalog markdown lessons."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'mdlesson --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	m.wireContent(deps, logger)

	if needsCatalog(kongCtx.Command()) {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set MDLESSON_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		var lessons mdlesson.LessonService = sqlite.NewLessonService(m.DB)
		if logger != nil {
			lessons = mdslog.NewLoggingLessonService(lessons, logger)
		}
		m.LessonService = lessons
		deps.Lessons = lessons
	}

	return kongCtx.Run(deps)
}

// wireContent sets up the services that read and render lesson files.
func (m *Main) wireContent(deps *Dependencies, logger *slog.Logger) {
	var renderer mdlesson.Renderer = goldmark.NewRenderer()
	var html mdlesson.HTMLRenderer = goldmark.NewHTMLRenderer(goldmark.Options{})
	if logger != nil {
		renderer = mdslog.NewLoggingRenderer(renderer, logger)
		html = mdslog.NewLoggingHTMLRenderer(html, logger)
	}

	deps.Renderer = renderer
	deps.HTMLRenderer = html
	deps.Extractor = goquery.NewExtractor()
	deps.Converter = htmltomarkdown.NewConverter()
	deps.NewLoader = func(root string) mdlesson.Loader {
		var loader mdlesson.Loader = fs.NewLoader(root)
		if logger != nil {
			loader = mdslog.NewLoggingLoader(loader, logger)
		}
		return loader
	}
	deps.NewPageStore = func(baseDir, name string) mdlesson.PageStore {
		return fs.NewSiteStore(baseDir, name)
	}
}

// needsCatalog reports whether a parsed kong command reads or writes the
// catalog database.
func needsCatalog(command string) bool {
	name, _, _ := strings.Cut(command, " ")
	switch name {
	case "index", "list", "show", "code", "delete":
		return true
	}
	return false
}

func defaultDBPath() string {
	if path := os.Getenv("MDLESSON_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "mdlesson.db"
	}
	dir := filepath.Join(home, ".mdlesson")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "mdlesson.db")
}
