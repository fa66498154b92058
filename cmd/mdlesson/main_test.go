package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/mdlesson/cmd/mdlesson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allCommands = []string{"render", "sections", "index", "list", "show", "code", "export", "delete"}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range allCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	for _, cmd := range allCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
	assert.Contains(t, helpOutput, "Usage:")
	assert.Contains(t, helpOutput, "Flags:")

	_, err = os.Stat(m.DBPath)
	assert.True(t, os.IsNotExist(err), "help should not create the database")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	err := m.Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Run_RenderDoesNotOpenCatalog(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeLesson(t, dir, "title.md", "# Title\n\nSome text.")

	m := main.NewMain()
	m.DBPath = filepath.Join(dir, "catalog.db")
	stdout := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"render", "--blocks", path}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "heading(1)  Title")
	_, err = os.Stat(m.DBPath)
	assert.True(t, os.IsNotExist(err))
}

func TestMain_Run_VerboseLogsToStderr(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeLesson(t, dir, "title.md", "# Title\n")

	m := main.NewMain()
	m.DBPath = filepath.Join(dir, "catalog.db")
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--verbose", "sections", path}, &bytes.Buffer{}, stderr)

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "msg=load")
	assert.Contains(t, stderr.String(), "msg=render")
}

func TestMain_Run_CatalogWorkflow(t *testing.T) {
	t.Parallel()

	// Given a lesson directory and an empty catalog
	lessonsDir := t.TempDir()
	writeLesson(t, lessonsDir, "01-optionals.md", optionalsLesson)
	writeLesson(t, lessonsDir, "02-enums.md", "# Enums\n\n```swift\nenum Suit { case hearts }\n```\n\n```python\nclass Suit(Enum): pass\n```\n")
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	run := func(args ...string) (string, string, error) {
		m := main.NewMain()
		m.DBPath = dbPath
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		err := m.Run(context.Background(), args, stdout, stderr)
		return stdout.String(), stderr.String(), err
	}

	// When the directory is indexed
	out, _, err := run("index", lessonsDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Found 2 lessons")
	assert.Contains(t, out, "Indexed 2 lessons")

	// Then re-indexing skips unchanged lessons
	out, _, err = run("index", lessonsDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Indexed 0 lessons (0 B), 2 unchanged, 0 failed")

	// And lessons are listed in directory order
	out, _, err = run("list")
	require.NoError(t, err)
	assert.Equal(t, "01-optionals  Optionals  01-optionals.md\n02-enums  Enums  02-enums.md\n", out)

	// And tags filter the listing
	out, _, err = run("list", "--tag", "types")
	require.NoError(t, err)
	assert.Equal(t, "01-optionals  Optionals  01-optionals.md\n", out)

	// And a lesson outline can be shown
	out, _, err = run("show", "01-optionals")
	require.NoError(t, err)
	assert.Contains(t, out, "  - Optional Chaining (#optional-chaining)")

	// And code samples can be filtered by language
	out, _, err = run("code", "--lang", "swift")
	require.NoError(t, err)
	assert.Contains(t, out, "let count = shop?.items.count")
	assert.Contains(t, out, "enum Suit { case hearts }")
	assert.NotContains(t, out, "class Suit")

	// And a lesson can be deleted
	out, _, err = run("delete", "02-enums", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted")

	out, _, err = run("list")
	require.NoError(t, err)
	assert.NotContains(t, out, "02-enums")
}

func TestMain_Run_IndexPrune(t *testing.T) {
	t.Parallel()

	// Given an indexed directory from which one lesson file is removed
	lessonsDir := t.TempDir()
	writeLesson(t, lessonsDir, "loops.md", "# Loops\n")
	gone := writeLesson(t, lessonsDir, "closures.md", "# Closures\n")
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	run := func(args ...string) string {
		m := main.NewMain()
		m.DBPath = dbPath
		stdout := &bytes.Buffer{}
		require.NoError(t, m.Run(context.Background(), args, stdout, &bytes.Buffer{}))
		return stdout.String()
	}
	run("index", lessonsDir)
	require.NoError(t, os.Remove(gone))

	// When indexing without --prune
	run("index", lessonsDir)

	// Then the stale lesson is kept
	assert.Contains(t, run("list"), "closures")

	// When indexing with --prune
	out := run("index", "--prune", lessonsDir)

	// Then the stale lesson is removed from the catalog
	assert.Contains(t, out, "removed closures.md")
	assert.Contains(t, out, "Removed 1 lessons")
	list := run("list")
	assert.NotContains(t, list, "closures")
	assert.Contains(t, list, "loops")
}

func TestMain_Run_Export(t *testing.T) {
	t.Parallel()

	lessonsDir := t.TempDir()
	outDir := t.TempDir()
	writeLesson(t, lessonsDir, "optionals.md", optionalsLesson)

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "catalog.db")
	stdout := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"export", lessonsDir, "site", "--path", outDir, "--title", "Swift Tour"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Exported 1 lessons")

	index, err := os.ReadFile(filepath.Join(outDir, "site", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "Swift Tour")
	assert.Contains(t, string(index), `<a href="optionals.html">Optionals</a>`)
}

func TestMain_Run_ExportRefusesOverlappingOutput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args func(root, lessons string) []string
	}{
		{"output replaces lesson directory", func(root, lessons string) []string {
			return []string{"export", lessons, "lessons", "--path", root}
		}},
		{"output is parent of lesson directory", func(root, lessons string) []string {
			return []string{"export", lessons, filepath.Base(root), "--path", filepath.Dir(root)}
		}},
		{"output inside lesson directory", func(root, lessons string) []string {
			return []string{"export", lessons, "site", "--path", lessons}
		}},
		{"output name escapes path", func(root, lessons string) []string {
			return []string{"export", lessons, "..", "--path", filepath.Join(root, "out")}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			lessons := filepath.Join(root, "lessons")
			lesson := writeLesson(t, lessons, "optionals.md", optionalsLesson)
			require.NoError(t, os.MkdirAll(filepath.Join(root, "out"), 0o755))

			m := main.NewMain()
			m.DBPath = filepath.Join(t.TempDir(), "catalog.db")
			stderr := &bytes.Buffer{}

			err := m.Run(context.Background(), tc.args(root, lessons), &bytes.Buffer{}, stderr)

			require.Error(t, err)
			assert.Contains(t, stderr.String(), "error:")
			_, err = os.Stat(lesson)
			require.NoError(t, err, "lesson file must survive")
		})
	}
}
