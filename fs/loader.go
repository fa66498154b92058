// Package fs provides file-based loading and storage for lessons.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/mdlesson"
)

// Ensure Loader implements mdlesson.Loader at compile time.
var _ mdlesson.Loader = (*Loader)(nil)

// lessonExts lists the file extensions treated as lessons.
var lessonExts = map[string]bool{
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
}

// Loader reads lesson files below a root directory.
type Loader struct {
	root string
	fsys iofs.FS
}

// NewLoader creates a Loader rooted at dir. Paths passed to Load and
// Discover may be relative to dir or absolute paths inside it.
func NewLoader(dir string) *Loader {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &Loader{root: dir, fsys: os.DirFS(dir)}
}

// Root returns the loader's root directory.
func (l *Loader) Root() string {
	return l.root
}

// Load returns the bytes of the file at path exactly as stored.
func (l *Loader) Load(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rel, err := l.relative(path)
	if err != nil {
		return nil, err
	}

	info, err := iofs.Stat(l.fsys, rel)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, mdlesson.Errorf(mdlesson.ENOTFOUND, "lesson %q not found", path)
	}
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, mdlesson.Errorf(mdlesson.EINVALID, "lesson %q is a directory", path)
	}

	return iofs.ReadFile(l.fsys, rel)
}

// Discover walks dir and returns lesson files relative to the loader's
// root, sorted lexically. Hidden files and directories are skipped.
func (l *Loader) Discover(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rel, err := l.relative(dir)
	if err != nil {
		return nil, err
	}

	info, err := iofs.Stat(l.fsys, rel)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, mdlesson.Errorf(mdlesson.ENOTFOUND, "lesson directory %q not found", dir)
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, mdlesson.Errorf(mdlesson.EINVALID, "%q is not a directory", dir)
	}

	var paths []string
	err = iofs.WalkDir(l.fsys, rel, func(path string, d iofs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if path != rel && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return iofs.SkipDir
			}
			return nil
		}
		if !d.IsDir() && IsLessonFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

// relative converts path into a slash-separated path valid for the root
// filesystem, rejecting anything that escapes the root.
func (l *Loader) relative(path string) (string, error) {
	p := path
	if filepath.IsAbs(p) {
		r, err := filepath.Rel(l.root, p)
		if err != nil {
			return "", mdlesson.Errorf(mdlesson.EINVALID, "path %q is outside lesson root", path)
		}
		p = r
	}
	p = filepath.ToSlash(filepath.Clean(p))
	if !iofs.ValidPath(p) {
		return "", mdlesson.Errorf(mdlesson.EINVALID, "path %q is outside lesson root", path)
	}
	return p, nil
}

// IsLessonFile reports whether path has a lesson file extension.
func IsLessonFile(path string) bool {
	return lessonExts[strings.ToLower(filepath.Ext(path))]
}
