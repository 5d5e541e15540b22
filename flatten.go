package dirflat

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

type Config struct {
	// Root is the absolute, symlink-resolved directory to flatten.
	Root string
}

type ProgressUpdate func(dir string, renamed int)

// App drives one flatten run. All filesystem access goes through fs so the
// traversal can run against an in-memory filesystem in tests.
type App struct {
	cfg              *Config
	fs               afero.Fs
	progressCallback ProgressUpdate
}

func NewApp(cfg *Config) *App {
	return &App{
		cfg: cfg,
		fs:  afero.NewOsFs(),
	}
}

func (a *App) SetProgressCallback(cb ProgressUpdate) { a.progressCallback = cb }

// Execute flattens the configured root and reports what happened.
// Listing and rename failures abort the run; already-performed renames stay.
func (a *App) Execute() (Summary, error) {
	var s Summary
	if err := a.flatten(a.cfg.Root, "", &s); err != nil {
		return s, err
	}

	if len(s.Renamed) == 0 {
		s.Message = "Nothing to rename"
	} else {
		s.Message = fmt.Sprintf("Flattened %s", a.cfg.Root)
	}
	s.relativize()
	return s, nil
}

// BuildPrefix derives the prefix for a directory from its parent's prefix and
// the directory's own name. A single leading '+' or '-' on the name is
// dropped, the result is always lowercased, and segments join with " - ".
func BuildPrefix(oldPrefix, tail string) string {
	postfix := tail
	if len(tail) > 0 && (tail[0] == '+' || tail[0] == '-') {
		postfix = tail[1:]
	}
	if oldPrefix == "" {
		return strings.ToLower(postfix)
	}
	return strings.ToLower(oldPrefix + " - " + postfix)
}

func leadingChar(name string) byte {
	if name == "" {
		return 0
	}
	return name[0]
}

// shouldTraverse reports whether an entry is a directory we descend into.
// Directories named with a leading '.' or '_' are left entirely alone;
// everything that is not a directory is a leaf.
func shouldTraverse(name string, info os.FileInfo) bool {
	if !info.IsDir() {
		return false
	}
	c := leadingChar(name)
	return c != '.' && c != '_'
}

// renameEntry renames a single file in place to prefix + " - " + name,
// lowercased. Dotfiles are never renamed.
func (a *App) renameEntry(path, prefix string, s *Summary) error {
	name := filepath.Base(path)
	if leadingChar(name) == '.' {
		slog.Debug("skipping dotfile", "path", path)
		s.Skipped = append(s.Skipped, path)
		return nil
	}

	newName := strings.ToLower(prefix + " - " + name)
	newPath := filepath.Join(filepath.Dir(path), newName)

	// Rename on most backends silently replaces an existing target, which
	// would destroy a file whose computed name collides. Collisions abort.
	if exists, err := afero.Exists(a.fs, newPath); err != nil {
		return fmt.Errorf("renaming %q: %w", path, err)
	} else if exists {
		return fmt.Errorf("renaming %q: target %q already exists", path, newPath)
	}

	if err := a.fs.Rename(path, newPath); err != nil {
		return fmt.Errorf("renaming %q: %w", path, err)
	}

	slog.Debug("renamed", "from", path, "to", newPath)
	s.Renamed = append(s.Renamed, fmt.Sprintf("%s -> %s", path, newPath))
	return nil
}

// flatten walks dir depth-first. Each directory is listed exactly once,
// before any of its entries are renamed or descended into.
func (a *App) flatten(dir, prevPrefix string, s *Summary) error {
	prefix := BuildPrefix(prevPrefix, filepath.Base(dir))
	a.reportProgress(dir, len(s.Renamed))

	names, err := a.readDirNames(dir)
	if err != nil {
		return fmt.Errorf("listing %q: %w", dir, err)
	}

	for _, name := range names {
		path := filepath.Join(dir, name)
		info, err := a.statEntry(path)
		if err != nil {
			// Per-entry metadata failure is recoverable; siblings continue.
			slog.Warn("cannot read entry metadata", "path", path, "err", err)
			s.Failed = append(s.Failed, path)
			continue
		}

		if shouldTraverse(name, info) {
			if err := a.flatten(path, prefix, s); err != nil {
				return err
			}
			continue
		}
		if info.IsDir() {
			slog.Debug("skipping directory", "path", path)
			s.Skipped = append(s.Skipped, path)
			continue
		}
		if err := a.renameEntry(path, prefix, s); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) readDirNames(dir string) ([]string, error) {
	f, err := a.fs.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Readdirnames(-1)
}

// statEntry stats without following symlinks where the backend supports it,
// so a symlink to a directory stays a leaf.
func (a *App) statEntry(path string) (os.FileInfo, error) {
	if lfs, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lfs.LstatIfPossible(path)
		return info, err
	}
	return a.fs.Stat(path)
}

func (a *App) reportProgress(dir string, renamed int) {
	if a.progressCallback != nil {
		a.progressCallback(dir, renamed)
	}
}
