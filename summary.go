package dirflat

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Summary describes one flatten run. Renamed entries are "old -> new"
// pairs; Skipped holds dotfiles and skip-marked directories; Failed holds
// entries whose metadata could not be read.
type Summary struct {
	Renamed []string
	Skipped []string
	Failed  []string
	Message string
}

// Plain renders the summary as unstyled text, one entry per line.
func (s Summary) Plain() string {
	var b strings.Builder
	if s.Message != "" {
		b.WriteString(s.Message + "\n")
	}
	for _, r := range s.Renamed {
		b.WriteString(r + "\n")
	}
	return b.String()
}

func (s *Summary) relativize() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}

	relPath := func(p string) string {
		if r, err := filepath.Rel(wd, p); err == nil && !strings.HasPrefix(r, "..") {
			return r
		}
		return p
	}

	relList := func(paths []string) []string {
		res := make([]string, 0, len(paths))
		for _, p := range paths {
			if strings.Contains(p, " -> ") {
				parts := strings.SplitN(p, " -> ", 2)
				res = append(res, fmt.Sprintf("%s -> %s", relPath(parts[0]), relPath(parts[1])))
			} else {
				res = append(res, relPath(p))
			}
		}
		return res
	}

	s.Renamed = relList(s.Renamed)
	s.Skipped = relList(s.Skipped)
	s.Failed = relList(s.Failed)
}
