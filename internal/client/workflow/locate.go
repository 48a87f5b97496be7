package workflow

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/proofpost/internal/common"
)

// Locator finds attachment candidates for an item by exact stem match in a
// configured local directory.
type Locator struct {
	Dir string
}

// Locate returns the file names in the directory whose stem (base name with
// the final extension stripped) equals baseName exactly. Matching is
// case-sensitive with no normalization, so "Report.v2.pdf" does not match
// "Report". A missing directory is reported as common.ErrDirectoryMissing so
// callers can fall back to manual selection; zero matches is not an error.
// Results follow os.ReadDir's lexical order and are deterministic for a
// given directory state.
func (l *Locator) Locate(baseName string) ([]string, error) {
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", common.ErrDirectoryMissing, l.Dir)
		}
		return nil, fmt.Errorf("read dir %s: %w", l.Dir, err)
	}

	var matches []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if stem(e.Name()) == baseName {
			matches = append(matches, e.Name())
		}
	}
	return matches, nil
}

// Path resolves a candidate name returned by Locate to a full path.
func (l *Locator) Path(name string) string {
	return filepath.Join(l.Dir, name)
}

// Locator exposes the configured locator so callers can resolve candidate
// names to full paths.
func (w *Workflow) Locator() *Locator { return w.locator }

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// LocateForItem searches for files matching the selected item's display
// name. The item name must be known from the cache; an item created after
// the last refresh has no known name yet. All candidates are returned for
// explicit user choice, the workflow never guesses among several.
func (w *Workflow) LocateForItem(ctx context.Context, s *Session) ([]string, error) {
	if s.SelectedItemID == "" {
		return nil, common.ErrNoItemSelected
	}
	name := s.SelectedItemName()
	if name == "" {
		return nil, fmt.Errorf("name of item %s is not in the loaded list", s.SelectedItemID)
	}

	matches, err := w.locator.Locate(name)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		w.logger.Warn(ctx, "no files match item name", "name", name, "dir", w.locator.Dir)
		return nil, nil
	}

	s.MarkFileResolved()
	return matches, nil
}
