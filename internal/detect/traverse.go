package detect

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/karrick/godirwalk"
	"go.uber.org/zap"
)

// filterPolicy is the accept decision for one root: a file passes when
// the include matcher (if any) accepts it and the exclude matcher (if
// any) does not. Exclude wins when both match.
type filterPolicy struct {
	include Matcher
	exclude Matcher
}

func (f filterPolicy) accepts(path string) bool {
	if f.include != nil && !f.include.Matches(path) {
		return false
	}
	if f.exclude != nil && f.exclude.Matches(path) {
		return false
	}
	return true
}

// walker performs a deterministic depth-first descent from each root,
// handing every accepted regular file to a visit function. Directory
// entries are visited in sorted order so that enumeration order never
// depends on the platform. A walker instance tracks resolved symlink
// targets across all of its traversals, so a directory reachable
// through several links is descended into at most once.
type walker struct {
	logger  *zap.Logger
	visited map[string]struct{}
}

func newWalker(logger *zap.Logger) *walker {
	return &walker{
		logger:  logger,
		visited: make(map[string]struct{}),
	}
}

// traverse walks a single root. Matchers are applied to the path
// relative to root; when the root itself is a regular file, they see
// the declared path.
func (w *walker) traverse(root string, policy filterPolicy, visit func(path string)) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrRootUnavailable, root, err)
	}

	w.logger.Debug("traversing root",
		zap.String("root", root),
		zap.Bool("dir", info.IsDir()),
	)

	if !info.IsDir() {
		w.visitFile(root, root, policy, visit)
		return nil
	}

	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		w.visited[resolved] = struct{}{}
	} else {
		w.logger.Debug("could not resolve root for cycle tracking",
			zap.String("root", root),
			zap.Error(err),
		)
	}

	dirents, err := readSorted(root)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrRootUnavailable, root, err)
	}
	return w.walkEntries(root, root, dirents, policy, visit)
}

// readSorted lists a directory's entries in lexicographic order.
func readSorted(dir string) (godirwalk.Dirents, error) {
	dirents, err := godirwalk.ReadDirents(dir, nil)
	if err != nil {
		return nil, err
	}
	sort.Sort(dirents)
	return dirents, nil
}

func (w *walker) walkDir(dir, root string, policy filterPolicy, visit func(path string)) error {
	dirents, err := readSorted(dir)
	if err != nil {
		return fmt.Errorf("%w: reading %q: %v", ErrTraversal, dir, err)
	}
	return w.walkEntries(dir, root, dirents, policy, visit)
}

func (w *walker) walkEntries(dir, root string, dirents godirwalk.Dirents, policy filterPolicy, visit func(path string)) error {
	for _, de := range dirents {
		path := filepath.Join(dir, de.Name())
		switch {
		case de.IsSymlink():
			if err := w.walkSymlink(path, root, policy, visit); err != nil {
				return err
			}
		case de.IsDir():
			if err := w.walkDir(path, root, policy, visit); err != nil {
				return err
			}
		case de.IsRegular():
			w.visitFile(path, root, policy, visit)
		}
	}
	return nil
}

// walkSymlink yields file links as regular files and descends into
// directory links, guarding against cycles by resolved-target identity.
func (w *walker) walkSymlink(path, root string, policy filterPolicy, visit func(path string)) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return fmt.Errorf("%w: resolving symlink %q: %v", ErrTraversal, path, err)
	}
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("%w: stat %q: %v", ErrTraversal, target, err)
	}

	if !info.IsDir() {
		w.visitFile(path, root, policy, visit)
		return nil
	}

	if _, seen := w.visited[target]; seen {
		w.logger.Debug("skipping previously visited symlink target",
			zap.String("path", path),
			zap.String("target", target),
		)
		return nil
	}
	w.visited[target] = struct{}{}

	// Descend through the link path so discovered paths stay under root.
	return w.walkDir(path, root, policy, visit)
}

func (w *walker) visitFile(path, root string, policy filterPolicy, visit func(path string)) {
	if !policy.accepts(matcherInput(root, path)) {
		return
	}
	visit(path)
}

// matcherInput is the path text handed to matchers for a file found
// under root. Glob patterns are anchored at the root, so the input is
// root-relative; a file root has no relative form and is matched as
// declared.
func matcherInput(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return path
	}
	return rel
}
