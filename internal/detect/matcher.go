package detect

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/unicode/norm"
)

// Matcher is a composable boolean predicate over filesystem paths.
// Implementations must be pure and total: Matches never fails, never
// blocks, and has no side effects, so matchers are safe to reuse across
// traversals.
type Matcher interface {
	Matches(path string) bool
}

// matchText returns the canonical text a matcher sees for a path:
// cleaned, slash-separated, NFC-normalized.
func matchText(path string) string {
	return norm.NFC.String(filepath.ToSlash(filepath.Clean(path)))
}

type exactMatcher struct {
	path string
}

// Exact returns a matcher that matches only the given literal path,
// compared after separator and unicode normalization.
func Exact(path string) Matcher {
	return exactMatcher{path: matchText(path)}
}

func (m exactMatcher) Matches(path string) bool {
	return matchText(path) == m.path
}

type globMatcher struct {
	pattern string
}

// Glob returns a matcher for a doublestar-style glob pattern. The
// pattern is validated eagerly; a malformed pattern is reported here
// rather than surfacing mid-traversal.
func Glob(pattern string) (Matcher, error) {
	pattern = norm.NFC.String(pattern)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
	}
	return globMatcher{pattern: pattern}, nil
}

// MustGlob is like Glob but panics on a malformed pattern. Intended for
// patterns known at compile time.
func MustGlob(pattern string) Matcher {
	m, err := Glob(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

func (m globMatcher) Matches(path string) bool {
	ok, err := doublestar.Match(m.pattern, matchText(path))
	return err == nil && ok
}

type allMatcher struct {
	a, b Matcher
}

// All returns a matcher that matches when both operands match.
// Evaluation short-circuits on the first non-match.
func All(a, b Matcher) Matcher {
	return allMatcher{a: a, b: b}
}

func (m allMatcher) Matches(path string) bool {
	return m.a.Matches(path) && m.b.Matches(path)
}

type anyMatcher struct {
	a, b Matcher
}

// Any returns a matcher that matches when either operand matches.
// Evaluation short-circuits on the first match.
func Any(a, b Matcher) Matcher {
	return anyMatcher{a: a, b: b}
}

func (m anyMatcher) Matches(path string) bool {
	return m.a.Matches(path) || m.b.Matches(path)
}

type notMatcher struct {
	m Matcher
}

// Not returns a matcher that inverts the operand.
func Not(m Matcher) Matcher {
	return notMatcher{m: m}
}

func (m notMatcher) Matches(path string) bool {
	return !m.m.Matches(path)
}
