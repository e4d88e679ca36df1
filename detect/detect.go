// Package detect is the public API for generating build-time change
// detection directives.
//
// A build script declares the files and directories its output depends
// on, and Generate prints one rerun-if-changed directive per discovered
// file for the host build orchestrator to consume:
//
//	err := detect.Path("static").
//		Path("build.go").
//		Exclude(detect.MustGlob("**/*.tmp")).
//		Generate()
//
// See the internal package documentation for the glob dialect and
// traversal semantics.
package detect

import (
	internal "changedet/internal/detect"
)

// Re-export the core types.
type (
	// Matcher is a composable boolean predicate over filesystem paths.
	Matcher = internal.Matcher

	// Builder accumulates roots and matchers and generates directives on
	// a terminal call.
	Builder = internal.Builder
)

// DefaultPrefix is the directive prefix used when none is configured.
const DefaultPrefix = internal.DefaultPrefix

// Re-export the error values callers can test against with errors.Is.
var (
	ErrRootUnavailable = internal.ErrRootUnavailable
	ErrBadPattern      = internal.ErrBadPattern
	ErrTraversal       = internal.ErrTraversal
	ErrBuilderConsumed = internal.ErrBuilderConsumed
)

// NewBuilder returns an empty builder writing to standard output.
func NewBuilder() *Builder { return internal.NewBuilder() }

// Path starts a builder with one root path (a file or a directory).
func Path(path string) *Builder { return internal.Path(path) }

// Include starts a builder with a global include matcher.
func Include(m Matcher) *Builder { return internal.Include(m) }

// Exclude starts a builder with a global exclude matcher.
func Exclude(m Matcher) *Builder { return internal.Exclude(m) }

// Filter starts a builder with both global matchers.
func Filter(include, exclude Matcher) *Builder { return internal.Filter(include, exclude) }

// Exact returns a matcher for one literal path.
func Exact(path string) Matcher { return internal.Exact(path) }

// Glob returns a matcher for a doublestar-style glob pattern.
func Glob(pattern string) (Matcher, error) { return internal.Glob(pattern) }

// MustGlob is like Glob but panics on a malformed pattern.
func MustGlob(pattern string) Matcher { return internal.MustGlob(pattern) }

// All returns the conjunction of two matchers.
func All(a, b Matcher) Matcher { return internal.All(a, b) }

// Any returns the disjunction of two matchers.
func Any(a, b Matcher) Matcher { return internal.Any(a, b) }

// Not returns the negation of a matcher.
func Not(m Matcher) Matcher { return internal.Not(m) }
