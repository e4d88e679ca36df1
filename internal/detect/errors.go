package detect

import "errors"

// Sentinel errors reported by builders and traversal.
var (
	// ErrRootUnavailable indicates a declared root path that does not exist
	// or cannot be accessed.
	ErrRootUnavailable = errors.New("root path unavailable")
	// ErrBadPattern indicates a syntactically invalid glob pattern.
	ErrBadPattern = errors.New("invalid glob pattern")
	// ErrTraversal indicates an I/O failure while walking a directory tree.
	ErrTraversal = errors.New("traversal failed")
	// ErrBuilderConsumed indicates a second terminal call on the same Builder.
	ErrBuilderConsumed = errors.New("builder already generated")
)
