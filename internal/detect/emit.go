package detect

import (
	"fmt"
	"io"
)

// DefaultPrefix is the directive prefix understood by the cargo build
// orchestrator, the original consumer of this protocol.
const DefaultPrefix = "cargo"

// emit writes one rerun-if-changed directive per path, in order. The
// line format is a compatibility contract with the host build
// orchestrator and must not change:
//
//	<prefix>:rerun-if-changed=<path>
func emit(w io.Writer, prefix string, paths []string) error {
	for _, p := range paths {
		if _, err := fmt.Fprintf(w, "%s:rerun-if-changed=%s\n", prefix, p); err != nil {
			return fmt.Errorf("writing directive for %q: %w", p, err)
		}
	}
	return nil
}
