package detect

import (
	"io"
	"os"

	"go.uber.org/zap"
)

// rootSpec pairs one declared root with matchers that apply to that
// root only, on top of the builder's global matchers.
type rootSpec struct {
	path    string
	include Matcher
	exclude Matcher
}

// Builder accumulates roots and matchers, then produces directives on a
// terminal Generate or Detect call. Methods return the receiver so
// configuration can be chained:
//
//	err := detect.Path("static").
//		Exclude(detect.MustGlob("*.tmp")).
//		Generate()
//
// A Builder is single-use: after the terminal call it cannot be run
// again, and it is not safe for concurrent use.
type Builder struct {
	roots     []rootSpec
	include   Matcher
	exclude   Matcher
	prefix    string
	out       io.Writer
	logger    *zap.Logger
	generated bool
}

// NewBuilder returns an empty builder writing to standard output with
// the default directive prefix.
func NewBuilder() *Builder {
	return &Builder{
		prefix: DefaultPrefix,
		out:    os.Stdout,
		logger: zap.NewNop(),
	}
}

// Path starts a builder with one root. A root may be a single file or
// a directory; directories are walked recursively.
func Path(path string) *Builder {
	return NewBuilder().Path(path)
}

// Include starts a builder with a global include matcher.
func Include(m Matcher) *Builder {
	return NewBuilder().Include(m)
}

// Exclude starts a builder with a global exclude matcher.
func Exclude(m Matcher) *Builder {
	return NewBuilder().Exclude(m)
}

// Filter starts a builder with both global matchers.
func Filter(include, exclude Matcher) *Builder {
	return NewBuilder().Include(include).Exclude(exclude)
}

// Path appends a root path. Existence is checked at traversal time, not
// here, so a typo surfaces as an error from the terminal call.
func (b *Builder) Path(path string) *Builder {
	b.roots = append(b.roots, rootSpec{path: path})
	return b
}

// PathInclude appends a root whose files must additionally match m.
func (b *Builder) PathInclude(path string, m Matcher) *Builder {
	b.roots = append(b.roots, rootSpec{path: path, include: m})
	return b
}

// PathExclude appends a root whose files matching m are dropped.
func (b *Builder) PathExclude(path string, m Matcher) *Builder {
	b.roots = append(b.roots, rootSpec{path: path, exclude: m})
	return b
}

// PathFilter appends a root with both per-root matchers.
func (b *Builder) PathFilter(path string, include, exclude Matcher) *Builder {
	b.roots = append(b.roots, rootSpec{path: path, include: include, exclude: exclude})
	return b
}

// Include narrows the global include filter: successive calls are
// AND-combined, so a file must satisfy every include matcher given.
func (b *Builder) Include(m Matcher) *Builder {
	if b.include != nil {
		m = All(b.include, m)
	}
	b.include = m
	return b
}

// Exclude widens the global exclude filter: successive calls are
// OR-combined, so a file matching any exclude matcher is dropped.
// Exclusion always takes precedence over inclusion.
func (b *Builder) Exclude(m Matcher) *Builder {
	if b.exclude != nil {
		m = Any(b.exclude, m)
	}
	b.exclude = m
	return b
}

// Prefix overrides the directive prefix token.
func (b *Builder) Prefix(prefix string) *Builder {
	b.prefix = prefix
	return b
}

// Output redirects directive output away from standard output.
func (b *Builder) Output(w io.Writer) *Builder {
	b.out = w
	return b
}

// Logger attaches a logger for traversal debug output.
func (b *Builder) Logger(logger *zap.Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// policyFor merges the global matchers with one root's own.
func (b *Builder) policyFor(r rootSpec) filterPolicy {
	p := filterPolicy{include: b.include, exclude: b.exclude}
	if r.include != nil {
		if p.include != nil {
			p.include = All(p.include, r.include)
		} else {
			p.include = r.include
		}
	}
	if r.exclude != nil {
		if p.exclude != nil {
			p.exclude = Any(p.exclude, r.exclude)
		} else {
			p.exclude = r.exclude
		}
	}
	return p
}

// Generate is the terminal operation: it walks every root, collects the
// surviving files, and writes one directive per file. Nothing is
// written unless every root traversal succeeded, so a failing run never
// leaves the host with a partial watch set.
func (b *Builder) Generate() error {
	paths, err := b.Detect()
	if err != nil {
		return err
	}
	return emit(b.out, b.prefix, paths)
}

// Detect runs the traversal and returns the deduplicated, sorted file
// paths without emitting directives. Like Generate, it consumes the
// builder.
func (b *Builder) Detect() ([]string, error) {
	if b.generated {
		return nil, ErrBuilderConsumed
	}
	b.generated = true

	w := newWalker(b.logger)
	c := newCollector()
	for _, r := range b.roots {
		if err := w.traverse(r.path, b.policyFor(r), c.add); err != nil {
			return nil, err
		}
	}

	paths := c.finalize()
	b.logger.Debug("change detection complete",
		zap.Int("roots", len(b.roots)),
		zap.Int("files", len(paths)),
	)
	return paths, nil
}
