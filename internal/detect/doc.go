// Package detect builds change detection directives for build scripts.
//
// Given a set of root paths (files or directories) and optional include
// and exclude matchers, it enumerates every regular file reachable from
// the roots and prints one directive per file:
//
//	<prefix>:rerun-if-changed=<path>
//
// The host build orchestrator consumes these lines and re-runs the build
// step whenever one of the listed files changes. Output is deduplicated
// and sorted, so repeated runs against an unchanged tree are
// byte-identical.
//
// Glob patterns use the doublestar dialect: `*` matches any run of
// characters within a single path segment, `**` matches any number of
// segments, and character classes and brace expansion are supported.
// Patterns are matched against the slash-separated path relative to the
// root being traversed.
package detect
