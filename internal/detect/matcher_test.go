package detect

import (
	"errors"
	"testing"
)

func TestExactMatcher(t *testing.T) {
	tests := []struct {
		name    string
		matcher string
		path    string
		want    bool
	}{
		{"same path", "static/a.txt", "static/a.txt", true},
		{"different path", "static/a.txt", "static/b.txt", false},
		{"unclean input", "static/a.txt", "static/./a.txt", true},
		{"base name only", "static/a.txt", "a.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Exact(tt.matcher).Matches(tt.path); got != tt.want {
				t.Errorf("Exact(%q).Matches(%q) = %v, want %v", tt.matcher, tt.path, got, tt.want)
			}
		})
	}
}

func TestGlobMatcher(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"*.tmp", "b.tmp", true},
		{"*.tmp", "sub/b.tmp", false}, // * stays within one segment
		{"**/*.tmp", "sub/b.tmp", true},
		{"**/*.tmp", "a/b/c.tmp", true},
		{"static/*", "static/a.txt", true},
		{"static/*", "static/sub/a.txt", false},
		{"static/**", "static/sub/a.txt", true},
		{"hello.?", "hello.c", true},
		{"hello.?", "hello.js", false},
		{"*.{c,h}", "hello.c", true},
		{"*.{c,h}", "hello.js", false},
	}

	for _, tt := range tests {
		m, err := Glob(tt.pattern)
		if err != nil {
			t.Fatalf("Glob(%q) failed: %v", tt.pattern, err)
		}
		if got := m.Matches(tt.path); got != tt.want {
			t.Errorf("Glob(%q).Matches(%q) = %v, want %v", tt.pattern, tt.path, got, tt.want)
		}
	}
}

func TestGlobInvalidPattern(t *testing.T) {
	if _, err := Glob("[unclosed"); !errors.Is(err, ErrBadPattern) {
		t.Errorf("Glob(\"[unclosed\") error = %v, want ErrBadPattern", err)
	}
}

func TestMustGlobPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGlob with a malformed pattern did not panic")
		}
	}()
	MustGlob("[unclosed")
}

func TestCombinators(t *testing.T) {
	a := Exact("a")
	b := Exact("b")

	if !All(a, a).Matches("a") {
		t.Error("All(a, a) should match a")
	}
	if All(a, b).Matches("a") {
		t.Error("All(a, b) should not match a")
	}
	if !Any(a, b).Matches("b") {
		t.Error("Any(a, b) should match b")
	}
	if Any(a, b).Matches("c") {
		t.Error("Any(a, b) should not match c")
	}
	if Not(a).Matches("a") {
		t.Error("Not(a) should not match a")
	}
	if !Not(a).Matches("b") {
		t.Error("Not(a) should match b")
	}
}

func TestDoubleNegation(t *testing.T) {
	m := MustGlob("**/*.c")
	for _, path := range []string{"hello.c", "src/hello.c", "hello.js", "src"} {
		if Not(Not(m)).Matches(path) != m.Matches(path) {
			t.Errorf("Not(Not(m)) and m disagree on %q", path)
		}
	}
}

// countingMatcher records whether it was consulted at all.
type countingMatcher struct {
	result bool
	calls  *int
}

func (m countingMatcher) Matches(string) bool {
	*m.calls++
	return m.result
}

func TestCombinatorsShortCircuit(t *testing.T) {
	var calls int
	probe := countingMatcher{result: true, calls: &calls}

	All(Not(Exact("x")), probe).Matches("x") // left side false
	if calls != 0 {
		t.Errorf("All evaluated right operand after left returned false (%d calls)", calls)
	}

	Any(Exact("x"), probe).Matches("x") // left side true
	if calls != 0 {
		t.Errorf("Any evaluated right operand after left returned true (%d calls)", calls)
	}
}

func TestNestedComposition(t *testing.T) {
	// (*.c OR *.h) AND NOT generated.c
	m := All(
		Any(MustGlob("**/*.c"), MustGlob("**/*.h")),
		Not(Exact("generated.c")),
	)

	tests := map[string]bool{
		"hello.c":     true,
		"sub/util.h":  true,
		"generated.c": false,
		"hello.js":    false,
	}
	for path, want := range tests {
		if got := m.Matches(path); got != want {
			t.Errorf("composed matcher on %q = %v, want %v", path, got, want)
		}
	}
}
