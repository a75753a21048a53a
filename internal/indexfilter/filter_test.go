package indexfilter

import (
	"reflect"
	"testing"
)

func TestShouldIndex(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"src/app.ts", true},
		{"cmd/gateway/main.go", true},
		{"README.md", true},
		{"Makefile", true},
		{"docs/intro.rst", true},

		{"logo.png", false},
		{"assets/video.mp4", false},
		{"fonts/Inter.woff2", false},
		{"lib/native.so", false},

		{"node_modules/react/index.js", false},
		{"packages/ui/node_modules/left-pad/index.js", false},
		{"dist/bundle.js", false},
		{"target/release/app", false},
		{".next/server/page.js", false},
		{"__pycache__/mod.pyc", false},

		{"package-lock.json", false},
		{"backend/yarn.lock", false},
		{"Cargo.lock", false},
		{".env", false},
		{".env.staging", false},

		{"static/app.min.js", false},
		{"static/app.min.css", false},
		{"static/app.css", true},

		{"", false},
		{"./src/kept.go", true},
		{`windows\path\file.cs`, true},
		{`windows\node_modules\x.js`, false},
	}
	for _, tc := range cases {
		if got := ShouldIndex(tc.path); got != tc.want {
			t.Errorf("ShouldIndex(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestShouldIndexStable(t *testing.T) {
	// Same input must always give the same answer; the predicate gates
	// both charging and indexing.
	for _, p := range []string{"a.go", "node_modules/x.js", "img.png", ""} {
		first := ShouldIndex(p)
		for i := 0; i < 100; i++ {
			if ShouldIndex(p) != first {
				t.Fatalf("ShouldIndex(%q) unstable", p)
			}
		}
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	in := []string{"b.go", "logo.png", "a.go", "node_modules/x.js", "c.ts"}
	got := Apply(in)
	want := []string{"b.go", "a.go", "c.ts"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Apply() = %v, want %v", got, want)
	}
}
