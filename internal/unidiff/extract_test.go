package unidiff

import (
	"reflect"
	"testing"
)

func TestExtractPathsUnionsBothHeaderStyles(t *testing.T) {
	diff := `diff --git a/src/app.ts b/src/app.ts
index 83db48f..bf269f4 100644
--- a/src/app.ts
+++ b/src/app.ts
@@ -1,3 +1,3 @@
-old
+new
`
	got := ExtractPaths(diff)
	want := []string{"src/app.ts"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractPaths() = %v, want %v", got, want)
	}
}

func TestExtractPathsGitHeaderOnly(t *testing.T) {
	diff := "diff --git a/cmd/main.go b/cmd/main.go\n"
	got := ExtractPaths(diff)
	want := []string{"cmd/main.go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractPaths() = %v, want %v", got, want)
	}
}

func TestExtractPathsUnifiedHeadersOnly(t *testing.T) {
	diff := `--- a/lib/util.go
+++ b/lib/util_v2.go
@@ -1 +1 @@
`
	got := ExtractPaths(diff)
	want := []string{"lib/util.go", "lib/util_v2.go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractPaths() = %v, want %v", got, want)
	}
}

func TestExtractPathsMultipleFilesCollapseDuplicates(t *testing.T) {
	diff := `diff --git a/a.go b/a.go
--- a/a.go
+++ b/a.go
diff --git a/b/nested.go b/b/nested.go
--- a/b/nested.go
+++ b/b/nested.go
`
	got := ExtractPaths(diff)
	want := []string{"a.go", "b/nested.go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractPaths() = %v, want %v", got, want)
	}
}

func TestExtractPathsIgnoresDevNull(t *testing.T) {
	diff := `diff --git a/new.go b/new.go
--- /dev/null
+++ b/new.go
`
	got := ExtractPaths(diff)
	want := []string{"new.go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractPaths() = %v, want %v", got, want)
	}
}

func TestExtractPathsUnparseableInputIsEmptyNotError(t *testing.T) {
	for _, in := range []string{"", "not a diff at all", "+++ garbage without prefix"} {
		if got := ExtractPaths(in); len(got) != 0 {
			t.Fatalf("ExtractPaths(%q) = %v, want empty", in, got)
		}
	}
}

func TestExtractPathsIdempotent(t *testing.T) {
	diff := `+++ b/x.go
diff --git a/y.go b/y.go
--- a/z.go
`
	first := ExtractPaths(diff)
	second := ExtractPaths(diff)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("ExtractPaths() not stable: %v then %v", first, second)
	}
}
