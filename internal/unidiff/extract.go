// Package unidiff extracts the set of file paths touched by a unified
// diff. It tolerates partial or malformed input: anything that cannot be
// parsed simply contributes no paths.
package unidiff

import (
	"regexp"
	"sort"
	"strings"
)

var (
	gitHeaderRe  = regexp.MustCompile(`(?m)^diff --git a/(\S+) b/(\S+)`)
	fileHeaderRe = regexp.MustCompile(`(?m)^(?:\+\+\+|---) [ab]/(\S+)`)
)

// ExtractPaths scans diff text for both `diff --git a/<p> b/<p>` headers
// and `+++`/`---` unified headers and returns the union of paths, sorted
// and de-duplicated. Either header style may be absent. Unparseable input
// yields an empty slice, never an error.
func ExtractPaths(diff string) []string {
	seen := make(map[string]struct{})

	for _, m := range gitHeaderRe.FindAllStringSubmatch(diff, -1) {
		addPath(seen, m[1])
		addPath(seen, m[2])
	}
	for _, m := range fileHeaderRe.FindAllStringSubmatch(diff, -1) {
		addPath(seen, m[1])
	}

	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func addPath(seen map[string]struct{}, p string) {
	p = strings.TrimSpace(p)
	if p == "" || p == "/dev/null" {
		return
	}
	seen[p] = struct{}{}
}
