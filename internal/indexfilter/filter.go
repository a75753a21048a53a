// Package indexfilter decides whether a repository path is eligible for
// indexing. The predicate gates both the provisioning charge and the
// per-commit reindex, so it must be total and stable.
package indexfilter

import (
	"path"
	"strings"
)

var excludedExts = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".bmp": {}, ".ico": {},
	".svg": {}, ".webp": {}, ".avif": {},
	".mp3": {}, ".mp4": {}, ".wav": {}, ".ogg": {}, ".mov": {}, ".avi": {},
	".pdf": {}, ".zip": {}, ".gz": {}, ".tar": {}, ".rar": {}, ".7z": {},
	".woff": {}, ".woff2": {}, ".ttf": {}, ".otf": {}, ".eot": {},
	".exe": {}, ".dll": {}, ".so": {}, ".dylib": {}, ".bin": {}, ".wasm": {},
	".class": {}, ".jar": {}, ".pyc": {}, ".o": {}, ".a": {},
	".db": {}, ".sqlite": {}, ".ds_store": {},
}

var excludedDirs = map[string]struct{}{
	"node_modules": {}, "vendor": {}, "bower_components": {},
	"dist": {}, "build": {}, "out": {}, "target": {}, "bin": {}, "obj": {},
	".git": {}, ".svn": {}, ".hg": {},
	".next": {}, ".nuxt": {}, ".cache": {}, ".parcel-cache": {},
	".turbo": {}, ".gradle": {}, ".idea": {}, ".vscode": {},
	"__pycache__": {}, ".pytest_cache": {}, ".venv": {}, "venv": {},
	"coverage": {}, ".nyc_output": {},
}

var excludedFiles = map[string]struct{}{
	"package-lock.json": {}, "yarn.lock": {}, "pnpm-lock.yaml": {},
	"bun.lockb": {}, "composer.lock": {}, "gemfile.lock": {},
	"cargo.lock": {}, "poetry.lock": {}, "go.sum": {},
	".env": {}, ".env.local": {}, ".env.development": {},
	".env.production": {}, ".env.test": {},
}

// ShouldIndex reports whether path is worth indexing. It is a pure
// predicate: defined for every string and deterministic.
func ShouldIndex(p string) bool {
	p = strings.TrimSpace(strings.ReplaceAll(p, "\\", "/"))
	p = strings.TrimPrefix(p, "./")
	if p == "" {
		return false
	}

	lower := strings.ToLower(p)
	segs := strings.Split(lower, "/")
	for _, seg := range segs[:len(segs)-1] {
		if _, bad := excludedDirs[seg]; bad {
			return false
		}
	}

	base := segs[len(segs)-1]
	if _, bad := excludedFiles[base]; bad {
		return false
	}
	if strings.HasPrefix(base, ".env.") {
		return false
	}
	if strings.HasSuffix(base, ".min.js") || strings.HasSuffix(base, ".min.css") {
		return false
	}
	if _, bad := excludedExts[path.Ext(base)]; bad {
		return false
	}
	return true
}

// Apply filters paths through ShouldIndex preserving order.
func Apply(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if ShouldIndex(p) {
			out = append(out, p)
		}
	}
	return out
}
