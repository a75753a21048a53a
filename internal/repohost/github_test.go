package repohost

import (
	"errors"
	"testing"
)

func TestParseGitHubURL(t *testing.T) {
	cases := []struct {
		in          string
		owner, repo string
		wantErr     bool
	}{
		{"https://github.com/acme/widgets", "acme", "widgets", false},
		{"https://github.com/acme/widgets.git", "acme", "widgets", false},
		{"https://github.com/acme/widgets/tree/main", "acme", "widgets", false},
		{"git@github.com:acme/widgets.git", "acme", "widgets", false},
		{"https://gitlab.com/acme/widgets", "", "", true},
		{"https://github.com/acme", "", "", true},
		{"", "", "", true},
		{"not a url %%", "", "", true},
	}
	for _, tc := range cases {
		owner, repo, err := parseGitHubURL(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseGitHubURL(%q) error = nil, want error", tc.in)
			} else if !errors.Is(err, ErrInvalidRepository) {
				t.Errorf("parseGitHubURL(%q) error = %v, want ErrInvalidRepository", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseGitHubURL(%q) error = %v", tc.in, err)
			continue
		}
		if owner != tc.owner || repo != tc.repo {
			t.Errorf("parseGitHubURL(%q) = %s/%s, want %s/%s", tc.in, owner, repo, tc.owner, tc.repo)
		}
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("fix: things\n\nlong body"); got != "fix: things" {
		t.Fatalf("firstLine() = %q", got)
	}
	if got := firstLine("single"); got != "single" {
		t.Fatalf("firstLine() = %q", got)
	}
}
