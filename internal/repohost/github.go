package repohost

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/github"
	"golang.org/x/oauth2"
)

// GitHubClient implements Client against the GitHub REST API.
type GitHubClient struct {
	gh         *github.Client
	owner      string
	repo       string
	authorized bool
}

// NewGitHub parses repoURL (https or git@ form) and returns a client.
// An empty credential is allowed; public repositories work without one.
func NewGitHub(repoURL, credential string) (Client, error) {
	owner, repo, err := parseGitHubURL(repoURL)
	if err != nil {
		return nil, err
	}

	httpClient := oauth2.NewClient(context.Background(), nil)
	authorized := false
	if tok := strings.TrimSpace(credential); tok != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: tok})
		httpClient = oauth2.NewClient(context.Background(), ts)
		authorized = true
	}

	return &GitHubClient{
		gh:         github.NewClient(httpClient),
		owner:      owner,
		repo:       repo,
		authorized: authorized,
	}, nil
}

func (c *GitHubClient) Validate(ctx context.Context) (RepoInfo, error) {
	r, resp, err := c.gh.Repositories.Get(ctx, c.owner, c.repo)
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			// GitHub reports private repositories as 404 to
			// unauthenticated callers.
			if !c.authorized {
				return RepoInfo{}, fmt.Errorf("%w: %s/%s", ErrAuthorizationRequired, c.owner, c.repo)
			}
			return RepoInfo{}, fmt.Errorf("%w: %s/%s", ErrInvalidRepository, c.owner, c.repo)
		}
		return RepoInfo{}, fmt.Errorf("%w: %v", ErrInvalidRepository, err)
	}
	if r.GetPrivate() && !c.authorized {
		return RepoInfo{}, fmt.Errorf("%w: %s/%s is private", ErrAuthorizationRequired, c.owner, c.repo)
	}
	return RepoInfo{
		Owner:         c.owner,
		Name:          c.repo,
		Private:       r.GetPrivate(),
		DefaultBranch: r.GetDefaultBranch(),
	}, nil
}

func (c *GitHubClient) ListFiles(ctx context.Context, branch string) ([]string, error) {
	br, _, err := c.gh.Repositories.GetBranch(ctx, c.owner, c.repo, branch)
	if err != nil {
		return nil, fmt.Errorf("%w: branch %s: %v", ErrInvalidRepository, branch, err)
	}
	sha := br.GetCommit().GetSHA()

	tree, _, err := c.gh.Git.GetTree(ctx, c.owner, c.repo, sha, true)
	if err != nil {
		return nil, fmt.Errorf("%w: tree %s: %v", ErrFetch, sha, err)
	}

	paths := make([]string, 0, len(tree.Entries))
	for _, e := range tree.Entries {
		if e.GetType() != "blob" {
			continue
		}
		paths = append(paths, e.GetPath())
	}
	return paths, nil
}

func (c *GitHubClient) CommitDiff(ctx context.Context, sha string) (string, error) {
	raw, _, err := c.gh.Repositories.GetCommitRaw(ctx, c.owner, c.repo, sha, github.RawOptions{Type: github.Diff})
	if err != nil {
		return "", fmt.Errorf("%w: diff %s: %v", ErrFetch, sha, err)
	}
	return raw, nil
}

func (c *GitHubClient) CommitMeta(ctx context.Context, sha string) (CommitMeta, error) {
	rc, _, err := c.gh.Repositories.GetCommit(ctx, c.owner, c.repo, sha)
	if err != nil {
		return CommitMeta{}, fmt.Errorf("%w: commit %s: %v", ErrFetch, sha, err)
	}
	meta := CommitMeta{Hash: rc.GetSHA()}
	if commit := rc.GetCommit(); commit != nil {
		meta.Summary = firstLine(commit.GetMessage())
		if a := commit.GetAuthor(); a != nil {
			meta.Author = a.GetName()
			meta.Date = a.GetDate()
		}
	}
	if meta.Hash == "" {
		meta.Hash = sha
	}
	return meta, nil
}

func (c *GitHubClient) FileContent(ctx context.Context, ref, path string) (string, error) {
	fc, _, _, err := c.gh.Repositories.GetContents(ctx, c.owner, c.repo, path, &github.RepositoryContentGetOptions{Ref: ref})
	if err != nil {
		return "", fmt.Errorf("%w: contents %s@%s: %v", ErrFetch, path, ref, err)
	}
	if fc == nil {
		return "", fmt.Errorf("%w: %s is not a file", ErrFetch, path)
	}
	content, err := fc.GetContent()
	if err != nil {
		return "", fmt.Errorf("%w: decode %s: %v", ErrFetch, path, err)
	}
	return content, nil
}

// parseGitHubURL accepts https://github.com/owner/repo(.git) and
// git@github.com:owner/repo(.git) forms.
func parseGitHubURL(raw string) (owner, repo string, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", fmt.Errorf("%w: empty url", ErrInvalidRepository)
	}

	if strings.HasPrefix(raw, "git@github.com:") {
		p := strings.TrimSuffix(strings.TrimPrefix(raw, "git@github.com:"), ".git")
		return splitOwnerRepo(raw, p)
	}

	u, perr := url.Parse(raw)
	if perr != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidRepository, perr)
	}
	if !strings.EqualFold(strings.TrimSpace(u.Host), "github.com") {
		return "", "", fmt.Errorf("%w: only github.com is supported, got %q", ErrInvalidRepository, u.Host)
	}
	p := strings.Trim(strings.TrimSuffix(u.Path, ".git"), "/")
	return splitOwnerRepo(raw, p)
}

func splitOwnerRepo(raw, p string) (string, string, error) {
	parts := strings.Split(strings.Trim(p, "/"), "/")
	if len(parts) < 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidRepository, raw)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
