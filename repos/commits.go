package repos

import (
	"context"
	"net/http"

	"github.com/repolens/repolens/gitapi"
)

// Commits lists commits, newest first, filtered by opt.
func (c *Client) Commits(ctx context.Context, owner, repo string, opt *CommitsOptions) ([]Commit, error) {
	desc := gitapi.MustBuild(http.MethodGet, "repos/{owner}/{repo}/commits",
		gitapi.Params{"owner": owner, "repo": repo}, opt.values())
	var out []Commit
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Commit fetches a single commit by SHA.
func (c *Client) Commit(ctx context.Context, owner, repo, sha string) (*Commit, error) {
	desc := gitapi.MustBuild(http.MethodGet, "repos/{owner}/{repo}/commits/{sha}",
		gitapi.Params{"owner": owner, "repo": repo, "sha": sha}, nil)
	var out Commit
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
