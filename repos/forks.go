package repos

import (
	"context"
	"net/http"

	"github.com/repolens/repolens/gitapi"
)

// Forks lists a repository's forks.
func (c *Client) Forks(ctx context.Context, owner, repo string, opt *ListOptions) ([]Repository, error) {
	desc := gitapi.MustBuild(http.MethodGet, "repos/{owner}/{repo}/forks",
		gitapi.Params{"owner": owner, "repo": repo}, opt.values())
	var out []Repository
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateFork forks the repository for the authenticated user, or into an
// organization when opt says so.
func (c *Client) CreateFork(ctx context.Context, owner, repo string, opt *ForkOptions) (*Repository, error) {
	desc := gitapi.MustBuild(http.MethodPost, "repos/{owner}/{repo}/forks",
		gitapi.Params{"owner": owner, "repo": repo}, opt.values())
	var out Repository
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
