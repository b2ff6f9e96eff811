package repos

import (
	"context"
	"net/http"

	"github.com/repolens/repolens/gitapi"
)

// Watchers lists the users watching a repository.
func (c *Client) Watchers(ctx context.Context, owner, repo string, opt *ListOptions) ([]User, error) {
	desc := gitapi.MustBuild(http.MethodGet, "repos/{owner}/{repo}/watchers",
		gitapi.Params{"owner": owner, "repo": repo}, opt.values())
	var out []User
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Watched lists the repositories a user watches.
func (c *Client) Watched(ctx context.Context, user string, opt *ListOptions) ([]Repository, error) {
	desc := gitapi.MustBuild(http.MethodGet, "users/{user}/watched",
		gitapi.Params{"user": user}, opt.values())
	var out []Repository
	if err := c.api.Do(ctx, desc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// IsWatching reports whether the authenticated user watches the repository.
func (c *Client) IsWatching(ctx context.Context, owner, repo string) (bool, error) {
	desc := gitapi.MustBuild(http.MethodGet, "user/watched/{owner}/{repo}",
		gitapi.Params{"owner": owner, "repo": repo}, nil)
	return c.api.Check(ctx, desc)
}

// Watch starts watching the repository as the authenticated user.
func (c *Client) Watch(ctx context.Context, owner, repo string) error {
	desc := gitapi.MustBuild(http.MethodPut, "user/watched/{owner}/{repo}",
		gitapi.Params{"owner": owner, "repo": repo}, nil)
	return c.api.Do(ctx, desc, nil)
}

// Unwatch stops watching the repository.
func (c *Client) Unwatch(ctx context.Context, owner, repo string) error {
	desc := gitapi.MustBuild(http.MethodDelete, "user/watched/{owner}/{repo}",
		gitapi.Params{"owner": owner, "repo": repo}, nil)
	return c.api.Do(ctx, desc, nil)
}
